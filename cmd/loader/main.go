package main

import (
	"context"
	"os"

	"kobis-search/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	config.LoadEnvFile()

	app := &cli.Command{
		Name:  "kobis-loader",
		Usage: "Load a KOBIS movie list export into the catalog database",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			importCommand(),
			statsCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func setupLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
