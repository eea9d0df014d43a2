package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"kobis-search/internal/config"
	"kobis-search/internal/database"
	"kobis-search/internal/loader"
	"kobis-search/internal/repository"
	"kobis-search/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Replace the catalog with the contents of a workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a local .xlsx export",
			},
			&cli.StringFlag{
				Name:    "object",
				Aliases: []string{"o"},
				Usage:   "Object key of an uploaded export in the configured bucket",
			},
			&cli.BoolFlag{
				Name:  "remove-object",
				Usage: "Delete the uploaded object after a successful import",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			file, object := c.String("file"), c.String("object")
			if (file == "") == (object == "") {
				return errors.New("exactly one of --file or --object is required")
			}

			log := setupLogger(c.Bool("debug"))
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			var (
				source  io.ReadCloser
				label   string
				storage *services.MinIOService
			)
			if file != "" {
				if source, err = os.Open(file); err != nil {
					return fmt.Errorf("opening workbook: %w", err)
				}
				label = file
			} else {
				if !cfg.MinIO.Enabled() {
					return errors.New("--object needs object storage credentials (AWS_ENDPOINT, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY)")
				}
				if storage, err = services.NewMinIOService(&cfg.MinIO, log); err != nil {
					return err
				}
				if source, err = storage.OpenWorkbook(ctx, object); err != nil {
					return err
				}
				label = cfg.MinIO.BucketName + "/" + object
			}
			defer source.Close()

			importer := loader.NewImporter(repository.NewCatalogRepository(db), log)
			summary, err := importer.Import(ctx, label, source)
			if err != nil {
				return err
			}

			fmt.Println(formatSummary(summary))

			if storage != nil && c.Bool("remove-object") {
				if err := storage.DeleteFile(ctx, object); err != nil {
					log.WithError(err).Warn("Import succeeded but the object could not be removed")
				}
			}
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show row counts of the catalog tables",
		Action: func(ctx context.Context, c *cli.Command) error {
			log := setupLogger(c.Bool("debug"))
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			counts, err := repository.NewCatalogRepository(db).Counts(ctx)
			if err != nil {
				return fmt.Errorf("counting tables: %w", err)
			}

			log.WithField("driver", db.Dialect().Name()).Debug("Catalog counted")
			fmt.Println(formatCounts("Catalog Statistics", counts))
			return nil
		},
	}
}

// loadConfig validates the environment configuration. The loader always
// migrates so it can populate an empty database.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	cfg.Database.AutoMigrate = true
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.WithField("driver", cfg.Database.Driver).Debug("Configuration loaded")
	return cfg, nil
}
