package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "kobis-search/docs"
	"kobis-search/internal/config"
	"kobis-search/internal/database"
	"kobis-search/internal/handlers"
	"kobis-search/internal/repository"
	"kobis-search/internal/routes"
	"kobis-search/internal/services"
	"kobis-search/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title KOBIS Movie Search API
// @version 1.0
// @description Search the KOBIS movie catalog by title, director, year range, production status, type, genre and country, with a Korean alphabetic index and Korean-aware title sorting.

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

const shutdownTimeout = 30 * time.Second

func main() {
	config.LoadEnvFile()
	log := setupLogger()

	if err := run(log); err != nil {
		log.Fatal(err)
	}
}

func run(log *logrus.Logger) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Error closing database connection")
		}
	}()

	taxonomy, err := services.LoadTaxonomy(cfg.Catalog.TaxonomyFile)
	if err != nil {
		return fmt.Errorf("failed to load continent taxonomy: %w", err)
	}

	movies := repository.NewMovieRepository(db)
	catalog := services.NewCatalogService(
		movies,
		repository.NewGenreRepository(db),
		repository.NewCountryRepository(db),
		taxonomy,
		log,
	)
	searchHandler := handlers.NewSearchHandler(services.NewSearchService(movies, log), catalog, log)

	// A nil presigner makes the presign endpoint answer 503.
	var presigner handlers.WorkbookPresigner
	if cfg.MinIO.Enabled() {
		storage, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		presigner = storage
	} else {
		log.Warn("Object storage is not configured, workbook uploads are disabled")
	}

	app := newApp(cfg.Server, db, log)
	routes.Setup(app, searchHandler, handlers.NewUploadHandler(presigner, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"port":   cfg.Server.Port,
			"driver": db.Dialect().Name(),
		}).Info("KOBIS Movie Search API starting")
		listenErr <- app.Listen(":" + cfg.Server.Port)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server shutdown complete")
	return nil
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	switch os.Getenv("GO_ENV") {
	case "dev", "development":
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func newApp(cfg config.ServerConfig, db *database.Database, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "KOBIS Movie Search API",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: errorHandler(log),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
		MaxAge:       86400,
	}))

	app.Get("/health", healthHandler(db))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	return app
}

func healthHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code, state := fiber.StatusOK, "healthy"
		if err := db.HealthCheck(); err != nil {
			code, state = fiber.StatusServiceUnavailable, "unhealthy"
		}

		return c.Status(code).JSON(fiber.Map{
			"service":   "kobis-search",
			"driver":    db.Dialect().Name(),
			"database":  state,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"request_id": c.Locals("requestid"),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Debug("Request rejected")
		}

		return utils.ErrorResponse(c, code, err.Error())
	}
}
