package routes

import (
	"time"

	"kobis-search/internal/handlers"
	"kobis-search/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, searchHandler *handlers.SearchHandler, uploadHandler *handlers.UploadHandler) {
	// API versioning
	api := app.Group("/api", requestMetrics())
	v1 := api.Group("/v1")

	// Catalog search
	v1.Post("/search", searchHandler.Search)
	v1.Get("/filter-options", searchHandler.FilterOptions)
	v1.Get("/stats", searchHandler.Stats)

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}

// requestMetrics records latency and status per matched route.
func requestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		metrics.RecordAPIRequest(c.Method(), c.Route().Path, status, time.Since(start))

		return err
	}
}
