package loader

import (
	"context"
	"fmt"
	"io"
	"time"

	"kobis-search/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CatalogWriter persists a normalized catalog, replacing what is stored.
type CatalogWriter interface {
	Replace(ctx context.Context, c *models.Catalog) error
}

type Summary struct {
	RunID    string
	Source   string
	Rows     int
	Skipped  int
	Counts   models.TableCounts
	Duration time.Duration
}

type Importer struct {
	writer CatalogWriter
	logger *logrus.Logger
}

func NewImporter(writer CatalogWriter, logger *logrus.Logger) *Importer {
	return &Importer{
		writer: writer,
		logger: logger,
	}
}

// Import reads a workbook from r and replaces the stored catalog with it.
// source only labels the run in logs and the summary.
func (i *Importer) Import(ctx context.Context, source string, r io.Reader) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := i.logger.WithFields(logrus.Fields{
		"run_id": runID,
		"source": source,
	})

	log.Info("Reading workbook")
	records, err := ReadWorkbook(r)
	if err != nil {
		log.WithError(err).Error("Failed to read workbook")
		return nil, err
	}

	catalog := Normalize(records)
	counts := catalog.Counts()
	log.WithFields(logrus.Fields{
		"rows":      len(records),
		"movies":    counts.Movies,
		"directors": counts.Directors,
		"genres":    counts.Genres,
		"countries": counts.Countries,
	}).Info("Workbook normalized")

	if err := i.writer.Replace(ctx, catalog); err != nil {
		log.WithError(err).Error("Failed to replace catalog")
		return nil, fmt.Errorf("failed to replace catalog: %w", err)
	}

	summary := &Summary{
		RunID:    runID,
		Source:   source,
		Rows:     len(records),
		Skipped:  len(records) - len(catalog.Movies),
		Counts:   counts,
		Duration: time.Since(start),
	}
	log.WithField("duration", summary.Duration.String()).Info("Import completed")

	return summary, nil
}
