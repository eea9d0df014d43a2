package repository

import (
	"context"
	"fmt"
	"time"

	"kobis-search/internal/database"
	"kobis-search/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// Link tables come first so that deleting never leaves dangling references.
var catalogTables = []string{
	"movie_countries",
	"movie_genres",
	"movies",
	"directors",
	"production_companies",
	"genres",
	"countries",
}

// Tables whose id column is backed by a postgres sequence.
var sequencedTables = []string{"movies", "directors", "production_companies", "genres", "countries"}

type CatalogRepository interface {
	// Replace swaps the stored catalog for c in a single transaction.
	Replace(ctx context.Context, c *models.Catalog) error
	Counts(ctx context.Context) (*models.TableCounts, error)
}

type catalogRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCatalogRepository(db *database.Database) CatalogRepository {
	return &catalogRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *catalogRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Replace is bounded by ctx only; an import routinely outlasts the query
// timeout.
func (r *catalogRepository) Replace(ctx context.Context, c *models.Catalog) error {
	start := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range catalogTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		inserts := []struct {
			table string
			rows  interface{}
			n     int
		}{
			{"directors", c.Directors, len(c.Directors)},
			{"production_companies", c.Companies, len(c.Companies)},
			{"genres", c.Genres, len(c.Genres)},
			{"countries", c.Countries, len(c.Countries)},
			{"movies", c.Movies, len(c.Movies)},
			{"movie_genres", c.MovieGenres, len(c.MovieGenres)},
			{"movie_countries", c.MovieCountries, len(c.MovieCountries)},
		}
		for _, ins := range inserts {
			if ins.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(ins.rows, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", ins.table, err)
			}
		}

		if r.db.Dialect().Name() == "postgres" {
			return resetSequences(tx)
		}
		return nil
	})
	if err != nil {
		return database.Classify(err)
	}

	logrus.WithFields(logrus.Fields{
		"movies":   len(c.Movies),
		"duration": time.Since(start).String(),
	}).Info("Catalog replaced")

	return nil
}

// resetSequences moves each id sequence past the explicitly inserted ids.
func resetSequences(tx *gorm.DB) error {
	for _, table := range sequencedTables {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
			table, table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset sequence of %s: %w", table, err)
		}
	}
	return nil
}

func (r *catalogRepository) Counts(ctx context.Context) (*models.TableCounts, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var counts models.TableCounts
	targets := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Movie{}, &counts.Movies},
		{&models.Director{}, &counts.Directors},
		{&models.ProductionCompany{}, &counts.ProductionCompanies},
		{&models.Genre{}, &counts.Genres},
		{&models.Country{}, &counts.Countries},
		{&models.MovieGenre{}, &counts.MovieGenres},
		{&models.MovieCountry{}, &counts.MovieCountries},
	}

	db := r.db.WithContext(ctx)
	for _, t := range targets {
		if err := db.Model(t.model).Count(t.dest).Error; err != nil {
			return nil, database.Classify(err)
		}
	}

	return &counts, nil
}
