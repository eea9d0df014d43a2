package repository

import (
	"context"
	"time"

	"kobis-search/internal/database"
	"kobis-search/internal/models"
)

type CountryRepository interface {
	FindAll(ctx context.Context) ([]models.Country, error)
}

type countryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCountryRepository(db *database.Database) CountryRepository {
	return &countryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *countryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *countryRepository) FindAll(ctx context.Context) ([]models.Country, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var countries []models.Country
	err := r.db.WithContext(ctx).Order(r.db.Dialect().Binary("name")).Find(&countries).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return countries, nil
}
