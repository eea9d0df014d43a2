package services

import (
	"context"
	"fmt"

	"kobis-search/internal/models"
	"kobis-search/internal/repository"

	"github.com/sirupsen/logrus"
)

type CatalogService interface {
	GetFilterOptions(ctx context.Context) (*models.FilterOptions, error)
	GetStats(ctx context.Context) (*models.CatalogStats, error)
}

type catalogService struct {
	movieRepo   repository.MovieRepository
	genreRepo   repository.GenreRepository
	countryRepo repository.CountryRepository
	taxonomy    *Taxonomy
	logger      *logrus.Logger
}

func NewCatalogService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository, countryRepo repository.CountryRepository, taxonomy *Taxonomy, logger *logrus.Logger) CatalogService {
	return &catalogService{
		movieRepo:   movieRepo,
		genreRepo:   genreRepo,
		countryRepo: countryRepo,
		taxonomy:    taxonomy,
		logger:      logger,
	}
}

func (s *catalogService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	genres, err := s.genreRepo.FindAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list genres")
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	countries, err := s.countryRepo.FindAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list countries")
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	statuses, err := s.movieRepo.DistinctProductionStatus(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list production statuses")
		return nil, fmt.Errorf("failed to list production statuses: %w", err)
	}

	types, err := s.movieRepo.DistinctTypes(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list movie types")
		return nil, fmt.Errorf("failed to list movie types: %w", err)
	}

	genreNames := make([]string, 0, len(genres))
	for _, g := range genres {
		genreNames = append(genreNames, g.Name)
	}

	countryNames := make([]string, 0, len(countries))
	for _, c := range countries {
		if c.Name != "" {
			countryNames = append(countryNames, c.Name)
		}
	}

	return &models.FilterOptions{
		Genres:               genreNames,
		CountriesByContinent: s.taxonomy.Group(countryNames),
		ProductionStatus:     statuses,
		Types:                types,
	}, nil
}

func (s *catalogService) GetStats(ctx context.Context) (*models.CatalogStats, error) {
	total, err := s.movieRepo.CountMovies(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count movies")
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}
	return &models.CatalogStats{TotalMovies: total}, nil
}
