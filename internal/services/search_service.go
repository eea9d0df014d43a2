package services

import (
	"context"
	"errors"
	"time"

	"kobis-search/internal/database"
	"kobis-search/internal/metrics"
	"kobis-search/internal/models"
	"kobis-search/internal/query"
	"kobis-search/internal/repository"

	"github.com/sirupsen/logrus"
)

type SearchService interface {
	// SearchMovies returns one page of matching movies. On a store failure it
	// returns the empty page together with the error.
	SearchMovies(ctx context.Context, req models.SearchRequest) (models.ResultPage, error)
}

type searchService struct {
	repo   repository.MovieRepository
	logger *logrus.Logger
}

func NewSearchService(repo repository.MovieRepository, logger *logrus.Logger) SearchService {
	return &searchService{
		repo:   repo,
		logger: logger,
	}
}

func (s *searchService) SearchMovies(ctx context.Context, req models.SearchRequest) (models.ResultPage, error) {
	start := time.Now()
	order := string(query.ParseSortOrder(req.SortOrder))

	rows, total, err := s.repo.Search(ctx, req)
	if err != nil {
		kind := errorKind(err)
		metrics.RecordSearch(order, time.Since(start), 0, kind)
		s.logger.WithFields(logrus.Fields{
			"request_id": requestID(ctx),
			"sort_order": order,
			"page":       req.Page,
			"error_kind": kind,
		}).WithError(err).Error("Catalog search failed")
		return query.EmptyPage(), err
	}

	metrics.RecordSearch(order, time.Since(start), total, "")
	s.logger.WithFields(logrus.Fields{
		"request_id": requestID(ctx),
		"sort_order": order,
		"page":       query.NormalizePage(req.Page),
		"total":      total,
		"duration":   time.Since(start).String(),
	}).Debug("Catalog search completed")

	return query.NewResultPage(rows, total, req.Page), nil
}

func errorKind(err error) string {
	if errors.Is(err, database.ErrStoreUnavailable) {
		return "store_unavailable"
	}
	return "query_failed"
}
