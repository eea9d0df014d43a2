package repository

import (
	"context"
	"sort"
	"time"

	"kobis-search/internal/database"
	"kobis-search/internal/models"
	"kobis-search/internal/query"

	"gorm.io/gorm"
)

type MovieRepository interface {
	// Search returns one page of matching rows and the total match count.
	Search(ctx context.Context, req models.SearchRequest) ([]models.MovieRow, int64, error)
	CountMovies(ctx context.Context) (int64, error)
	DistinctProductionStatus(ctx context.Context) ([]string, error)
	DistinctTypes(ctx context.Context) ([]string, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Search runs the page fetch and the count in one read-only snapshot
// transaction so the total always describes the rows it was counted with.
// The transaction is released on every path.
func (r *movieRepository) Search(ctx context.Context, req models.SearchRequest) ([]models.MovieRow, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.MovieRow
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if rows, err = r.fetchRows(tx, req); err != nil {
			return err
		}
		total, err = r.countRows(tx, req)
		return err
	}, r.db.SnapshotTxOptions())
	if err != nil {
		return nil, 0, database.Classify(err)
	}

	return rows, total, nil
}

func (r *movieRepository) fetchRows(tx *gorm.DB, req models.SearchRequest) ([]models.MovieRow, error) {
	ordering := query.ResolveSort(req.SortOrder, r.db.Dialect())

	rows := []models.MovieRow{}
	err := r.filtered(tx, req).
		Select(query.RowSelect()).
		Order(ordering.SQL).
		Limit(query.PageSize).
		Offset(query.Offset(req.Page)).
		Scan(&rows).Error
	return rows, err
}

func (r *movieRepository) countRows(tx *gorm.DB, req models.SearchRequest) (int64, error) {
	var total int64
	err := r.filtered(tx, req).
		Distinct(query.MovieIDColumn).
		Count(&total).Error
	return total, err
}

// filtered builds the base join with the predicates of req. Fetch and count
// each call it, so both always see the same WHERE clause.
func (r *movieRepository) filtered(tx *gorm.DB, req models.SearchRequest) *gorm.DB {
	q := tx.Table(query.BaseTable)
	for _, join := range query.BaseJoins {
		q = q.Joins(join)
	}
	for _, p := range query.BuildPredicates(req, r.db.Dialect()) {
		q = q.Where(p.SQL, p.Args...)
	}
	return q
}

func (r *movieRepository) CountMovies(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return 0, database.Classify(err)
	}
	return total, nil
}

func (r *movieRepository) DistinctProductionStatus(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "production_status")
}

func (r *movieRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "type")
}

// distinct lists the non-empty values of a movie column in byte order.
func (r *movieRepository) distinct(ctx context.Context, column string) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	values := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Distinct(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	sort.Strings(values)
	return values, nil
}
