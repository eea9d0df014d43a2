package query

import (
	"math"

	"kobis-search/internal/models"
)

// PageSize is fixed; clients choose the page, never its size.
const PageSize = 20

// NormalizePage floors page at 1. There is no upper clamp: a page past the
// last one is valid and simply has no rows.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset is the row offset of a 1-based page. It saturates at math.MaxInt
// instead of wrapping, so an absurdly large page still lies past the end.
func Offset(page int) int {
	skipped := NormalizePage(page) - 1
	if skipped > math.MaxInt/PageSize {
		return math.MaxInt
	}
	return skipped * PageSize
}

// TotalPages is ceil(total / PageSize); 0 when total is 0.
func TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + PageSize - 1) / PageSize)
}

// NewResultPage assembles a page from its rows and the matching total.
func NewResultPage(rows []models.MovieRow, total int64, page int) models.ResultPage {
	if rows == nil {
		rows = []models.MovieRow{}
	}
	return models.ResultPage{
		Results:    rows,
		Total:      total,
		Page:       NormalizePage(page),
		PerPage:    PageSize,
		TotalPages: TotalPages(total),
	}
}

// EmptyPage is returned alongside an error when the store fails.
func EmptyPage() models.ResultPage {
	return NewResultPage(nil, 0, 1)
}
