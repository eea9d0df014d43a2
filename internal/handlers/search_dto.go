package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"kobis-search/internal/models"

	"github.com/goccy/go-json"
)

// FlexString accepts a JSON string or number. Forms send years and pages as
// strings, scripts send them as numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number: %w", err)
	}
	*f = FlexString(integral(n))
	return nil
}

// integral renders integral numbers such as 2.0 or 2e3 in plain digits so
// that page and year parsing sees "2" and "2000". Other numbers keep their
// JSON spelling.
func integral(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1<<63 {
		return n.String()
	}
	return strconv.FormatInt(int64(f), 10)
}

// SearchRequest is the body of POST /search. Every field is optional.
type SearchRequest struct {
	MovieTitle       string     `json:"movieTitle" example:"기생충"`
	DirectorName     string     `json:"directorName" example:"봉준호"`
	YearFrom         FlexString `json:"yearFrom" swaggertype:"string" example:"2010"`
	YearTo           FlexString `json:"yearTo" swaggertype:"string" example:"전체"`
	ProductionStatus []string   `json:"productionStatus" example:"개봉"`
	MovieType        []string   `json:"movieType" example:"장편"`
	Genre            []string   `json:"genre" example:"드라마"`
	Country          []string   `json:"country" example:"한국"`
	TitleIndex       string     `json:"titleIndex" example:"ㄱ"`
	SortOrder        string     `json:"sortOrder" enums:"year_desc,year_asc,title_asc,title_desc" example:"year_desc"`
	Page             FlexString `json:"page" swaggertype:"integer" example:"1"`
}

// ToModel converts the body into a search request. A missing or non-numeric
// page becomes page 1.
func (r *SearchRequest) ToModel() models.SearchRequest {
	page := parsePage(string(r.Page))

	return models.SearchRequest{
		Title:            r.MovieTitle,
		Director:         r.DirectorName,
		YearFrom:         string(r.YearFrom),
		YearTo:           string(r.YearTo),
		ProductionStatus: r.ProductionStatus,
		Types:            r.MovieType,
		Genres:           r.Genre,
		Countries:        r.Country,
		TitleIndex:       r.TitleIndex,
		SortOrder:        r.SortOrder,
		Page:             page,
	}
}

// parsePage reads an integral page number. Out-of-range values saturate so
// they still point past the last page; anything else is page 1.
func parsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	page, err := strconv.Atoi(raw)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return page
	}

	f, err := strconv.ParseFloat(raw, 64)
	switch {
	case err != nil && !errors.Is(err, strconv.ErrRange), math.IsNaN(f), f != math.Trunc(f):
		return 1
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}
