package loader

import (
	"regexp"
	"strconv"
	"strings"

	"kobis-search/internal/models"

	"golang.org/x/text/unicode/norm"
)

// Record is one raw workbook row. Multi-valued cells (countries, genres) are
// comma separated.
type Record struct {
	TitleKo   string
	TitleEn   string
	Year      string
	Countries string
	Type      string
	Genres    string
	Status    string
	Director  string
	Company   string
}

var yearPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ParseYear accepts exactly four digits. Anything else, including "2019년",
// is treated as an unknown year.
func ParseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if !yearPattern.MatchString(raw) {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}

// SplitList splits a comma separated cell into trimmed, non-empty, unique
// names in their original order.
func SplitList(raw string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		name := cleanText(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// names assigns sequential ids to distinct names in first-seen order.
type names struct {
	ids   map[string]uint
	order []string
}

func newNames() *names {
	return &names{ids: make(map[string]uint)}
}

func (n *names) id(name string) uint {
	if id, ok := n.ids[name]; ok {
		return id
	}
	n.order = append(n.order, name)
	id := uint(len(n.order))
	n.ids[name] = id
	return id
}

// Normalize turns raw records into the relational catalog. Every record with
// a Korean title becomes one movie; records without one are skipped.
// Directors, companies, genres and countries are deduplicated by their
// trimmed name.
func Normalize(records []Record) *models.Catalog {
	directors := newNames()
	companies := newNames()
	genres := newNames()
	countries := newNames()

	catalog := &models.Catalog{}

	for _, rec := range records {
		title := cleanText(rec.TitleKo)
		if title == "" {
			continue
		}

		movie := models.Movie{
			ID:               uint(len(catalog.Movies) + 1),
			TitleKo:          title,
			TitleEn:          cleanText(rec.TitleEn),
			ProductionYear:   ParseYear(rec.Year),
			Type:             cleanText(rec.Type),
			ProductionStatus: cleanText(rec.Status),
		}
		if name := cleanText(rec.Director); name != "" {
			id := directors.id(name)
			movie.DirectorID = &id
		}
		if name := cleanText(rec.Company); name != "" {
			id := companies.id(name)
			movie.CompanyID = &id
		}
		catalog.Movies = append(catalog.Movies, movie)

		for _, name := range SplitList(rec.Genres) {
			catalog.MovieGenres = append(catalog.MovieGenres, models.MovieGenre{MovieID: movie.ID, GenreID: genres.id(name)})
		}
		for _, name := range SplitList(rec.Countries) {
			catalog.MovieCountries = append(catalog.MovieCountries, models.MovieCountry{MovieID: movie.ID, CountryID: countries.id(name)})
		}
	}

	for i, name := range directors.order {
		catalog.Directors = append(catalog.Directors, models.Director{ID: uint(i + 1), Name: name})
	}
	for i, name := range companies.order {
		catalog.Companies = append(catalog.Companies, models.ProductionCompany{ID: uint(i + 1), Name: name})
	}
	for i, name := range genres.order {
		catalog.Genres = append(catalog.Genres, models.Genre{ID: uint(i + 1), Name: name})
	}
	for i, name := range countries.order {
		catalog.Countries = append(catalog.Countries, models.Country{ID: uint(i + 1), Name: name})
	}

	return catalog
}
