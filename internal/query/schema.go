package query

import "fmt"

// Every predicate and ordering in this package is written against the base
// join below; the aliases m, d and pc are fixed.
const (
	BaseTable = "movies AS m"

	colMovieID          = "m.id"
	colTitleKo          = "m.title_ko"
	colTitleEn          = "m.title_en"
	colProductionYear   = "m.production_year"
	colType             = "m.type"
	colProductionStatus = "m.production_status"
	colDirectorName     = "d.name"
)

// BaseJoins attaches the at-most-one director and company of each movie.
// Many-valued relations are never joined here, so the base join yields one
// row per movie.
var BaseJoins = []string{
	"LEFT JOIN directors d ON d.id = m.director_id",
	"LEFT JOIN production_companies pc ON pc.id = m.company_id",
}

// Facet describes a many-to-many relation from movies to a named lookup
// table, e.g. movies -> movie_genres -> genres.
type Facet struct {
	JoinTable  string
	JoinAlias  string
	ForeignKey string
	Table      string
	Alias      string
}

var (
	GenreFacet = Facet{
		JoinTable:  "movie_genres",
		JoinAlias:  "mg",
		ForeignKey: "genre_id",
		Table:      "genres",
		Alias:      "g",
	}
	CountryFacet = Facet{
		JoinTable:  "movie_countries",
		JoinAlias:  "mc",
		ForeignKey: "country_id",
		Table:      "countries",
		Alias:      "c",
	}
)

// from renders the correlated join between the facet tables and m.
func (f Facet) from() string {
	return fmt.Sprintf("%s %s JOIN %s %s ON %s.id = %s.%s WHERE %s.movie_id = %s",
		f.JoinTable, f.JoinAlias, f.Table, f.Alias, f.Alias, f.JoinAlias, f.ForeignKey, f.JoinAlias, colMovieID)
}

// exists is true when the movie is related to a row named by the bound value.
func (f Facet) exists() string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM %s AND %s.name = ?)", f.from(), f.Alias)
}

// names aggregates the related names of the movie into one comma separated
// string ordered by name; NULL when there are none.
func (f Facet) names() string {
	return fmt.Sprintf("(SELECT STRING_AGG(%s.name, ', ' ORDER BY %s.name) FROM %s)", f.Alias, f.Alias, f.from())
}

// RowSelect is the projection scanned into models.MovieRow.
func RowSelect() string {
	return "m.id AS id, m.title_ko AS title_ko, m.title_en AS title_en, " +
		"m.production_year AS production_year, m.type AS type, " +
		"m.production_status AS production_status, " +
		"d.name AS director_name, pc.name AS company_name, " +
		GenreFacet.names() + " AS genres, " +
		CountryFacet.names() + " AS countries"
}

// MovieIDColumn identifies a movie row in the base join; counts are taken
// over its distinct values.
const MovieIDColumn = colMovieID
