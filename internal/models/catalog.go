package models

// Catalog is a fully normalized import. IDs are assigned by the loader so
// that link rows can reference movies, genres and countries before insert.
type Catalog struct {
	Directors      []Director
	Companies      []ProductionCompany
	Genres         []Genre
	Countries      []Country
	Movies         []Movie
	MovieGenres    []MovieGenre
	MovieCountries []MovieCountry
}

// Counts reports the number of rows per table the catalog will write.
func (c *Catalog) Counts() TableCounts {
	return TableCounts{
		Movies:              int64(len(c.Movies)),
		Directors:           int64(len(c.Directors)),
		ProductionCompanies: int64(len(c.Companies)),
		Genres:              int64(len(c.Genres)),
		Countries:           int64(len(c.Countries)),
		MovieGenres:         int64(len(c.MovieGenres)),
		MovieCountries:      int64(len(c.MovieCountries)),
	}
}
