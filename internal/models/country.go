package models

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name" example:"한국"`
}

func (Country) TableName() string {
	return "countries"
}

type MovieCountry struct {
	MovieID   uint `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	CountryID uint `gorm:"primaryKey;autoIncrement:false;index" json:"country_id"`
}

func (MovieCountry) TableName() string {
	return "movie_countries"
}

// ContinentGroup lists the catalog's countries that belong to one continent.
// Groups keep the taxonomy's declaration order.
type ContinentGroup struct {
	Continent string   `json:"continent" example:"아시아"`
	Countries []string `json:"countries"`
}

type FilterOptions struct {
	Genres               []string         `json:"genres"`
	CountriesByContinent []ContinentGroup `json:"countries_by_continent"`
	ProductionStatus     []string         `json:"production_status"`
	Types                []string         `json:"types"`
}
