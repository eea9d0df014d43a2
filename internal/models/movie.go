package models

import (
	"time"
)

type Movie struct {
	ID               uint      `gorm:"primaryKey" json:"id" example:"1"`
	TitleKo          string    `gorm:"column:title_ko;not null;index" json:"title_ko" example:"기생충"`
	TitleEn          string    `gorm:"column:title_en" json:"title_en" example:"Parasite"`
	ProductionYear   *int      `gorm:"index" json:"production_year" example:"2019"`
	Type             string    `gorm:"index" json:"type" example:"장편"`
	ProductionStatus string    `gorm:"index" json:"production_status" example:"개봉"`
	DirectorID       *uint     `gorm:"index" json:"director_id"`
	CompanyID        *uint     `gorm:"index" json:"company_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

type Director struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name" example:"봉준호"`
	CreatedAt time.Time `json:"created_at"`
}

func (Director) TableName() string {
	return "directors"
}

type ProductionCompany struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name" example:"바른손이앤에이"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProductionCompany) TableName() string {
	return "production_companies"
}

// CatalogStats is the filter-independent view served by the stats endpoint.
type CatalogStats struct {
	TotalMovies int64 `json:"total_movies" example:"92341"`
}

// TableCounts is reported by the loader after an import.
type TableCounts struct {
	Movies              int64 `json:"movies"`
	Directors           int64 `json:"directors"`
	ProductionCompanies int64 `json:"production_companies"`
	Genres              int64 `json:"genres"`
	Countries           int64 `json:"countries"`
	MovieGenres         int64 `json:"movie_genres"`
	MovieCountries      int64 `json:"movie_countries"`
}
