package models

// SearchRequest carries the raw filter values of one catalog search.
// Empty strings, empty sets and the "all" year sentinel impose no constraint.
type SearchRequest struct {
	Title            string
	Director         string
	YearFrom         string
	YearTo           string
	ProductionStatus []string
	Types            []string
	Genres           []string
	Countries        []string
	TitleIndex       string
	SortOrder        string
	Page             int
}

// MovieRow is the projection returned for each matching movie.
type MovieRow struct {
	ID               uint    `json:"movie_id" example:"1"`
	TitleKo          string  `json:"title_ko" example:"기생충"`
	TitleEn          string  `json:"title_en" example:"Parasite"`
	ProductionYear   *int    `json:"production_year" example:"2019"`
	Type             string  `json:"type" example:"장편"`
	ProductionStatus string  `json:"production_status" example:"개봉"`
	DirectorName     *string `json:"director_name" example:"봉준호"`
	CompanyName      *string `json:"company_name" example:"바른손이앤에이"`
	Genres           *string `json:"genres" example:"드라마, 스릴러"`
	Countries        *string `json:"countries" example:"한국"`
}

type ResultPage struct {
	Results    []MovieRow `json:"results"`
	Total      int64      `json:"total" example:"45"`
	Page       int        `json:"page" example:"1"`
	PerPage    int        `json:"per_page" example:"20"`
	TotalPages int        `json:"total_pages" example:"3"`
}
