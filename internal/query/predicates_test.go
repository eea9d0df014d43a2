package query

import (
	"reflect"
	"strings"
	"testing"

	"kobis-search/internal/models"
)

func TestBuildPredicates_EmptyRequest(t *testing.T) {
	req := models.SearchRequest{
		YearFrom:  "--전체--",
		YearTo:    "all",
		Genres:    []string{"", "  "},
		SortOrder: "year_desc",
		Page:      1,
	}

	preds := BuildPredicates(req, Postgres)
	if len(preds) != 0 {
		t.Fatalf("Expected 0 predicates, got %d: %+v", len(preds), preds)
	}
}

func TestBuildPredicates_Fields(t *testing.T) {
	tests := []struct {
		name     string
		req      models.SearchRequest
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "title matches either title",
			req:      models.SearchRequest{Title: " Parasite "},
			wantSQL:  `(LOWER(m.title_ko) LIKE ? ESCAPE '\' OR LOWER(m.title_en) LIKE ? ESCAPE '\')`,
			wantArgs: []interface{}{"%parasite%", "%parasite%"},
		},
		{
			name:     "title wildcards are escaped",
			req:      models.SearchRequest{Title: "100%_done"},
			wantSQL:  `(LOWER(m.title_ko) LIKE ? ESCAPE '\' OR LOWER(m.title_en) LIKE ? ESCAPE '\')`,
			wantArgs: []interface{}{`%100\%\_done%`, `%100\%\_done%`},
		},
		{
			name:     "director",
			req:      models.SearchRequest{Director: "봉준호"},
			wantSQL:  `LOWER(d.name) LIKE ? ESCAPE '\'`,
			wantArgs: []interface{}{"%봉준호%"},
		},
		{
			name:     "year from",
			req:      models.SearchRequest{YearFrom: "2000"},
			wantSQL:  "m.production_year >= ?",
			wantArgs: []interface{}{2000},
		},
		{
			name:     "year to",
			req:      models.SearchRequest{YearTo: "2010"},
			wantSQL:  "m.production_year <= ?",
			wantArgs: []interface{}{2010},
		},
		{
			name:     "status set",
			req:      models.SearchRequest{ProductionStatus: []string{"개봉", "기타"}},
			wantSQL:  "m.production_status IN (?, ?)",
			wantArgs: []interface{}{"개봉", "기타"},
		},
		{
			name:     "type set",
			req:      models.SearchRequest{Types: []string{"장편"}},
			wantSQL:  "m.type IN (?)",
			wantArgs: []interface{}{"장편"},
		},
		{
			name: "genre set is OR of EXISTS",
			req:  models.SearchRequest{Genres: []string{"드라마", "코미디"}},
			wantSQL: "(EXISTS (SELECT 1 FROM movie_genres mg JOIN genres g ON g.id = mg.genre_id WHERE mg.movie_id = m.id AND g.name = ?)" +
				" OR EXISTS (SELECT 1 FROM movie_genres mg JOIN genres g ON g.id = mg.genre_id WHERE mg.movie_id = m.id AND g.name = ?))",
			wantArgs: []interface{}{"드라마", "코미디"},
		},
		{
			name:     "country set",
			req:      models.SearchRequest{Countries: []string{"한국"}},
			wantSQL:  "(EXISTS (SELECT 1 FROM movie_countries mc JOIN countries c ON c.id = mc.country_id WHERE mc.movie_id = m.id AND c.name = ?))",
			wantArgs: []interface{}{"한국"},
		},
		{
			name:     "latin index",
			req:      models.SearchRequest{TitleIndex: "A"},
			wantSQL:  "(SUBSTR(m.title_ko, 1, 1) = ? OR SUBSTR(m.title_en, 1, 1) = ?)",
			wantArgs: []interface{}{"A", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds := BuildPredicates(tt.req, Postgres)
			if len(preds) != 1 {
				t.Fatalf("Expected 1 predicate, got %d: %+v", len(preds), preds)
			}
			if preds[0].SQL != tt.wantSQL {
				t.Errorf("SQL mismatch\n got: %s\nwant: %s", preds[0].SQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(preds[0].Args, tt.wantArgs) {
				t.Errorf("Args mismatch: got %#v, want %#v", preds[0].Args, tt.wantArgs)
			}
		})
	}
}

func TestBuildPredicates_MalformedYearsAreIgnored(t *testing.T) {
	for _, year := range []string{"abc", "2019년", "-1", "20 19", "12345", "ALL", "전체"} {
		req := models.SearchRequest{YearFrom: year, YearTo: year}
		if preds := BuildPredicates(req, Postgres); len(preds) != 0 {
			t.Errorf("year %q: expected no predicates, got %+v", year, preds)
		}
	}
}

func TestBuildPredicates_OrderAndPlaceholders(t *testing.T) {
	req := fullRequest()

	preds := BuildPredicates(req, SQLite)
	if len(preds) != 9 {
		t.Fatalf("Expected 9 predicates, got %d", len(preds))
	}

	prefixes := []string{
		"(LOWER(m.title_ko)",
		"LOWER(d.name)",
		"m.production_year >=",
		"m.production_year <=",
		"m.production_status IN",
		"m.type IN",
		"(EXISTS (SELECT 1 FROM movie_genres",
		"(EXISTS (SELECT 1 FROM movie_countries",
		"(UNICODE(m.title_ko) >=",
	}
	for i, p := range preds {
		if !strings.HasPrefix(p.SQL, prefixes[i]) {
			t.Errorf("predicate %d: expected prefix %q, got %q", i, prefixes[i], p.SQL)
		}
		if got := strings.Count(p.SQL, "?"); got != len(p.Args) {
			t.Errorf("predicate %d: %d placeholders but %d args", i, got, len(p.Args))
		}
	}
}

func TestBuildPredicates_Deterministic(t *testing.T) {
	req := fullRequest()

	first := BuildPredicates(req, Postgres)
	second := BuildPredicates(req, Postgres)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Expected identical predicate lists\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildPredicates_NormalizesDecomposedHangul(t *testing.T) {
	// "기생충" spelled with conjoining jamo.
	decomposed := "\u1100\u1175\u1109\u1162\u11bc\u110e\u116e\u11bc"

	preds := BuildPredicates(models.SearchRequest{Title: decomposed}, Postgres)
	if len(preds) != 1 {
		t.Fatalf("Expected 1 predicate, got %d", len(preds))
	}
	if preds[0].Args[0] != "%기생충%" {
		t.Errorf("Expected NFC pattern %%기생충%%, got %q", preds[0].Args[0])
	}
}

func fullRequest() models.SearchRequest {
	return models.SearchRequest{
		Title:            "밤",
		Director:         "홍상수",
		YearFrom:         "1990",
		YearTo:           "2020",
		ProductionStatus: []string{"개봉"},
		Types:            []string{"장편", "단편"},
		Genres:           []string{"드라마", "멜로/로맨스"},
		Countries:        []string{"한국", "프랑스"},
		TitleIndex:       "ㅂ",
		SortOrder:        "title_asc",
		Page:             3,
	}
}
