package query

import (
	"fmt"
	"sort"
	"testing"

	"kobis-search/internal/models"
)

func TestParseSortOrder(t *testing.T) {
	tests := map[string]SortOrder{
		"year_desc":  SortYearDesc,
		"year_asc":   SortYearAsc,
		"title_asc":  SortTitleAsc,
		"title_desc": SortTitleDesc,
		" title_asc": SortTitleAsc,
		"":           SortYearDesc,
		"popularity": SortYearDesc,
		"TITLE_ASC":  SortYearDesc,
	}
	for in, want := range tests {
		if got := ParseSortOrder(in); got != want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]CharClass{
		"가을":     ClassHangul,
		"힣":      ClassHangul,
		"1세":     ClassDigit,
		"Avatar": ClassLetter,
		"avatar": ClassLetter,
		"#Blue":  ClassOther,
		" x":     ClassOther,
		"ㄱ":      ClassOther,
		"":       ClassOther,
		"漢字":     ClassOther,
	}
	for title, want := range tests {
		if got := Classify(title); got != want {
			t.Errorf("Classify(%q) = %d, want %d", title, got, want)
		}
	}
}

func TestResolveSort_SQL(t *testing.T) {
	tests := []struct {
		selector string
		d        Dialect
		want     string
	}{
		{
			selector: "year_desc",
			d:        Postgres,
			want:     `CASE WHEN m.production_year IS NULL THEN 1 ELSE 0 END, m.production_year DESC, m.title_ko COLLATE "C" ASC, m.id ASC`,
		},
		{
			selector: "bogus",
			d:        SQLite,
			want:     `CASE WHEN m.production_year IS NULL THEN 1 ELSE 0 END, m.production_year DESC, m.title_ko COLLATE BINARY ASC, m.id ASC`,
		},
		{
			selector: "year_asc",
			d:        Postgres,
			want:     `CASE WHEN m.production_year IS NULL THEN 1 ELSE 0 END, m.production_year ASC, m.title_ko COLLATE "C" ASC, m.id ASC`,
		},
		{
			selector: "title_asc",
			d:        Postgres,
			want: `CASE WHEN ASCII(m.title_ko) BETWEEN 44032 AND 55203 THEN 1` +
				` WHEN ASCII(m.title_ko) BETWEEN 48 AND 57 THEN 2` +
				` WHEN ASCII(m.title_ko) BETWEEN 65 AND 90 OR ASCII(m.title_ko) BETWEEN 97 AND 122 THEN 3` +
				` ELSE 4 END, m.title_ko COLLATE "C" ASC, m.id ASC`,
		},
		{
			selector: "title_desc",
			d:        SQLite,
			want: `CASE WHEN UNICODE(m.title_ko) BETWEEN 65 AND 90 OR UNICODE(m.title_ko) BETWEEN 97 AND 122 THEN 1` +
				` WHEN UNICODE(m.title_ko) BETWEEN 44032 AND 55203 THEN 2` +
				` WHEN UNICODE(m.title_ko) BETWEEN 48 AND 57 THEN 3` +
				` ELSE 4 END, m.title_ko COLLATE BINARY DESC, m.id ASC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got := ResolveSort(tt.selector, tt.d)
			if got.SQL != tt.want {
				t.Errorf("SQL mismatch\n got: %s\nwant: %s", got.SQL, tt.want)
			}
		})
	}
}

func TestCompare_TitleBuckets(t *testing.T) {
	titles := []string{"#Blue", "apple", "1세", "Avatar", "가을"}

	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortTitleAsc, []string{"가을", "1세", "Avatar", "apple", "#Blue"}},
		{SortTitleDesc, []string{"apple", "Avatar", "가을", "1세", "#Blue"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			rows := rowsWithTitles(titles)
			sort.Slice(rows, func(i, j int) bool { return Compare(tt.order, rows[i], rows[j]) < 0 })

			for i, row := range rows {
				if row.TitleKo != tt.want[i] {
					t.Fatalf("position %d: got %q, want %q (full: %v)", i, row.TitleKo, tt.want[i], titlesOf(rows))
				}
			}
		})
	}
}

func TestCompare_MixedScriptTitles(t *testing.T) {
	rows := rowsWithTitles([]string{"1세", "가을", "Avatar", "#Blue"})
	sort.Slice(rows, func(i, j int) bool { return Compare(SortTitleAsc, rows[i], rows[j]) < 0 })

	want := []string{"가을", "1세", "Avatar", "#Blue"}
	for i, row := range rows {
		if row.TitleKo != want[i] {
			t.Fatalf("got %v, want %v", titlesOf(rows), want)
		}
	}
}

func TestCompare_Years(t *testing.T) {
	y := func(v int) *int { return &v }
	rows := []models.MovieRow{
		{ID: 1, TitleKo: "나", ProductionYear: y(2001)},
		{ID: 2, TitleKo: "가", ProductionYear: nil},
		{ID: 3, TitleKo: "다", ProductionYear: y(2010)},
		{ID: 4, TitleKo: "가", ProductionYear: y(2001)},
	}

	tests := []struct {
		order SortOrder
		want  []uint
	}{
		{SortYearDesc, []uint{3, 4, 1, 2}},
		{SortYearAsc, []uint{4, 1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			sorted := append([]models.MovieRow(nil), rows...)
			sort.Slice(sorted, func(i, j int) bool { return Compare(tt.order, sorted[i], sorted[j]) < 0 })
			for i, row := range sorted {
				if row.ID != tt.want[i] {
					t.Fatalf("position %d: got id %d, want %d", i, row.ID, tt.want[i])
				}
			}
		})
	}
}

func TestCompare_YearTiesAcrossTitleKinds(t *testing.T) {
	y := func(v int) *int { return &v }
	rows := []models.MovieRow{
		{ID: 1, TitleKo: "가을", ProductionYear: y(2010)},
		{ID: 2, TitleKo: "apple", ProductionYear: y(2010)},
		{ID: 3, TitleKo: "다리", ProductionYear: nil},
		{ID: 4, TitleKo: "1세", ProductionYear: y(2010)},
		{ID: 5, TitleKo: "나무", ProductionYear: y(2020)},
		{ID: 6, TitleKo: "#Blue", ProductionYear: y(2010)},
		{ID: 7, TitleKo: "Avatar", ProductionYear: y(2010)},
	}

	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortYearDesc, []string{"나무", "#Blue", "1세", "Avatar", "apple", "가을", "다리"}},
		{SortYearAsc, []string{"#Blue", "1세", "Avatar", "apple", "가을", "나무", "다리"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			sorted := append([]models.MovieRow(nil), rows...)
			sort.Slice(sorted, func(i, j int) bool { return Compare(tt.order, sorted[i], sorted[j]) < 0 })

			got := titlesOf(sorted)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func rowsWithTitles(titles []string) []models.MovieRow {
	rows := make([]models.MovieRow, len(titles))
	for i, title := range titles {
		rows[i] = models.MovieRow{ID: uint(i + 1), TitleKo: title}
	}
	return rows
}

func titlesOf(rows []models.MovieRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.TitleKo
	}
	return out
}
