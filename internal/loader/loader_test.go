package loader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"kobis-search/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"2019", 2019, true},
		{" 2019 ", 2019, true},
		{"2019년", 0, false},
		{"19", 0, false},
		{"20190", 0, false},
		{"", 0, false},
		{"미정", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseYear(tt.raw)
			if !tt.ok {
				if got != nil {
					t.Errorf("ParseYear(%q) = %d, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("ParseYear(%q) = %v, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" 드라마, 스릴러,,드라마 ,  ")
	want := []string{"드라마", "스릴러"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	catalog := Normalize([]Record{
		{TitleKo: "기생충", TitleEn: "Parasite", Year: "2019", Countries: "한국", Genres: "드라마, 스릴러", Director: "봉준호", Company: "바른손이앤에이"},
		{TitleKo: "괴물", Year: "2006년", Countries: "한국, 미국", Genres: "스릴러", Director: " 봉준호 "},
		{TitleKo: "  ", TitleEn: "No Korean Title", Genres: "코미디"},
		{TitleKo: "기생", Genres: "드라마,드라마"},
	})

	if len(catalog.Movies) != 3 {
		t.Fatalf("Expected 3 movies, got %d", len(catalog.Movies))
	}
	if len(catalog.Directors) != 1 || catalog.Directors[0].Name != "봉준호" {
		t.Errorf("Expected one trimmed director, got %+v", catalog.Directors)
	}
	if *catalog.Movies[0].DirectorID != *catalog.Movies[1].DirectorID {
		t.Error("Expected both movies to share the director")
	}
	if catalog.Movies[1].ProductionYear != nil {
		t.Errorf("Expected unknown year, got %d", *catalog.Movies[1].ProductionYear)
	}
	if catalog.Movies[1].CompanyID != nil {
		t.Error("Expected no company for the second movie")
	}
	if catalog.Movies[2].TitleKo != "기생" {
		t.Errorf("Expected NFC title, got %q", catalog.Movies[2].TitleKo)
	}

	want := models.TableCounts{
		Movies:              3,
		Directors:           1,
		ProductionCompanies: 1,
		Genres:              2,
		Countries:           2,
		MovieGenres:         4,
		MovieCountries:      3,
	}
	if got := catalog.Counts(); got != want {
		t.Errorf("Expected counts %+v, got %+v", want, got)
	}

	for i, m := range catalog.Movies {
		if m.ID != uint(i+1) {
			t.Errorf("movie %d has id %d", i, m.ID)
		}
	}
}

func workbook(t *testing.T, withHeader bool) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetCellValue("Sheet1", "A1", "영화정보 리스트"); err != nil {
		t.Fatal(err)
	}
	header := []interface{}{"영화명", "영화명(영문)", "제작연도", "제작국가", "유형", "장르", "제작상태", "감독", "제작사"}
	if !withHeader {
		header = header[1:]
	}
	if err := f.SetSheetRow("Sheet1", "A5", &header); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Sheet1", "A6", &[]interface{}{"기생충", "Parasite", "2019", "한국", "장편", "드라마", "개봉", "봉준호", "바른손이앤에이"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Sheet1", "A7", &[]interface{}{"괴물", "The Host", "2006", "한국"}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Sheet2", "A1", &[]interface{}{"Avatar", "Avatar", "2009", "미국", "장편", "SF", "개봉", "James Cameron", ""}); err != nil {
		t.Fatal(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestReadWorkbook(t *testing.T) {
	records, err := ReadWorkbook(workbook(t, true))
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d: %+v", len(records), records)
	}

	want := Record{TitleKo: "기생충", TitleEn: "Parasite", Year: "2019", Countries: "한국", Type: "장편", Genres: "드라마", Status: "개봉", Director: "봉준호", Company: "바른손이앤에이"}
	if records[0] != want {
		t.Errorf("Expected %+v, got %+v", want, records[0])
	}
	if records[1].TitleKo != "괴물" || records[1].Genres != "" {
		t.Errorf("unexpected short row %+v", records[1])
	}
	if records[2].TitleKo != "Avatar" || records[2].Director != "James Cameron" {
		t.Errorf("unexpected second sheet row %+v", records[2])
	}
}

func TestReadWorkbook_MissingColumn(t *testing.T) {
	_, err := ReadWorkbook(workbook(t, false))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}

type fakeWriter struct {
	catalog *models.Catalog
	err     error
}

func (w *fakeWriter) Replace(ctx context.Context, c *models.Catalog) error {
	w.catalog = c
	return w.err
}

func TestImporter_Import(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	writer := &fakeWriter{}
	summary, err := NewImporter(writer, logger).Import(context.Background(), "test.xlsx", workbook(t, true))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if summary.Rows != 3 || summary.Skipped != 0 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Counts.Movies != 3 || summary.Counts.Countries != 2 {
		t.Errorf("unexpected counts %+v", summary.Counts)
	}
	if summary.RunID == "" {
		t.Error("Expected a run id")
	}
	if writer.catalog == nil || len(writer.catalog.Movies) != 3 {
		t.Error("Expected the catalog to reach the writer")
	}
}

func TestImporter_ImportWriterFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	writer := &fakeWriter{err: errors.New("disk full")}
	if _, err := NewImporter(writer, logger).Import(context.Background(), "test.xlsx", workbook(t, true)); err == nil {
		t.Fatal("Expected an error from a failing writer")
	}
}
