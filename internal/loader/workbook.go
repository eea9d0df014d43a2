package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// headerRow is the 1-based row holding column names on the first sheet; the
// rows above it are a report banner.
const headerRow = 5

// Columns of the export in sheet order. The second sheet has no header and
// uses this order positionally.
var columns = []string{"영화명", "영화명(영문)", "제작연도", "제작국가", "유형", "장르", "제작상태", "감독", "제작사"}

var ErrMissingColumn = errors.New("workbook is missing a required column")

// ReadWorkbook reads both sheets of a KOBIS movie list export.
func ReadWorkbook(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	records, err := headedRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheets[0], err)
	}

	if len(sheets) > 1 {
		rows, err := f.GetRows(sheets[1])
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[1], err)
		}
		records = append(records, positionalRecords(rows)...)
	}

	return records, nil
}

// headedRecords locates each column by its name in the header row.
func headedRecords(rows [][]string) ([]Record, error) {
	if len(rows) < headerRow {
		return nil, fmt.Errorf("expected a header on row %d, sheet has %d rows", headerRow, len(rows))
	}

	index := make(map[string]int)
	for i, name := range rows[headerRow-1] {
		index[strings.TrimSpace(name)] = i
	}

	positions := make([]int, len(columns))
	for i, name := range columns {
		pos, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		positions[i] = pos
	}

	var records []Record
	for _, row := range rows[headerRow:] {
		if rec, ok := toRecord(row, positions); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func positionalRecords(rows [][]string) []Record {
	positions := make([]int, len(columns))
	for i := range positions {
		positions[i] = i
	}

	var records []Record
	for _, row := range rows {
		if rec, ok := toRecord(row, positions); ok {
			records = append(records, rec)
		}
	}
	return records
}

// toRecord picks cells by position. Rows with no content are reported as
// not ok; excelize trims trailing empty cells, so short rows are expected.
func toRecord(row []string, positions []int) (Record, bool) {
	cell := func(i int) string {
		if p := positions[i]; p < len(row) {
			return strings.TrimSpace(row[p])
		}
		return ""
	}

	rec := Record{
		TitleKo:   cell(0),
		TitleEn:   cell(1),
		Year:      cell(2),
		Countries: cell(3),
		Type:      cell(4),
		Genres:    cell(5),
		Status:    cell(6),
		Director:  cell(7),
		Company:   cell(8),
	}
	if rec == (Record{}) {
		return rec, false
	}
	return rec, true
}
