package query

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"kobis-search/internal/models"
)

type SortOrder string

const (
	SortYearDesc  SortOrder = "year_desc"
	SortYearAsc   SortOrder = "year_asc"
	SortTitleAsc  SortOrder = "title_asc"
	SortTitleDesc SortOrder = "title_desc"
)

// ParseSortOrder falls back to SortYearDesc for anything it does not know.
func ParseSortOrder(s string) SortOrder {
	switch o := SortOrder(strings.TrimSpace(s)); o {
	case SortYearDesc, SortYearAsc, SortTitleAsc, SortTitleDesc:
		return o
	default:
		return SortYearDesc
	}
}

// CharClass classifies the first character of a title.
type CharClass int

const (
	ClassOther CharClass = iota
	ClassHangul
	ClassDigit
	ClassLetter
)

type codeRange struct{ lo, hi rune }

// classRanges are inclusive. Everything outside them is ClassOther.
var classRanges = map[CharClass][]codeRange{
	ClassHangul: {{0xAC00, 0xD7A3}},
	ClassDigit:  {{'0', '9'}},
	ClassLetter: {{'A', 'Z'}, {'a', 'z'}},
}

// bucketOrder lists the classes in presentation order for the title sorts.
// Classes not listed come last.
var bucketOrder = map[SortOrder][]CharClass{
	SortTitleAsc:  {ClassHangul, ClassDigit, ClassLetter},
	SortTitleDesc: {ClassLetter, ClassHangul, ClassDigit},
}

// Classify returns the class of the first character of title. Empty titles
// and invalid UTF-8 are ClassOther.
func Classify(title string) CharClass {
	r, size := utf8.DecodeRuneInString(title)
	if size == 0 || r == utf8.RuneError {
		return ClassOther
	}
	for _, class := range []CharClass{ClassHangul, ClassDigit, ClassLetter} {
		for _, cr := range classRanges[class] {
			if r >= cr.lo && r <= cr.hi {
				return class
			}
		}
	}
	return ClassOther
}

// Bucket is the 1-based rank of title under a title sort order.
func Bucket(order SortOrder, title string) int {
	class := Classify(title)
	buckets := bucketOrder[order]
	for i, c := range buckets {
		if c == class {
			return i + 1
		}
	}
	return len(buckets) + 1
}

// Ordering is a resolved ORDER BY list.
type Ordering struct {
	Order SortOrder
	SQL   string
}

// ResolveSort renders the ORDER BY list for selector. Every ordering ends on
// the movie id so that equal keys still paginate deterministically.
func ResolveSort(selector string, d Dialect) Ordering {
	order := ParseSortOrder(selector)
	title := d.Binary(colTitleKo)

	var keys []string
	switch order {
	case SortYearAsc:
		keys = []string{nullsLast(colProductionYear), colProductionYear + " ASC", title + " ASC"}
	case SortTitleAsc:
		keys = []string{bucketCase(order, d), title + " ASC"}
	case SortTitleDesc:
		keys = []string{bucketCase(order, d), title + " DESC"}
	default:
		keys = []string{nullsLast(colProductionYear), colProductionYear + " DESC", title + " ASC"}
	}
	keys = append(keys, colMovieID+" ASC")

	return Ordering{Order: order, SQL: strings.Join(keys, ", ")}
}

func nullsLast(column string) string {
	return fmt.Sprintf("CASE WHEN %s IS NULL THEN 1 ELSE 0 END", column)
}

// bucketCase renders Bucket as a SQL CASE over the first code point.
func bucketCase(order SortOrder, d Dialect) string {
	cp := d.CodePoint(colTitleKo)

	var b strings.Builder
	b.WriteString("CASE")
	buckets := bucketOrder[order]
	for i, class := range buckets {
		ranges := classRanges[class]
		conds := make([]string, len(ranges))
		for j, cr := range ranges {
			conds[j] = fmt.Sprintf("%s BETWEEN %d AND %d", cp, cr.lo, cr.hi)
		}
		fmt.Fprintf(&b, " WHEN %s THEN %d", strings.Join(conds, " OR "), i+1)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(buckets)+1)
	return b.String()
}

// Compare orders two rows the way ResolveSort orders them in the store.
// It returns a negative number when a sorts before b.
func Compare(order SortOrder, a, b models.MovieRow) int {
	switch order {
	case SortTitleAsc, SortTitleDesc:
		if c := Bucket(order, a.TitleKo) - Bucket(order, b.TitleKo); c != 0 {
			return c
		}
		c := strings.Compare(a.TitleKo, b.TitleKo)
		if order == SortTitleDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
	default:
		if c := compareYears(order, a.ProductionYear, b.ProductionYear); c != 0 {
			return c
		}
		if c := strings.Compare(a.TitleKo, b.TitleKo); c != 0 {
			return c
		}
	}
	return int(a.ID) - int(b.ID)
}

func compareYears(order SortOrder, a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case order == SortYearAsc:
		return *a - *b
	default:
		return *b - *a
	}
}
