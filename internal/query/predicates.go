package query

import (
	"fmt"
	"strings"

	"kobis-search/internal/models"

	"golang.org/x/text/unicode/norm"
)

// Predicate is one parameterized condition of the WHERE clause. Args bind the
// placeholders of SQL in order.
type Predicate struct {
	SQL  string
	Args []interface{}
}

// yearSentinels mean "no bound" when sent as a year value.
var yearSentinels = map[string]bool{
	"all":     true,
	"전체":      true,
	"--전체--": true,
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildPredicates turns a search request into the conjunctive predicate list
// applied to BaseTable and BaseJoins. It is pure: the same request and
// dialect always produce the same fragments and arguments, which is what lets
// the fetch and count queries call it independently and still agree.
//
// Missing, blank, sentinel or malformed values are skipped, never reported.
func BuildPredicates(req models.SearchRequest, d Dialect) []Predicate {
	preds := []Predicate{}

	if title := clean(req.Title); title != "" {
		pattern := containsPattern(title)
		preds = append(preds, Predicate{
			SQL:  fmt.Sprintf("(%s OR %s)", likeLower(colTitleKo), likeLower(colTitleEn)),
			Args: []interface{}{pattern, pattern},
		})
	}

	if director := clean(req.Director); director != "" {
		preds = append(preds, Predicate{
			SQL:  likeLower(colDirectorName),
			Args: []interface{}{containsPattern(director)},
		})
	}

	if year, ok := parseYear(req.YearFrom); ok {
		preds = append(preds, Predicate{SQL: colProductionYear + " >= ?", Args: []interface{}{year}})
	}
	if year, ok := parseYear(req.YearTo); ok {
		preds = append(preds, Predicate{SQL: colProductionYear + " <= ?", Args: []interface{}{year}})
	}

	preds = appendIn(preds, colProductionStatus, cleanSet(req.ProductionStatus))
	preds = appendIn(preds, colType, cleanSet(req.Types))
	preds = appendAny(preds, GenreFacet, cleanSet(req.Genres))
	preds = appendAny(preds, CountryFacet, cleanSet(req.Countries))

	if p, ok := ResolveIndex(req.TitleIndex, d); ok {
		preds = append(preds, p)
	}

	return preds
}

// appendIn adds "column IN (?, ...)" when values is not empty.
func appendIn(preds []Predicate, column string, values []string) []Predicate {
	if len(values) == 0 {
		return preds
	}

	placeholders := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		args[i] = v
	}

	return append(preds, Predicate{
		SQL:  fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")),
		Args: args,
	})
}

// appendAny adds one EXISTS per selected value, OR-combined: a movie matches
// when it is related to any of the values.
func appendAny(preds []Predicate, facet Facet, values []string) []Predicate {
	if len(values) == 0 {
		return preds
	}

	conds := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		conds[i] = facet.exists()
		args[i] = v
	}

	return append(preds, Predicate{
		SQL:  "(" + strings.Join(conds, " OR ") + ")",
		Args: args,
	})
}

func likeLower(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// parseYear accepts digits only; anything else is treated as absent.
func parseYear(raw string) (int, bool) {
	s := clean(raw)
	if s == "" || yearSentinels[strings.ToLower(s)] {
		return 0, false
	}

	year := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
		if year > 9999 {
			return 0, false
		}
	}
	return year, true
}

// clean trims s and composes it to NFC so decomposed Hangul input matches
// the precomposed syllables stored in the catalog.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func cleanSet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if c := clean(v); c != "" {
			out = append(out, c)
		}
	}
	return out
}
