package query

import "fmt"

// Dialect holds the SQL spellings that differ between the supported stores.
type Dialect struct {
	name      string
	codePoint string
	binary    string
}

var (
	// Postgres requires a UTF8 database, where ASCII() yields the code point
	// of the first character. database.Connect refuses any other encoding.
	Postgres = Dialect{name: "postgres", codePoint: "ASCII(%s)", binary: `%s COLLATE "C"`}
	SQLite   = Dialect{name: "sqlite", codePoint: "UNICODE(%s)", binary: "%s COLLATE BINARY"}
)

// DialectFor maps a gorm dialector name to its Dialect. Unknown names get
// Postgres.
func DialectFor(name string) Dialect {
	if name == SQLite.name {
		return SQLite
	}
	return Postgres
}

func (d Dialect) Name() string {
	return d.name
}

// CodePoint renders the code point of the first character of expr.
func (d Dialect) CodePoint(expr string) string {
	return fmt.Sprintf(d.codePoint, expr)
}

// Binary renders expr under byte-order (code point) collation.
func (d Dialect) Binary(expr string) string {
	return fmt.Sprintf(d.binary, expr)
}
