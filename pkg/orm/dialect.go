package orm

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Dialect rewrites the canonical statement form (backtick identifiers, `?`
// placeholders) into what a driver accepts.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	// IdentQuote replaces the backtick; empty keeps backticks.
	IdentQuote string
}

var (
	MySQL    = Dialect{Name: "mysql", Placeholder: squirrel.Question}
	Postgres = Dialect{Name: "postgres", Placeholder: squirrel.Dollar, IdentQuote: `"`}
	SQLite   = Dialect{Name: "sqlite", Placeholder: squirrel.Question}
)

// DialectFor returns the dialect registered for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "mysql":
		return MySQL, nil
	case "postgres":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("no dialect for driver %q", driver)
	}
}

// Rebind translates query into the dialect's native syntax.
func (d Dialect) Rebind(query string) (string, error) {
	if d.IdentQuote != "" {
		query = strings.ReplaceAll(query, "`", d.IdentQuote)
	}
	if d.Placeholder == nil {
		return query, nil
	}
	return d.Placeholder.ReplacePlaceholders(query)
}
