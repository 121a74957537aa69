// File: internal/core/builder.go
package core

import (
	"math"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Quote wraps an identifier in backticks, doubling any embedded backtick.
func Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

// QuoteAll quotes every identifier in idents.
func QuoteAll(idents ...string) []string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = Quote(id)
	}
	return out
}

// noLimit stands in for "all rows" when only an offset is given; MySQL and
// SQLite reject OFFSET without LIMIT.
const noLimit = math.MaxInt64

// QueryBuilder is a fluent builder for filtered selects against one table.
// It always emits `?` placeholders; the gateway rewrites them per dialect.
type QueryBuilder struct {
	table      string
	selectCols []string
	whereOps   []string
	args       []any
	orderBy    []string
	limit      uint64
	offset     uint64
}

func NewQueryBuilder(table string) *QueryBuilder {
	return &QueryBuilder{table: table}
}

// Select sets the column list; names are quoted.
func (qb *QueryBuilder) Select(cols ...string) *QueryBuilder {
	qb.selectCols = QuoteAll(cols...)
	return qb
}

// SelectRaw sets the column list verbatim, e.g. "COUNT(*)".
func (qb *QueryBuilder) SelectRaw(exprs ...string) *QueryBuilder {
	qb.selectCols = exprs
	return qb
}

func (qb *QueryBuilder) Where(cond string, vals ...any) *QueryBuilder {
	qb.whereOps = append(qb.whereOps, cond)
	qb.args = append(qb.args, vals...)
	return qb
}

// OrderBy appends an ORDER BY term, e.g. "`created_at` DESC".
func (qb *QueryBuilder) OrderBy(order string) *QueryBuilder {
	qb.orderBy = append(qb.orderBy, order)
	return qb
}

func (qb *QueryBuilder) Limit(n uint64) *QueryBuilder {
	qb.limit = n
	return qb
}

func (qb *QueryBuilder) Offset(n uint64) *QueryBuilder {
	qb.offset = n
	return qb
}

// Build assembles the SQL query string and returns it with args
func (qb *QueryBuilder) Build() (string, []any, error) {
	cols := qb.selectCols
	if len(cols) == 0 {
		cols = []string{"*"}
	}
	sb := squirrel.Select(cols...).
		From(Quote(qb.table)).
		PlaceholderFormat(squirrel.Question)
	if len(qb.whereOps) > 0 {
		sb = sb.Where(strings.Join(qb.whereOps, " AND "), qb.args...)
	}
	if len(qb.orderBy) > 0 {
		sb = sb.OrderBy(qb.orderBy...)
	}
	switch {
	case qb.limit > 0:
		sb = sb.Limit(qb.limit)
	case qb.offset > 0:
		sb = sb.Limit(noLimit)
	}
	if qb.offset > 0 {
		sb = sb.Offset(qb.offset)
	}
	return sb.ToSql()
}
