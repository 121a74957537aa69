package orm

import "github.com/TechXTT/blog/internal/core"

const countColumn = "_num_"

// QueryOption narrows FindAll and Count.
type QueryOption func(*query)

type query struct {
	where   []string
	args    []any
	orderBy []string
	limit   uint64
	offset  uint64
}

// Where adds a condition written in the canonical form, e.g. "`user_id` = ?".
func Where(cond string, args ...any) QueryOption {
	return func(q *query) {
		q.where = append(q.where, cond)
		q.args = append(q.args, args...)
	}
}

func OrderBy(order string) QueryOption {
	return func(q *query) { q.orderBy = append(q.orderBy, order) }
}

func Limit(n uint64) QueryOption {
	return func(q *query) { q.limit = n }
}

func Offset(n uint64) QueryOption {
	return func(q *query) { q.offset = n }
}

func newQuery(opts []QueryOption) *query {
	q := &query{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *query) apply(qb *core.QueryBuilder, paging bool) {
	for i, cond := range q.where {
		if i == 0 {
			qb.Where(cond, q.args...)
			continue
		}
		qb.Where(cond)
	}
	if !paging {
		return
	}
	for _, o := range q.orderBy {
		qb.OrderBy(o)
	}
	qb.Limit(q.limit).Offset(q.offset)
}
