package orm

import (
	"context"
	"fmt"

	"github.com/TechXTT/blog/internal/core"
	"github.com/TechXTT/blog/pkg/logger"
)

// Model runs the schema's statements for records of type T. T is a struct
// whose `db` tags name the schema attributes.
type Model[T any] struct {
	db     *DB
	schema *Schema
}

func NewModel[T any](db *DB, schema *Schema) *Model[T] {
	return &Model[T]{db: db, schema: schema}
}

func (m *Model[T]) Schema() *Schema { return m.schema }

// Find loads the record whose primary key equals pk. It returns ErrNotFound
// when no row matches.
func (m *Model[T]) Find(ctx context.Context, pk any) (*T, error) {
	query := m.schema.SelectSQL() + " WHERE " + core.Quote(m.schema.Key().Column()) + " = ?"
	rows, err := m.db.Select(ctx, query, []any{pk}, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return m.fromRow(rows[0])
}

// FindAll returns every record matching opts.
func (m *Model[T]) FindAll(ctx context.Context, opts ...QueryOption) ([]*T, error) {
	q := newQuery(opts)
	cols := []string{m.schema.Key().Column()}
	for _, name := range m.schema.Fields() {
		cols = append(cols, m.schema.Field(name).Column())
	}
	qb := core.NewQueryBuilder(m.schema.Table()).Select(cols...)
	q.apply(qb, true)
	query, args, err := qb.Build()
	if err != nil {
		return nil, err
	}
	rows, err := m.db.Select(ctx, query, args, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(rows))
	for _, r := range rows {
		rec, err := m.fromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Count returns the number of rows matching opts; ordering and paging
// options are ignored.
func (m *Model[T]) Count(ctx context.Context, opts ...QueryOption) (int64, error) {
	q := newQuery(opts)
	qb := core.NewQueryBuilder(m.schema.Table()).SelectRaw("COUNT(*) AS " + core.Quote(countColumn))
	q.apply(qb, false)
	query, args, err := qb.Build()
	if err != nil {
		return 0, err
	}
	rows, err := m.db.Select(ctx, query, args, 1)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	var res struct {
		Num int64 `db:"_num_"`
	}
	if err := Decode(rows[0], &res); err != nil {
		return 0, err
	}
	return res.Num, nil
}

// Save inserts rec. Unset attributes take their declared default, which is
// also written back into rec. An affected row count other than one is
// logged, not returned.
func (m *Model[T]) Save(ctx context.Context, rec *T) error {
	if err := beforeSave(ctx, rec); err != nil {
		return err
	}
	attrs := append(m.schema.Fields(), m.schema.PrimaryKey())
	args, err := m.values(ctx, rec, attrs)
	if err != nil {
		return err
	}
	affected, err := m.db.Execute(ctx, m.schema.InsertSQL(), args)
	if err != nil {
		return err
	}
	if affected != 1 {
		logger.FromContext(ctx).Warn("failed to insert record", "table", m.schema.Table(), "affected", affected)
	}
	return nil
}

// Update writes every non-key attribute of rec to the row with rec's key.
func (m *Model[T]) Update(ctx context.Context, rec *T) error {
	if m.schema.UpdateSQL() == "" {
		return fmt.Errorf("%s: %w", m.schema.Table(), ErrNoFields)
	}
	if err := beforeSave(ctx, rec); err != nil {
		return err
	}
	attrs := append(m.schema.Fields(), m.schema.PrimaryKey())
	args, err := m.values(ctx, rec, attrs)
	if err != nil {
		return err
	}
	affected, err := m.db.Execute(ctx, m.schema.UpdateSQL(), args)
	if err != nil {
		return err
	}
	if affected != 1 {
		logger.FromContext(ctx).Warn("failed to update by primary key", "table", m.schema.Table(), "affected", affected)
	}
	return nil
}

// Remove deletes the row with rec's key. The key must be set.
func (m *Model[T]) Remove(ctx context.Context, rec *T) error {
	row, err := Encode(rec)
	if err != nil {
		return err
	}
	pk, ok := row[m.schema.PrimaryKey()]
	if !ok || pk == nil {
		return fmt.Errorf("%s.%s: %w", m.schema.Table(), m.schema.PrimaryKey(), ErrMissingValue)
	}
	affected, err := m.db.Execute(ctx, m.schema.DeleteSQL(), []any{pk})
	if err != nil {
		return err
	}
	if affected != 1 {
		logger.FromContext(ctx).Warn("failed to remove by primary key", "table", m.schema.Table(), "affected", affected)
	}
	return nil
}

// values returns rec's value for each attribute, resolving defaults for
// the unset ones and assigning them back to rec.
func (m *Model[T]) values(ctx context.Context, rec *T, attrs []string) ([]any, error) {
	row, err := Encode(rec)
	if err != nil {
		return nil, err
	}
	applied := Row{}
	args := make([]any, 0, len(attrs))
	for _, name := range attrs {
		v, ok := row[name]
		if !ok || v == nil {
			f := m.schema.Field(name)
			if !f.HasDefault() {
				return nil, fmt.Errorf("%s.%s: %w", m.schema.Table(), name, ErrMissingValue)
			}
			if v, err = f.DefaultValue(); err != nil {
				return nil, err
			}
			logger.FromContext(ctx).Debug("using default value", "field", name, "value", v)
			applied[name] = v
		}
		args = append(args, v)
	}
	if len(applied) > 0 {
		if err := Decode(applied, rec); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// fromRow decodes a column-keyed result row into a new record.
func (m *Model[T]) fromRow(r Row) (*T, error) {
	attrs := make(Row, len(r))
	for col, v := range r {
		attrs[m.schema.attributeFor(col)] = v
	}
	rec := new(T)
	if err := Decode(attrs, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func beforeSave(ctx context.Context, rec any) error {
	if h, ok := rec.(BeforeSaver); ok {
		return h.BeforeSave(ctx)
	}
	return nil
}
