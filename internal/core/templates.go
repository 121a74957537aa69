package core

import (
	"github.com/Masterminds/squirrel"
)

// Templates holds the four statements derived from a table layout.
// UpdateSQL is empty when the table has no non-key columns.
type Templates struct {
	SelectSQL string
	InsertSQL string
	UpdateSQL string
	DeleteSQL string
}

// BuildTemplates derives select/insert/update/delete statements for table.
// cols are the non-key columns in declaration order; pk is the key column.
func BuildTemplates(table, pk string, cols []string) (Templates, error) {
	var t Templates
	var err error

	t.SelectSQL, _, err = squirrel.
		Select(QuoteAll(append([]string{pk}, cols...)...)...).
		From(Quote(table)).
		ToSql()
	if err != nil {
		return Templates{}, err
	}

	insertCols := QuoteAll(append(append([]string{}, cols...), pk)...)
	t.InsertSQL, _, err = squirrel.
		Insert(Quote(table)).
		Columns(insertCols...).
		Values(make([]any, len(insertCols))...).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return Templates{}, err
	}

	if len(cols) > 0 {
		ub := squirrel.Update(Quote(table)).PlaceholderFormat(squirrel.Question)
		for _, c := range cols {
			ub = ub.Set(Quote(c), nil)
		}
		t.UpdateSQL, _, err = ub.Where(Quote(pk)+" = ?", nil).ToSql()
		if err != nil {
			return Templates{}, err
		}
	}

	t.DeleteSQL, _, err = squirrel.
		Delete(Quote(table)).
		Where(Quote(pk)+" = ?", nil).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return Templates{}, err
	}
	return t, nil
}
