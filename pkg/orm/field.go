package orm

import (
	"fmt"
	"reflect"
)

// Field describes one mapped attribute. It is immutable once constructed.
type Field struct {
	name       string
	column     string
	columnType string
	primaryKey bool
	def        any
}

// FieldOption customises a Field at construction time.
type FieldOption func(*Field)

// PrimaryKey marks the field as the table's primary key.
func PrimaryKey() FieldOption {
	return func(f *Field) { f.primaryKey = true }
}

// Default sets the value used when a record leaves the attribute unset.
// A zero-argument function with one result is called each time the default
// is needed.
func Default(v any) FieldOption {
	return func(f *Field) { f.def = v }
}

// Column overrides the column name; the attribute name is used otherwise.
func Column(name string) FieldOption {
	return func(f *Field) { f.column = name }
}

// DDL overrides the column type.
func DDL(columnType string) FieldOption {
	return func(f *Field) { f.columnType = columnType }
}

func newField(name, columnType string, def any, opts ...FieldOption) *Field {
	f := &Field{name: name, columnType: columnType, def: def}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func StringField(name string, opts ...FieldOption) *Field {
	return newField(name, "varchar(100)", nil, opts...)
}

// BooleanField can never be a primary key.
func BooleanField(name string, opts ...FieldOption) *Field {
	f := newField(name, "boolean", nil, opts...)
	f.primaryKey = false
	return f
}

func IntegerField(name string, opts ...FieldOption) *Field {
	return newField(name, "bigint", int64(0), opts...)
}

func FloatField(name string, opts ...FieldOption) *Field {
	return newField(name, "real", 0.0, opts...)
}

func TextField(name string, opts ...FieldOption) *Field {
	return newField(name, "text", nil, opts...)
}

// Name is the attribute name used as the row key.
func (f *Field) Name() string { return f.name }

// Column is the column name used in SQL.
func (f *Field) Column() string {
	if f.column != "" {
		return f.column
	}
	return f.name
}

func (f *Field) ColumnType() string { return f.columnType }

func (f *Field) IsPrimaryKey() bool { return f.primaryKey }

// HasDefault reports whether a default was declared.
func (f *Field) HasDefault() bool { return f.def != nil }

// DefaultValue resolves the default, invoking it when it is a producer.
func (f *Field) DefaultValue() (any, error) {
	if f.def == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(f.def)
	if rv.Kind() != reflect.Func {
		return f.def, nil
	}
	ft := rv.Type()
	if ft.NumIn() != 0 || ft.NumOut() != 1 {
		return nil, fmt.Errorf("default for %s must take no arguments and return one value", f.name)
	}
	return rv.Call(nil)[0].Interface(), nil
}

func (f *Field) String() string {
	return fmt.Sprintf("<%s, %s:%s>", f.name, f.columnType, f.Column())
}
