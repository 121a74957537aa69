package orm

import (
	"fmt"

	"github.com/TechXTT/blog/internal/core"
)

// Schema is the derived description of one record type: its table, fields
// and the SQL templates used by Model. Build it once per record type with
// NewSchema or MustSchema and share it; it is read-only after construction.
type Schema struct {
	table      string
	primaryKey string
	// fields lists the non-key attributes in declaration order.
	fields   []string
	mappings map[string]*Field

	tpl core.Templates
}

// NewSchema validates the field declarations and derives the templates.
// Exactly one field must be marked PrimaryKey, and no two fields may share
// a column.
func NewSchema(table string, fields ...*Field) (*Schema, error) {
	if table == "" {
		return nil, fmt.Errorf("schema: %w", ErrEmptyTable)
	}
	s := &Schema{
		table:    table,
		mappings: make(map[string]*Field, len(fields)),
	}
	columns := make(map[string]string, len(fields))
	var cols []string
	for _, f := range fields {
		if f == nil || f.name == "" {
			return nil, fmt.Errorf("schema %s: %w", table, ErrUnnamedField)
		}
		if _, dup := s.mappings[f.name]; dup {
			return nil, fmt.Errorf("schema %s: field %s: %w", table, f.name, ErrDuplicateField)
		}
		if other, dup := columns[f.Column()]; dup {
			return nil, fmt.Errorf("schema %s: field %s: column %s already used by %s: %w",
				table, f.name, f.Column(), other, ErrDuplicateField)
		}
		s.mappings[f.name] = f
		columns[f.Column()] = f.name
		if f.primaryKey {
			if s.primaryKey != "" {
				return nil, fmt.Errorf("schema %s: field %s: %w", table, f.name, ErrDuplicatePrimaryKey)
			}
			s.primaryKey = f.name
			continue
		}
		s.fields = append(s.fields, f.name)
		cols = append(cols, f.Column())
	}
	if s.primaryKey == "" {
		return nil, fmt.Errorf("schema %s: %w", table, ErrMissingPrimaryKey)
	}

	tpl, err := core.BuildTemplates(table, s.mappings[s.primaryKey].Column(), cols)
	if err != nil {
		return nil, fmt.Errorf("schema %s: build templates: %w", table, err)
	}
	s.tpl = tpl
	return s, nil
}

// MustSchema is NewSchema for package-level declarations; it panics on a
// definition error so a broken record type cannot be used.
func MustSchema(table string, fields ...*Field) *Schema {
	s, err := NewSchema(table, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Table() string { return s.table }

// PrimaryKey returns the primary-key attribute name.
func (s *Schema) PrimaryKey() string { return s.primaryKey }

// Fields returns the non-key attributes in declaration order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.fields...)
}

// Field returns the field declared for attribute name, or nil.
func (s *Schema) Field(name string) *Field { return s.mappings[name] }

// Key returns the primary-key field.
func (s *Schema) Key() *Field {
	return s.mappings[s.primaryKey]
}

// Attributes returns the primary key followed by the non-key attributes,
// matching the column order of SelectSQL.
func (s *Schema) Attributes() []string {
	return append([]string{s.primaryKey}, s.fields...)
}

func (s *Schema) SelectSQL() string { return s.tpl.SelectSQL }
func (s *Schema) InsertSQL() string { return s.tpl.InsertSQL }

// UpdateSQL is empty when the schema has no non-key fields.
func (s *Schema) UpdateSQL() string { return s.tpl.UpdateSQL }
func (s *Schema) DeleteSQL() string { return s.tpl.DeleteSQL }

// attributeFor maps a result column back to its attribute name.
func (s *Schema) attributeFor(column string) string {
	for name, f := range s.mappings {
		if f.Column() == column {
			return name
		}
	}
	return column
}
