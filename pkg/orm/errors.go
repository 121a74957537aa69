package orm

import "errors"

var (
	ErrEmptyTable          = errors.New("table name is required")
	ErrUnnamedField        = errors.New("field name is required")
	ErrDuplicateField      = errors.New("duplicate field")
	ErrDuplicatePrimaryKey = errors.New("duplicate primary key")
	ErrMissingPrimaryKey   = errors.New("primary key not found")

	// ErrNotFound is returned by Find when no row matches the key.
	ErrNotFound = errors.New("record not found")
	// ErrMissingValue is returned when an attribute has neither a value nor a default.
	ErrMissingValue = errors.New("missing value")
	// ErrNoFields is returned by Update on a schema with only a primary key.
	ErrNoFields = errors.New("schema has no updatable fields")
)
