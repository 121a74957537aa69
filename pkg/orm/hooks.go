package orm

import "context"

// BeforeSaver is implemented by records that adjust or validate themselves
// before Save and Update issue their statement. A returned error aborts the
// statement.
type BeforeSaver interface {
	BeforeSave(ctx context.Context) error
}
