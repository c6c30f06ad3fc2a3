package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTransaction runs fn inside a single database transaction.
	// The transaction travels in the context passed to fn; repository calls made
	// with that context join it. fn returning an error rolls everything back.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
