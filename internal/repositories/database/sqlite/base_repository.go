package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// BaseRepository provides common functionality for all SQLite repositories
type BaseRepository struct {
	DB *sqlx.DB
}

// WithinTransaction executes fn within a database transaction.
// A call made while a transaction is already in ctx joins that transaction.
func (r *BaseRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromCtx(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// db returns the transaction carried by ctx, or the database handle when there is none.
// The handle is limited to one connection, so calls made inside a transaction must use it.
func (r *BaseRepository) db(ctx context.Context) sqlx.ExtContext {
	if tx := txFromCtx(ctx); tx != nil {
		return tx
	}
	return r.DB
}

func txFromCtx(ctx context.Context) *sqlx.Tx {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return nil
}
