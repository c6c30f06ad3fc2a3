package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

const countClientsQuery = `SELECT COUNT(*) FROM tb_client`

// SplitStatements splits a SQL script into statements on terminating semicolons.
// Blank lines and "--" comment lines are dropped.
func SplitStatements(script string) []string {
	var (
		stmts []string
		cur   strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(trimmed)
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSuffix(cur.String(), ";"))
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

// SeedPostgres runs script in one transaction when tb_client is empty.
// It reports whether any rows were inserted.
func SeedPostgres(ctx context.Context, pool *pgxpool.Pool, script string) (bool, error) {
	seeded := false
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var count int64
		if err := tx.QueryRow(ctx, countClientsQuery).Scan(&count); err != nil {
			return fmt.Errorf("failed to count clients: %w", err)
		}
		if count > 0 {
			return nil
		}
		for _, stmt := range SplitStatements(script) {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to run seed statement: %w", err)
			}
		}
		seeded = true
		return nil
	})
	return seeded, err
}

// SeedSQLite runs script in one transaction when tb_client is empty.
// It reports whether any rows were inserted.
func SeedSQLite(ctx context.Context, db *sqlx.DB, script string) (seeded bool, err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int64
	if err = tx.GetContext(ctx, &count, countClientsQuery); err != nil {
		return false, fmt.Errorf("failed to count clients: %w", err)
	}
	if count > 0 {
		return false, tx.Rollback()
	}
	for _, stmt := range SplitStatements(script) {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("failed to run seed statement: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return true, nil
}
