package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	portsrepo "github.com/SscSPs/client_service/internal/core/ports/repositories"
	"github.com/SscSPs/client_service/internal/models"
	"github.com/SscSPs/client_service/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	clientColumns = `id, name, cpf, income, birth_date, children`
	dateLayout    = "2006-01-02"
)

// clientRow mirrors tb_client as SQLite stores it; dates are kept as TEXT.
type clientRow struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	CPF       string          `db:"cpf"`
	Income    decimal.Decimal `db:"income"`
	BirthDate string          `db:"birth_date"`
	Children  int             `db:"children"`
}

func (row clientRow) toModel() (models.Client, error) {
	birthDate, err := parseDate(row.BirthDate)
	if err != nil {
		return models.Client{}, fmt.Errorf("client %d: invalid birth_date %q: %w", row.ID, row.BirthDate, err)
	}
	return models.Client{
		ID:        row.ID,
		Name:      row.Name,
		CPF:       row.CPF,
		Income:    row.Income,
		BirthDate: birthDate,
		Children:  row.Children,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func formatDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

type SQLiteClientRepository struct {
	BaseRepository
}

// NewClientRepository creates a client repository backed by SQLite.
func NewClientRepository(db *sqlx.DB) portsrepo.ClientRepositoryWithTx {
	return &SQLiteClientRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.ClientRepositoryWithTx = (*SQLiteClientRepository)(nil)

func (r *SQLiteClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	var row clientRow
	query := `SELECT ` + clientColumns + ` FROM tb_client WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.db(ctx), &row, query, clientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %d: %w", clientID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find client by ID %d: %w", clientID, err)
	}

	return toDomainClient(row)
}

// FindClientByIDForUpdate reads the client inside the caller's transaction.
// SQLite serialises writers at the database level, so there is no row lock to take.
func (r *SQLiteClientRepository) FindClientByIDForUpdate(ctx context.Context, clientID int64) (*domain.Client, error) {
	return r.FindClientByID(ctx, clientID)
}

func (r *SQLiteClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	var rows []clientRow
	query := `SELECT ` + clientColumns + ` FROM tb_client ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.db(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return toDomainClients(rows)
}

func (r *SQLiteClientRepository) FindClientsByMinIncome(ctx context.Context, minIncome decimal.Decimal, page domain.PageRequest) ([]domain.Client, int64, error) {
	var (
		clients = []domain.Client{}
		total   int64
	)

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		q := r.db(ctx)

		if err := sqlx.GetContext(ctx, q, &total, `SELECT COUNT(*) FROM tb_client WHERE income >= ?`, minIncome); err != nil {
			return fmt.Errorf("failed to count clients by income: %w", err)
		}
		if total == 0 || page.Offset() >= total {
			return nil
		}

		var rows []clientRow
		query := `SELECT ` + clientColumns + ` FROM tb_client WHERE income >= ? ORDER BY id LIMIT ? OFFSET ?`
		if err := sqlx.SelectContext(ctx, q, &rows, query, minIncome, page.Size, page.Offset()); err != nil {
			return fmt.Errorf("failed to query clients by income: %w", err)
		}

		var err error
		clients, err = toDomainClients(rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *SQLiteClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)

	var row clientRow
	query := `INSERT INTO tb_client (name, cpf, income, birth_date, children) VALUES (?, ?, ?, ?, ?) RETURNING ` + clientColumns
	err := sqlx.GetContext(ctx, r.db(ctx), &row, query,
		m.Name, m.CPF, m.Income, formatDate(m.BirthDate), m.Children,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save client: %w", classifySQLiteError(err))
	}
	return toDomainClient(row)
}

func (r *SQLiteClientRepository) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)

	var row clientRow
	query := `UPDATE tb_client SET name = ?, cpf = ?, income = ?, birth_date = ?, children = ? WHERE id = ? RETURNING ` + clientColumns
	err := sqlx.GetContext(ctx, r.db(ctx), &row, query,
		m.Name, m.CPF, m.Income, formatDate(m.BirthDate), m.Children, m.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %d: %w", m.ID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update client %d: %w", m.ID, classifySQLiteError(err))
	}
	return toDomainClient(row)
}

func (r *SQLiteClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	res, err := r.db(ctx).ExecContext(ctx, `DELETE FROM tb_client WHERE id = ?`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	return requireAffected(res, clientID)
}

func requireAffected(res sql.Result, clientID int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("client %d: %w", clientID, apperrors.ErrNotFound)
	}
	return nil
}

func toDomainClient(row clientRow) (*domain.Client, error) {
	m, err := row.toModel()
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}

// classifySQLiteError maps constraint violations onto application errors.
func classifySQLiteError(err error) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, sqliteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, sqliteErr.Error())
		}
		// The low byte holds the primary result code.
		if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, sqliteErr.Error())
		}
	}
	return err
}

func toDomainClients(rows []clientRow) ([]domain.Client, error) {
	ms := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		m, err := row.toModel()
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return mapping.ToDomainClientSlice(ms), nil
}
