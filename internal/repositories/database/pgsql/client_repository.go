package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	portsrepo "github.com/SscSPs/client_service/internal/core/ports/repositories"
	"github.com/SscSPs/client_service/internal/models"
	"github.com/SscSPs/client_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const clientColumns = `id, name, cpf, income, birth_date, children`

type PgxClientRepository struct {
	BaseRepository
}

// NewClientRepository creates a new repository for client data.
func NewClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryWithTx {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepositoryWithTx = (*PgxClientRepository)(nil)

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM tb_client WHERE id = $1;`
	return r.findOne(ctx, query, clientID)
}

// FindClientByIDForUpdate retrieves a client by its ID and holds a row lock until the transaction ends.
func (r *PgxClientRepository) FindClientByIDForUpdate(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM tb_client WHERE id = $1 FOR UPDATE;`
	return r.findOne(ctx, query, clientID)
}

func (r *PgxClientRepository) findOne(ctx context.Context, query string, clientID int64) (*domain.Client, error) {
	rows, err := r.db(ctx).Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query client %d: %w", clientID, err)
	}

	modelClient, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %d: %w", clientID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find client by ID %d: %w", clientID, err)
	}

	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// ListClients retrieves all clients.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM tb_client ORDER BY id;`

	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}

	modelClients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}

	return mapping.ToDomainClientSlice(modelClients), nil
}

// FindClientsByMinIncome counts and pages the clients with income >= minIncome.
// Both statements read the same snapshot.
func (r *PgxClientRepository) FindClientsByMinIncome(ctx context.Context, minIncome decimal.Decimal, page domain.PageRequest) ([]domain.Client, int64, error) {
	var (
		clients []domain.Client
		total   int64
	)

	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := r.withTx(ctx, opts, func(ctx context.Context) error {
		q := r.db(ctx)

		countQuery := `SELECT COUNT(*) FROM tb_client WHERE income >= $1;`
		if err := q.QueryRow(ctx, countQuery, minIncome).Scan(&total); err != nil {
			return fmt.Errorf("failed to count clients by income: %w", err)
		}
		if total == 0 || page.Offset() >= total {
			return nil
		}

		pageQuery := `
			SELECT ` + clientColumns + `
			FROM tb_client
			WHERE income >= $1
			ORDER BY id
			LIMIT $2 OFFSET $3;
		`
		rows, err := q.Query(ctx, pageQuery, minIncome, page.Size, page.Offset())
		if err != nil {
			return fmt.Errorf("failed to query clients by income: %w", err)
		}
		modelClients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
		if err != nil {
			return fmt.Errorf("failed to scan clients by income: %w", err)
		}
		clients = mapping.ToDomainClientSlice(modelClients)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, total, nil
}

// SaveClient inserts a new client; the database assigns the ID.
// The returned client is the stored row, with income rounded to the column scale.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	modelClient := mapping.ToModelClient(client)

	query := `
		INSERT INTO tb_client (name, cpf, income, birth_date, children)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + clientColumns + `;
	`
	rows, err := r.db(ctx).Query(ctx, query,
		modelClient.Name,
		modelClient.CPF,
		modelClient.Income,
		nullableDate(modelClient.BirthDate),
		modelClient.Children,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save client: %w", classifyPgError(err))
	}

	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, fmt.Errorf("failed to save client: %w", classifyPgError(err))
	}

	domainClient := mapping.ToDomainClient(saved)
	return &domainClient, nil
}

// UpdateClient overwrites every mutable column of an existing client and returns the stored row.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	modelClient := mapping.ToModelClient(client)

	query := `
		UPDATE tb_client
		SET name = $1, cpf = $2, income = $3, birth_date = $4, children = $5
		WHERE id = $6
		RETURNING ` + clientColumns + `;
	`
	rows, err := r.db(ctx).Query(ctx, query,
		modelClient.Name,
		modelClient.CPF,
		modelClient.Income,
		nullableDate(modelClient.BirthDate),
		modelClient.Children,
		modelClient.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update client %d: %w", modelClient.ID, classifyPgError(err))
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %d: %w", modelClient.ID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update client %d: %w", modelClient.ID, classifyPgError(err))
	}

	domainClient := mapping.ToDomainClient(updated)
	return &domainClient, nil
}

// DeleteClient removes a client permanently.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	cmdTag, err := r.db(ctx).Exec(ctx, `DELETE FROM tb_client WHERE id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client %d: %w", clientID, apperrors.ErrNotFound)
	}
	return nil
}

// nullableDate sends a zero date as NULL so the NOT NULL constraint rejects it.
func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
