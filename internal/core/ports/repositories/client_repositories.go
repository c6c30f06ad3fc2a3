package repositories

import (
	"context"

	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its identifier.
	// Returns apperrors.ErrNotFound when no row matches.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves every stored client ordered by identifier.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// FindClientsByMinIncome retrieves one page of the clients whose income is at
	// least minIncome, together with the total number of matching clients.
	FindClientsByMinIncome(ctx context.Context, minIncome decimal.Decimal, page domain.PageRequest) ([]domain.Client, int64, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient inserts a new client and returns the stored row, including the assigned identifier.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient overwrites an existing client and returns the stored row.
	// Returns apperrors.ErrNotFound when no row matches.
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// DeleteClient removes a client. Returns apperrors.ErrNotFound when no row matches.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientTransactionSupport defines operations meant to run inside a transaction
type ClientTransactionSupport interface {
	// FindClientByIDForUpdate retrieves a client and locks it until the surrounding transaction ends.
	FindClientByIDForUpdate(ctx context.Context, clientID int64) (*domain.Client, error)
}

// ClientRepositoryFacade combines all client-related repository interfaces
// This is a facade for clients that need access to all operations
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientTransactionSupport
}

// ClientRepositoryWithTx extends ClientRepositoryFacade with transaction capabilities
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
