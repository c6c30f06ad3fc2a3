package services

import (
	"context"

	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/SscSPs/client_service/internal/dto"
	"github.com/shopspring/decimal"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// FindAll retrieves every client.
	FindAll(ctx context.Context) ([]dto.ClientDTO, error)

	// FindByID retrieves a client by identifier.
	FindByID(ctx context.Context, clientID int64) (*dto.ClientDTO, error)

	// FindByIncome retrieves a page of clients whose income is at least minIncome.
	FindByIncome(ctx context.Context, minIncome decimal.Decimal, page domain.PageRequest) (*dto.ClientPageResponse, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// Insert creates a new client. Any identifier in req is ignored.
	Insert(ctx context.Context, req dto.ClientDTO) (*dto.ClientDTO, error)

	// Update replaces every mutable field of an existing client.
	Update(ctx context.Context, clientID int64, req dto.ClientDTO) (*dto.ClientDTO, error)

	// Delete permanently removes a client.
	Delete(ctx context.Context, clientID int64) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
