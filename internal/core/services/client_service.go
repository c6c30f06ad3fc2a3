package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	portsrepo "github.com/SscSPs/client_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/client_service/internal/core/ports/services"
	"github.com/SscSPs/client_service/internal/dto"
	"github.com/SscSPs/client_service/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryWithTx
}

// NewClientService creates the client service on top of a transactional client repository.
func NewClientService(clientRepo portsrepo.ClientRepositoryWithTx) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) FindAll(ctx context.Context) ([]dto.ClientDTO, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return mapping.ToClientDTOSlice(clients), nil
}

func (s *clientService) FindByID(ctx context.Context, clientID int64) (*dto.ClientDTO, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.logLookupError(ctx, err, clientID)
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	out := mapping.ToClientDTO(*client)
	return &out, nil
}

func (s *clientService) FindByIncome(ctx context.Context, minIncome decimal.Decimal, page domain.PageRequest) (*dto.ClientPageResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	clients, total, err := s.clientRepo.FindClientsByMinIncome(ctx, minIncome, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to find clients by income",
			slog.String("min_income", minIncome.String()),
			slog.Int("page", page.Page),
			slog.Int("size", page.Size))
		return nil, fmt.Errorf("failed to find clients by income: %w", err)
	}

	resp := mapping.ToClientPageResponse(domain.NewPage(clients, total, page))
	return &resp, nil
}

func (s *clientService) Insert(ctx context.Context, req dto.ClientDTO) (*dto.ClientDTO, error) {
	input := mapping.FromClientDTO(req)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.SaveClient(ctx, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert client")
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.Int64("client_id", client.ID))
	out := mapping.ToClientDTO(*client)
	return &out, nil
}

func (s *clientService) Update(ctx context.Context, clientID int64, req dto.ClientDTO) (*dto.ClientDTO, error) {
	input := mapping.FromClientDTO(req)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Client
	err := s.clientRepo.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.clientRepo.FindClientByIDForUpdate(txCtx, clientID)
		if err != nil {
			return err
		}

		current.ApplyChanges(input)
		updated, err = s.clientRepo.UpdateClient(txCtx, *current)
		return err
	})
	if err != nil {
		s.logLookupError(ctx, err, clientID)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.LogInfo(ctx, "Client updated", slog.Int64("client_id", clientID))
	out := mapping.ToClientDTO(*updated)
	return &out, nil
}

func (s *clientService) Delete(ctx context.Context, clientID int64) error {
	err := s.clientRepo.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.clientRepo.FindClientByIDForUpdate(txCtx, clientID); err != nil {
			return err
		}
		return s.clientRepo.DeleteClient(txCtx, clientID)
	})
	if err != nil {
		s.logLookupError(ctx, err, clientID)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.LogInfo(ctx, "Client deleted", slog.Int64("client_id", clientID))
	return nil
}

// logLookupError keeps missing clients at debug level; they are a normal outcome.
func (s *clientService) logLookupError(ctx context.Context, err error, clientID int64) {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Client not found", slog.Int64("client_id", clientID))
		return
	}
	s.LogError(ctx, err, "Client store operation failed", slog.Int64("client_id", clientID))
}
