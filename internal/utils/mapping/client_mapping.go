package mapping

import (
	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/SscSPs/client_service/internal/dto"
	"github.com/SscSPs/client_service/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ID:        d.ID,
		Name:      d.Name,
		CPF:       d.CPF,
		Income:    d.Income,
		BirthDate: d.BirthDate,
		Children:  d.Children,
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ID:        m.ID,
		Name:      m.Name,
		CPF:       m.CPF,
		Income:    m.Income,
		BirthDate: m.BirthDate,
		Children:  m.Children,
	}
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

// FromClientDTO builds a domain Client from a transfer record.
// The caller-supplied ID is dropped; identifiers belong to the store.
func FromClientDTO(in dto.ClientDTO) domain.Client {
	return domain.Client{
		Name:      in.Name,
		CPF:       in.CPF,
		BirthDate: domain.DateOnly(in.BirthDate),
		Income:    in.Income,
		Children:  in.Children,
	}
}

// ToClientDTO converts a domain Client to its transfer form
func ToClientDTO(d domain.Client) dto.ClientDTO {
	return dto.ClientDTO{
		ID:        d.ID,
		Name:      d.Name,
		CPF:       d.CPF,
		BirthDate: d.BirthDate,
		Income:    d.Income,
		Children:  d.Children,
	}
}

// ToClientDTOSlice converts domain Clients to transfer records, never returning nil.
func ToClientDTOSlice(ds []domain.Client) []dto.ClientDTO {
	out := make([]dto.ClientDTO, len(ds))
	for i, d := range ds {
		out[i] = ToClientDTO(d)
	}
	return out
}

// ToClientPageResponse converts a page of domain Clients to the paged transfer form
func ToClientPageResponse(p domain.Page[domain.Client]) dto.ClientPageResponse {
	dp := domain.MapPage(p, ToClientDTO)
	return dto.ClientPageResponse{
		Content:          dp.Content,
		TotalElements:    dp.TotalElements,
		TotalPages:       dp.TotalPages(),
		Number:           dp.Number,
		Size:             dp.Size,
		NumberOfElements: len(dp.Content),
		First:            dp.IsFirst(),
		Last:             dp.IsLast(),
		Empty:            dp.IsEmpty(),
	}
}
