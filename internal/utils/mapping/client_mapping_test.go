package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/SscSPs/client_service/internal/dto"
	"github.com/SscSPs/client_service/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromClientDTODropsID(t *testing.T) {
	in := dto.ClientDTO{
		ID:        99,
		Name:      "Maria Firmina",
		CPF:       "12345678901",
		BirthDate: time.Date(1990, 3, 11, 0, 0, 0, 0, time.UTC),
		Income:    decimal.RequireFromString("3200.50"),
		Children:  1,
	}

	got := mapping.FromClientDTO(in)

	assert.Zero(t, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.CPF, got.CPF)
	assert.True(t, in.BirthDate.Equal(got.BirthDate))
	assert.True(t, in.Income.Equal(got.Income))
	assert.Equal(t, in.Children, got.Children)
}

func TestToClientPageResponse(t *testing.T) {
	clients := []domain.Client{{ID: 4, Name: "A"}, {ID: 6, Name: "B"}}
	page := domain.NewPage(clients, 5, domain.PageRequest{Page: 0, Size: 2})

	resp := mapping.ToClientPageResponse(page)

	assert.Len(t, resp.Content, 2)
	assert.Equal(t, int64(4), resp.Content[0].ID)
	assert.Equal(t, int64(5), resp.TotalElements)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.NumberOfElements)
	assert.True(t, resp.First)
	assert.False(t, resp.Last)
	assert.False(t, resp.Empty)
}

func TestToClientDTOSliceNeverNil(t *testing.T) {
	assert.NotNil(t, mapping.ToClientDTOSlice(nil))
	assert.Empty(t, mapping.ToClientDTOSlice(nil))
}
