package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientValidate(t *testing.T) {
	valid := domain.Client{
		Name:      "Conceição Evaristo",
		CPF:       "10619244881",
		BirthDate: time.Date(1946, 11, 29, 0, 0, 0, 0, time.UTC),
		Income:    decimal.RequireFromString("1500.00"),
		Children:  2,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *domain.Client)
	}{
		{name: "zero birth date", mutate: func(c *domain.Client) { c.BirthDate = time.Time{} }},
		{name: "negative children", mutate: func(c *domain.Client) { c.Children = -1 }},
		{name: "negative income", mutate: func(c *domain.Client) { c.Income = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), apperrors.ErrValidation)
		})
	}
}
