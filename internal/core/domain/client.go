package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Client represents a registered client in the domain.
type Client struct {
	ID        int64           `json:"id"` // Primary Key, assigned by the store
	Name      string          `json:"name"`
	CPF       string          `json:"cpf"` // Brazilian tax id, 11 digits
	BirthDate time.Time       `json:"birthDate"`
	Income    decimal.Decimal `json:"income"`
	Children  int             `json:"children"`
}

// ApplyChanges overwrites every mutable field with the values of src.
// The identifier is never touched.
func (c *Client) ApplyChanges(src Client) {
	c.Name = src.Name
	c.CPF = src.CPF
	c.BirthDate = src.BirthDate
	c.Income = src.Income
	c.Children = src.Children
}

// Validate checks the fields every stored client must carry.
func (c Client) Validate() error {
	if c.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date is required", apperrors.ErrValidation)
	}
	if c.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", apperrors.ErrValidation)
	}
	if c.Income.IsNegative() {
		return fmt.Errorf("%w: income must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// DateOnly drops the clock part of t, keeping its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
