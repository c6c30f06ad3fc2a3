package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientDTO is the transfer form of a client used at the service boundary.
// A zero ID means the record has not been created yet.
type ClientDTO struct {
	ID        int64           `json:"id,omitempty"`
	Name      string          `json:"name" binding:"required,max=255"`
	CPF       string          `json:"cpf" binding:"required,cpf"`
	BirthDate time.Time       `json:"birthDate" binding:"required"`
	Income    decimal.Decimal `json:"income" binding:"gte=0"`
	Children  int             `json:"children" binding:"gte=0"`
}

// FindByIncomeParams defines query parameters for the income search.
type FindByIncomeParams struct {
	Income string `form:"income"`
	Page   *int   `form:"page"`
	Size   *int   `form:"size"`
}

// ClientPageResponse is one page of clients plus the size of the whole matching set.
type ClientPageResponse struct {
	Content          []ClientDTO `json:"content"`
	TotalElements    int64       `json:"totalElements"`
	TotalPages       int         `json:"totalPages"`
	Number           int         `json:"number"`
	Size             int         `json:"size"`
	NumberOfElements int         `json:"numberOfElements"`
	First            bool        `json:"first"`
	Last             bool        `json:"last"`
	Empty            bool        `json:"empty"`
}
