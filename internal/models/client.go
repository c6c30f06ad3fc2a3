package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the persisted row of the tb_client table.
type Client struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	CPF       string          `db:"cpf"`
	Income    decimal.Decimal `db:"income"`
	BirthDate time.Time       `db:"birth_date"`
	Children  int             `db:"children"`
}
