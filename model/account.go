package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Account holds the settled balance of an address
type Account struct {
	ID int64 `db:"id"`

	AddressHash uint32 `db:"address_hash"`
	Address     string `db:"address"`

	Balance decimal.Decimal `db:"balance"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullAccount ...
type NullAccount struct {
	Valid   bool
	Account Account
}
