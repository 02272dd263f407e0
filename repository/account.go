package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/pkg/util"
	"github.com/shopspring/decimal"
)

// Account ...
type Account interface {
	CreditAccount(ctx context.Context, address string, amount decimal.Decimal) error
	GetAccount(ctx context.Context, address string) (model.NullAccount, error)
}

type accountImpl struct {
}

// NewAccount ...
func NewAccount() Account {
	return &accountImpl{}
}

// CreditAccount adds amount to the balance of the address, creating the
// account if it does not exist yet
func (a *accountImpl) CreditAccount(
	ctx context.Context, address string, amount decimal.Decimal,
) error {
	query := `
INSERT INTO account (
	address_hash, address, balance
) VALUES (
	?, ?, ?
) AS NEW
ON DUPLICATE KEY UPDATE
	balance = account.balance + NEW.balance
`
	_, err := GetTx(ctx).ExecContext(ctx, query, util.HashFunc(address), address, amount)
	return err
}

// GetAccount ...
func (a *accountImpl) GetAccount(
	ctx context.Context, address string,
) (model.NullAccount, error) {
	query := `
SELECT id, address_hash, address, balance, created_at, updated_at
FROM account
WHERE address_hash = ? AND address = ?
`
	var account model.Account
	err := GetReadonly(ctx).GetContext(ctx, &account, query, util.HashFunc(address), address)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullAccount{}, nil
	}
	if err != nil {
		return model.NullAccount{}, err
	}
	return model.NullAccount{
		Valid:   true,
		Account: account,
	}, nil
}
