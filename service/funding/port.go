package funding

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/QuangTung97/crowdfund/repository"
)

// accountPort settles payouts by crediting the account table through
// the transaction carried in ctx
type accountPort struct {
	accountRepo repository.Account
}

func (p *accountPort) Transfer(ctx context.Context, to string, amount decimal.Decimal) error {
	return p.accountRepo.CreditAccount(ctx, to, amount)
}
