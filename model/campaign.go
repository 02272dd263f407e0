package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Campaign ...
type Campaign struct {
	ID      int64  `db:"id"`
	Creator string `db:"creator"`
	Title   string `db:"title"`

	Goal     decimal.Decimal `db:"goal"`
	Deadline time.Time       `db:"deadline"`

	AmountRaised  decimal.Decimal `db:"amount_raised"`
	FundsReleased bool            `db:"funds_released"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusActive before the deadline, not yet settled
	CampaignStatusActive CampaignStatus = 1

	// CampaignStatusEnded past the deadline, not yet settled
	CampaignStatusEnded CampaignStatus = 2

	// CampaignStatusSettled funds released or refunded, terminal
	CampaignStatusSettled CampaignStatus = 3
)

// Status ...
func (c Campaign) Status(now time.Time) CampaignStatus {
	if c.FundsReleased {
		return CampaignStatusSettled
	}
	if now.Before(c.Deadline) {
		return CampaignStatusActive
	}
	return CampaignStatusEnded
}

// GoalReached ...
func (c Campaign) GoalReached() bool {
	return c.AmountRaised.Cmp(c.Goal) >= 0
}
