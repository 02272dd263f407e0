package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Contribution is the cumulative amount a contributor has put into a
// campaign, not an individual deposit
type Contribution struct {
	ID         int64 `db:"id"`
	CampaignID int64 `db:"campaign_id"`

	ContributorHash uint32 `db:"contributor_hash"`
	Contributor     string `db:"contributor"`

	Amount decimal.Decimal `db:"amount"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
