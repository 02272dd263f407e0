package escrow

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CampaignCreatedEvent ...
type CampaignCreatedEvent struct {
	CampaignID int64           `json:"campaignId"`
	Creator    string          `json:"creator"`
	Title      string          `json:"title"`
	Goal       decimal.Decimal `json:"goal"`
	Deadline   time.Time       `json:"deadline"`
}

// ContributionMadeEvent carries both the deposited amount and the
// resulting cumulative totals, so a sink can persist the new ledger
// state without reading it back
type ContributionMadeEvent struct {
	CampaignID  int64           `json:"campaignId"`
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
	Total       decimal.Decimal `json:"total"`
	Raised      decimal.Decimal `json:"raised"`
}

// FundsReleasedEvent ...
type FundsReleasedEvent struct {
	CampaignID int64           `json:"campaignId"`
	Creator    string          `json:"creator"`
	Amount     decimal.Decimal `json:"amount"`
}

// RefundIssuedEvent ...
type RefundIssuedEvent struct {
	CampaignID    int64           `json:"campaignId"`
	TotalRefunded decimal.Decimal `json:"totalRefunded"`
}

// EventSink receives one call per successful operation. A sink error
// aborts the operation as a whole, the escrow rolls its state back
// before returning
type EventSink interface {
	CampaignCreated(ctx context.Context, ev CampaignCreatedEvent) error
	ContributionMade(ctx context.Context, ev ContributionMadeEvent) error
	FundsReleased(ctx context.Context, ev FundsReleasedEvent) error
	RefundIssued(ctx context.Context, ev RefundIssuedEvent) error
}

type nopSink struct{}

func (nopSink) CampaignCreated(ctx context.Context, ev CampaignCreatedEvent) error {
	return nil
}

func (nopSink) ContributionMade(ctx context.Context, ev ContributionMadeEvent) error {
	return nil
}

func (nopSink) FundsReleased(ctx context.Context, ev FundsReleasedEvent) error {
	return nil
}

func (nopSink) RefundIssued(ctx context.Context, ev RefundIssuedEvent) error {
	return nil
}
