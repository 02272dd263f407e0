package repository

import (
	"context"

	"github.com/QuangTung97/crowdfund/model"
)

// Contribution stores cumulative amounts, one row per campaign and
// contributor
type Contribution interface {
	UpsertContribution(ctx context.Context, contribution model.Contribution) error

	ListContributions(ctx context.Context) ([]model.Contribution, error)
	ListCampaignContributions(ctx context.Context, campaignID int64) ([]model.Contribution, error)
}

type contributionImpl struct {
}

// NewContribution ...
func NewContribution() Contribution {
	return &contributionImpl{}
}

// UpsertContribution ...
func (c *contributionImpl) UpsertContribution(
	ctx context.Context, contribution model.Contribution,
) error {
	query := `
INSERT INTO contribution (
	campaign_id, contributor_hash, contributor, amount
) VALUES (
	:campaign_id, :contributor_hash, :contributor, :amount
) AS NEW
ON DUPLICATE KEY UPDATE
	amount = NEW.amount
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, contribution)
	return err
}

// ListContributions returns all contributions in first-contribution
// order, the order refunds are paid in
func (c *contributionImpl) ListContributions(ctx context.Context) ([]model.Contribution, error) {
	query := `
SELECT id, campaign_id, contributor_hash, contributor, amount, created_at, updated_at
FROM contribution
ORDER BY id
`
	var result []model.Contribution
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// ListCampaignContributions ...
func (c *contributionImpl) ListCampaignContributions(
	ctx context.Context, campaignID int64,
) ([]model.Contribution, error) {
	query := `
SELECT id, campaign_id, contributor_hash, contributor, amount, created_at, updated_at
FROM contribution
WHERE campaign_id = ?
ORDER BY id
`
	var result []model.Contribution
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}
