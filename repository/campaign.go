package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
)

// Campaign ...
type Campaign interface {
	InsertCampaign(ctx context.Context, campaign model.Campaign) error
	UpdateAmountRaised(ctx context.Context, campaignID int64, raised decimal.Decimal) error
	MarkFundsReleased(ctx context.Context, campaignID int64) error

	GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error)
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// InsertCampaign ...
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, creator, title, goal, deadline, amount_raised, funds_released
) VALUES (
	:id, :creator, :title, :goal, :deadline, :amount_raised, :funds_released
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// UpdateAmountRaised ...
func (c *campaignImpl) UpdateAmountRaised(
	ctx context.Context, campaignID int64, raised decimal.Decimal,
) error {
	query := `UPDATE campaign SET amount_raised = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, raised, campaignID)
	return err
}

// MarkFundsReleased ...
func (c *campaignImpl) MarkFundsReleased(ctx context.Context, campaignID int64) error {
	query := `UPDATE campaign SET funds_released = TRUE WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID)
	return err
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(
	ctx context.Context, campaignID int64,
) (model.NullCampaign, error) {
	query := `
SELECT id, creator, title, goal, deadline, amount_raised, funds_released,
	created_at, updated_at
FROM campaign
WHERE id = ?
`
	var campaign model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &campaign, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaign,
	}, nil
}

// ListCampaigns ...
func (c *campaignImpl) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	query := `
SELECT id, creator, title, goal, deadline, amount_raised, funds_released,
	created_at, updated_at
FROM campaign
ORDER BY id
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}
