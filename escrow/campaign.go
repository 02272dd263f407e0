package escrow

import (
	"context"
	"time"

	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
)

// CreateCampaign assigns the next sequential id, starting at 1.
// Campaign identity, creator, title, goal and deadline are immutable
// afterwards
func (e *Escrow) CreateCampaign(
	ctx context.Context, creator string, title string,
	goal decimal.Decimal, duration time.Duration,
) (int64, error) {
	if creator == "" {
		return 0, ErrEmptyCreator
	}
	if goal.Sign() <= 0 {
		return 0, ErrInvalidGoal
	}
	if !goal.IsInteger() {
		return 0, ErrNonIntegerGoal
	}
	if duration <= 0 {
		return 0, ErrInvalidDuration
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := int64(len(e.campaigns)) + 1
	campaign := model.Campaign{
		ID:      id,
		Creator: creator,
		Title:   title,

		Goal:     goal,
		Deadline: e.timer.Now().Add(duration),

		AmountRaised: decimal.Zero,
	}

	err := e.sink.CampaignCreated(ctx, CampaignCreatedEvent{
		CampaignID: id,
		Creator:    creator,
		Title:      title,
		Goal:       goal,
		Deadline:   campaign.Deadline,
	})
	if err != nil {
		return 0, err
	}

	e.campaigns = append(e.campaigns, &campaignState{
		campaign:      campaign,
		contributions: map[string]decimal.Decimal{},
	})
	return id, nil
}

// CampaignCount returns the total number of campaigns ever created
func (e *Escrow) CampaignCount() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(len(e.campaigns))
}

// GetCampaign returns a snapshot of the campaign
func (e *Escrow) GetCampaign(campaignID int64) (model.Campaign, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.getLocked(campaignID)
	if err != nil {
		return model.Campaign{}, err
	}
	return st.campaign, nil
}

// EndedCampaigns returns campaigns past their deadline but not yet
// settled, in id order, judged by the escrow clock
func (e *Escrow) EndedCampaigns() []model.Campaign {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.timer.Now()
	var result []model.Campaign
	for _, st := range e.campaigns {
		if st.campaign.Status(now) != model.CampaignStatusEnded {
			continue
		}
		result = append(result, st.campaign)
	}
	return result
}

// Campaigns returns a snapshot of all campaigns in id order
func (e *Escrow) Campaigns() []model.Campaign {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]model.Campaign, 0, len(e.campaigns))
	for _, st := range e.campaigns {
		result = append(result, st.campaign)
	}
	return result
}
