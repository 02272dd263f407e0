package funding

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/QuangTung97/crowdfund/escrow"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/pkg/util"
	"github.com/QuangTung97/crowdfund/repository"
)

// dbSink persists escrow events inside the surrounding transaction.
// Any error here aborts the whole operation, so the ledger rows and
// the in-memory state can never diverge on a failed call
type dbSink struct {
	campaignRepo     repository.Campaign
	contributionRepo repository.Contribution
	eventRepo        repository.Event
}

func (s *dbSink) insertEvent(
	ctx context.Context, eventType model.EventType, campaignID int64, payload interface{},
) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.eventRepo.InsertEvent(ctx, model.Event{
		Type:          eventType,
		Data:          data,
		AggregateType: model.AggregateTypeCampaign,
		AggregateID:   campaignID,
	})
}

func (s *dbSink) CampaignCreated(ctx context.Context, ev escrow.CampaignCreatedEvent) error {
	err := s.campaignRepo.InsertCampaign(ctx, model.Campaign{
		ID:           ev.CampaignID,
		Creator:      ev.Creator,
		Title:        ev.Title,
		Goal:         ev.Goal,
		Deadline:     ev.Deadline,
		AmountRaised: decimal.Zero,
	})
	if err != nil {
		return err
	}

	err = s.insertEvent(ctx, model.EventTypeCampaignCreated, ev.CampaignID, ev)
	if err != nil {
		return err
	}

	otellib.Extract(ctx).Info("campaign created",
		zap.Int64("campaign_id", ev.CampaignID),
		zap.String("creator", ev.Creator),
		zap.String("goal", ev.Goal.String()),
	)
	return nil
}

func (s *dbSink) ContributionMade(ctx context.Context, ev escrow.ContributionMadeEvent) error {
	err := s.contributionRepo.UpsertContribution(ctx, model.Contribution{
		CampaignID:      ev.CampaignID,
		ContributorHash: util.HashFunc(ev.Contributor),
		Contributor:     ev.Contributor,
		Amount:          ev.Total,
	})
	if err != nil {
		return err
	}

	err = s.campaignRepo.UpdateAmountRaised(ctx, ev.CampaignID, ev.Raised)
	if err != nil {
		return err
	}

	err = s.insertEvent(ctx, model.EventTypeContributionMade, ev.CampaignID, ev)
	if err != nil {
		return err
	}

	otellib.Extract(ctx).Info("contribution made",
		zap.Int64("campaign_id", ev.CampaignID),
		zap.String("contributor", ev.Contributor),
		zap.String("amount", ev.Amount.String()),
		zap.String("raised", ev.Raised.String()),
	)
	return nil
}

func (s *dbSink) FundsReleased(ctx context.Context, ev escrow.FundsReleasedEvent) error {
	err := s.campaignRepo.MarkFundsReleased(ctx, ev.CampaignID)
	if err != nil {
		return err
	}

	err = s.insertEvent(ctx, model.EventTypeFundsReleased, ev.CampaignID, ev)
	if err != nil {
		return err
	}

	otellib.Extract(ctx).Info("funds released",
		zap.Int64("campaign_id", ev.CampaignID),
		zap.String("creator", ev.Creator),
		zap.String("amount", ev.Amount.String()),
	)
	return nil
}

func (s *dbSink) RefundIssued(ctx context.Context, ev escrow.RefundIssuedEvent) error {
	err := s.campaignRepo.MarkFundsReleased(ctx, ev.CampaignID)
	if err != nil {
		return err
	}

	err = s.insertEvent(ctx, model.EventTypeRefundIssued, ev.CampaignID, ev)
	if err != nil {
		return err
	}

	otellib.Extract(ctx).Info("refund issued",
		zap.Int64("campaign_id", ev.CampaignID),
		zap.String("total_refunded", ev.TotalRefunded.String()),
	)
	return nil
}
