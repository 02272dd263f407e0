package funding

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/QuangTung97/crowdfund/escrow"
)

// RunAutoSettle periodically settles every campaign whose deadline has
// passed, until ctx is cancelled
func (s *Service) RunAutoSettle(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.settleEnded(ctx)
		}
	}
}

// settleEnded selects candidates with the same clock the deadline gate
// uses, a campaign is never picked up before it is actually settleable
func (s *Service) settleEnded(ctx context.Context) {
	for _, campaign := range s.es.EndedCampaigns() {
		err := s.Settle(ctx, campaign.ID)
		if err != nil {
			if errors.Is(err, escrow.ErrAlreadySettled) || errors.Is(err, escrow.ErrReentrantCall) {
				continue
			}
			s.logger.Error("auto settle failed",
				zap.Int64("campaign_id", campaign.ID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("auto settled campaign", zap.Int64("campaign_id", campaign.ID))
	}
}
