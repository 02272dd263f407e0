package funding

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/QuangTung97/crowdfund/escrow"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/repository"
)

// IService ...
type IService interface {
	CreateCampaign(
		ctx context.Context, creator string, title string,
		goal decimal.Decimal, duration time.Duration,
	) (int64, error)
	Contribute(ctx context.Context, campaignID int64, contributor string, amount decimal.Decimal) error
	Settle(ctx context.Context, campaignID int64) error

	CampaignCount(ctx context.Context) int64
	GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	ListCampaigns(ctx context.Context) []model.Campaign
	GetBackers(ctx context.Context, campaignID int64) ([]string, error)
	GetContribution(ctx context.Context, campaignID int64, contributor string) (decimal.Decimal, error)

	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	ListCampaignEvents(ctx context.Context, campaignID int64) ([]model.Event, error)
}

// Service keeps the authoritative campaign state in memory and writes
// every mutation through a single database transaction
type Service struct {
	provider repository.Provider

	campaignRepo     repository.Campaign
	contributionRepo repository.Contribution
	accountRepo      repository.Account
	eventRepo        repository.Event

	es     *escrow.Escrow
	logger *zap.Logger
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	contributionRepo repository.Contribution,
	accountRepo repository.Account,
	eventRepo repository.Event,
	logger *zap.Logger,
	options ...escrow.Option,
) *Service {
	s := &Service{
		provider: provider,

		campaignRepo:     campaignRepo,
		contributionRepo: contributionRepo,
		accountRepo:      accountRepo,
		eventRepo:        eventRepo,

		logger: logger,
	}

	sink := &dbSink{
		campaignRepo:     campaignRepo,
		contributionRepo: contributionRepo,
		eventRepo:        eventRepo,
	}
	port := &accountPort{accountRepo: accountRepo}
	s.es = escrow.New(port, sink, options...)

	return s
}

// Load rebuilds the in-memory state from the campaign and
// contribution tables. Must be called once before serving requests
func (s *Service) Load(ctx context.Context) error {
	ctx = s.provider.Readonly(ctx)

	campaigns, err := s.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	contributions, err := s.contributionRepo.ListContributions(ctx)
	if err != nil {
		return err
	}

	err = s.es.Restore(campaigns, contributions)
	if err != nil {
		return err
	}

	s.logger.Info("escrow state restored",
		zap.Int("campaigns", len(campaigns)),
		zap.Int("contributions", len(contributions)),
	)
	return nil
}

// CreateCampaign ...
func (s *Service) CreateCampaign(
	ctx context.Context, creator string, title string,
	goal decimal.Decimal, duration time.Duration,
) (int64, error) {
	var campaignID int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.es.CreateCampaign(ctx, creator, title, goal, duration)
		if err != nil {
			return err
		}
		campaignID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	campaignsCreatedTotal.Inc()
	return campaignID, nil
}

// Contribute ...
func (s *Service) Contribute(
	ctx context.Context, campaignID int64, contributor string, amount decimal.Decimal,
) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.es.Contribute(ctx, campaignID, contributor, amount)
	})
	if err != nil {
		return err
	}

	contributionsTotal.Inc()
	return nil
}

// Settle releases or refunds an ended campaign. The account credits,
// the ledger rows and the settled flag commit or roll back together
func (s *Service) Settle(ctx context.Context, campaignID int64) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.es.ReleaseOrRefund(ctx, campaignID)
	})
	if err != nil {
		return err
	}

	outcome := outcomeRefunded
	campaign, err := s.es.GetCampaign(campaignID)
	if err == nil && campaign.GoalReached() {
		outcome = outcomeReleased
	}
	settlementsTotal.WithLabelValues(outcome).Inc()
	return nil
}

// CampaignCount ...
func (s *Service) CampaignCount(_ context.Context) int64 {
	return s.es.CampaignCount()
}

// GetCampaign ...
func (s *Service) GetCampaign(_ context.Context, campaignID int64) (model.Campaign, error) {
	return s.es.GetCampaign(campaignID)
}

// ListCampaigns ...
func (s *Service) ListCampaigns(_ context.Context) []model.Campaign {
	return s.es.Campaigns()
}

// GetBackers ...
func (s *Service) GetBackers(_ context.Context, campaignID int64) ([]string, error) {
	return s.es.GetBackers(campaignID)
}

// GetContribution ...
func (s *Service) GetContribution(
	_ context.Context, campaignID int64, contributor string,
) (decimal.Decimal, error) {
	return s.es.GetContribution(campaignID, contributor)
}

// GetBalance returns zero for an address never credited
func (s *Service) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	ctx = s.provider.Readonly(ctx)

	nullAccount, err := s.accountRepo.GetAccount(ctx, address)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !nullAccount.Valid {
		return decimal.Zero, nil
	}
	return nullAccount.Account.Balance, nil
}

// ListCampaignEvents ...
func (s *Service) ListCampaignEvents(ctx context.Context, campaignID int64) ([]model.Event, error) {
	_, err := s.es.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	ctx = s.provider.Readonly(ctx)
	return s.eventRepo.ListEvents(ctx, model.AggregateTypeCampaign, campaignID)
}
