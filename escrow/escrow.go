package escrow

import (
	"context"
	"sync"
	"time"

	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
)

//go:generate moq -out escrow_mocks_test.go . TransferPort EventSink

// TransferPort moves value out of the escrow to an address. It is the
// only point where control leaves the escrow before an operation
// finishes, so implementations may call back in (see ErrReentrantCall)
type TransferPort interface {
	Transfer(ctx context.Context, to string, amount decimal.Decimal) error
}

// Timer ...
type Timer interface {
	Now() time.Time
}

type realTimer struct{}

func (realTimer) Now() time.Time {
	return time.Now()
}

// Escrow owns the campaign arena and the per-campaign contribution
// ledgers. Each operation runs as an atomic unit: it either completes,
// or leaves no observable state change behind
type Escrow struct {
	port  TransferPort
	sink  EventSink
	timer Timer

	mu        sync.Mutex
	campaigns []*campaignState
	inFlight  map[int64]struct{}
}

type campaignState struct {
	campaign      model.Campaign
	backers       []string
	contributions map[string]decimal.Decimal
}

// Option ...
type Option func(e *Escrow)

// WithTimer ...
func WithTimer(timer Timer) Option {
	return func(e *Escrow) {
		e.timer = timer
	}
}

// New ...
func New(port TransferPort, sink EventSink, options ...Option) *Escrow {
	if sink == nil {
		sink = nopSink{}
	}
	e := &Escrow{
		port:  port,
		sink:  sink,
		timer: realTimer{},

		inFlight: map[int64]struct{}{},
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// getLocked must be called with mu held
func (e *Escrow) getLocked(campaignID int64) (*campaignState, error) {
	if campaignID < 1 || campaignID > int64(len(e.campaigns)) {
		return nil, ErrCampaignNotFound
	}
	return e.campaigns[campaignID-1], nil
}
