package model

import "time"

// Event ...
type Event struct {
	ID   uint64    `db:"id"`
	Type EventType `db:"type"`
	Data []byte    `db:"data"`

	AggregateType AggregateType `db:"aggregate_type"`
	AggregateID   int64         `db:"aggregate_id"`

	CreatedAt time.Time `db:"created_at"`
}

// AggregateType ...
type AggregateType int

const (
	// AggregateTypeCampaign ...
	AggregateTypeCampaign AggregateType = 1
)

// EventType ...
type EventType int

const (
	// EventTypeCampaignCreated ...
	EventTypeCampaignCreated EventType = 1

	// EventTypeContributionMade ...
	EventTypeContributionMade EventType = 2

	// EventTypeFundsReleased ...
	EventTypeFundsReleased EventType = 3

	// EventTypeRefundIssued ...
	EventTypeRefundIssued EventType = 4
)
