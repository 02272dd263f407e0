package repository

import (
	"context"

	"github.com/QuangTung97/crowdfund/model"
)

// Event ...
type Event interface {
	InsertEvent(ctx context.Context, event model.Event) error
	ListEvents(
		ctx context.Context, aggregateType model.AggregateType, aggregateID int64,
	) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvent ...
func (e *eventImpl) InsertEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO event (
	type, data, aggregate_type, aggregate_id
) VALUES (
	:type, :data, :aggregate_type, :aggregate_id
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}

// ListEvents ...
func (e *eventImpl) ListEvents(
	ctx context.Context, aggregateType model.AggregateType, aggregateID int64,
) ([]model.Event, error) {
	query := `
SELECT id, type, data, aggregate_type, aggregate_id, created_at
FROM event
WHERE aggregate_type = ? AND aggregate_id = ?
ORDER BY id
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, aggregateType, aggregateID)
	return result, err
}
