package stats

import (
	"context"

	"grabbber/internal/services/revenue"
)

// Service records and reports landing-page activity.
type Service interface {
	RecordSelection(ctx context.Context, tier revenue.Tier) error
	RecordInquiry(ctx context.Context, tier revenue.Tier) error
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// CounterStore is the persistence used for counters.
type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Counts(ctx context.Context, keys ...string) (map[string]int64, error)
}
