package stats

import (
	"context"
	"fmt"
	"time"

	"grabbber/internal/services/revenue"

	"go.uber.org/zap"
)

type service struct {
	store  CounterStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a stats service backed by store.
func NewService(store CounterStore, logger *zap.Logger) Service {
	if store == nil {
		panic("counter store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) RecordSelection(ctx context.Context, tier revenue.Tier) error {
	return s.incr(ctx, SelectionKeyPrefix, tier)
}

func (s *service) RecordInquiry(ctx context.Context, tier revenue.Tier) error {
	return s.incr(ctx, InquiryKeyPrefix, tier)
}

func (s *service) incr(ctx context.Context, prefix string, tier revenue.Tier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: %q", revenue.ErrInvalidTier, string(tier))
	}
	n, err := s.store.Incr(ctx, prefix+tier.String())
	if err != nil {
		return err
	}
	s.logger.Debug("counter incremented",
		zap.String("key", prefix+tier.String()),
		zap.Int64("value", n),
	)
	return nil
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	tiers := revenue.Tiers()
	keys := make([]string, 0, 2*len(tiers))
	for _, info := range tiers {
		keys = append(keys, SelectionKeyPrefix+info.Tier.String(), InquiryKeyPrefix+info.Tier.String())
	}

	counts, err := s.store.Counts(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	snap := &Snapshot{
		Selections: make(map[revenue.Tier]int64, len(tiers)),
		Inquiries:  make(map[revenue.Tier]int64, len(tiers)),
		TakenAt:    s.now().UTC(),
	}
	for _, info := range tiers {
		sel := counts[SelectionKeyPrefix+info.Tier.String()]
		inq := counts[InquiryKeyPrefix+info.Tier.String()]
		snap.Selections[info.Tier] = sel
		snap.Inquiries[info.Tier] = inq
		snap.TotalSelections += sel
		snap.TotalInquiries += inq
	}
	return snap, nil
}
