package inquiry

import (
	"context"
	"time"

	"grabbber/internal/services/revenue"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service accepts contact form submissions. Submissions are acknowledged and
// logged, never stored or forwarded.
type Service interface {
	Submit(ctx context.Context, input Input) (*Receipt, error)
}

// Recorder counts accepted inquiries.
type Recorder interface {
	RecordInquiry(ctx context.Context, tier revenue.Tier) error
}

type service struct {
	validate *validator.Validate
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewService creates an inquiry service. recorder may be nil.
func NewService(recorder Recorder, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		validate: newValidator(),
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *service) Submit(ctx context.Context, input Input) (*Receipt, error) {
	in := input.Normalize()
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, toValidationError(err)
	}

	receipt := &Receipt{
		Reference:        s.newID(),
		ReceivedAt:       s.now().UTC(),
		ResetAfter:       FormResetDelay,
		ResetAfterMillis: FormResetDelay.Milliseconds(),
	}

	s.logger.Info("inquiry received",
		zap.String("reference", receipt.Reference),
		zap.String("name", in.Name),
		zap.String("email", in.Email),
		zap.String("website", in.Website),
		zap.String("traffic", in.Traffic),
		zap.Int("message_length", len(in.Message)),
		zap.Time("received_at", receipt.ReceivedAt),
	)

	if s.recorder != nil {
		if err := s.recorder.RecordInquiry(ctx, revenue.Tier(in.Traffic)); err != nil {
			s.logger.Warn("failed to record inquiry", zap.String("reference", receipt.Reference), zap.Error(err))
		}
	}

	return receipt, nil
}
