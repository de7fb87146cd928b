package submission

import (
	"context"
	"time"

	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/validation"
)

// Direct notifies the owner without storing anything. It backs the edge
// deployment where no database is available.
type Direct struct {
	pipeline
	validator *validation.Validator
	notifier  Notifier
}

func NewDirect(validator *validation.Validator, notifier Notifier, opts ...Option) *Direct {
	return &Direct{
		pipeline:  newPipeline(opts),
		validator: validator,
		notifier:  notifier,
	}
}

func (s *Direct) Handle(ctx context.Context, kind Kind, raw map[string]any) (*Result, error) {
	switch kind {
	case KindContact:
		msg, err := s.validator.Contact(raw)
		if err != nil {
			s.finish(ctx, kind, OutcomeRejected, "", err)
			return nil, err
		}
		if err := s.notifier.NotifyContact(ctx, msg); err != nil {
			s.finish(ctx, kind, OutcomeNotifyFailed, "", err)
			return nil, err
		}
		s.finish(ctx, kind, OutcomeCompleted, "", nil)
		s.publish(ctx, kind, "", msg.Name, msg.Email, true, time.Now().UTC())
		return &Result{Kind: kind, Message: ContactConfirmation}, nil

	case KindBooking:
		b, err := s.validator.Booking(raw)
		if err != nil {
			s.finish(ctx, kind, OutcomeRejected, "", err)
			return nil, err
		}
		if err := s.notifier.NotifyBooking(ctx, b); err != nil {
			s.finish(ctx, kind, OutcomeNotifyFailed, "", err)
			return nil, err
		}
		s.finish(ctx, kind, OutcomeCompleted, "", nil)
		s.publish(ctx, kind, "", b.Name, b.Email, true, time.Now().UTC())
		return &Result{
			Kind:                kind,
			Message:             BookingConfirmation,
			RecommendedDuration: domain.RecommendedDuration(b.NumberOfChildren),
		}, nil

	default:
		return nil, ErrUnknownKind
	}
}

var _ Handler = (*Direct)(nil)
