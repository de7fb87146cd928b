package submission

import (
	"context"

	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/repository"
	"github.com/happyfaces/facepaint/internal/validation"
)

// Persisted stores each submission and then notifies the owner. When the
// notification fails the stored record is kept and ErrDelivery is returned.
type Persisted struct {
	pipeline
	validator *validation.Validator
	contacts  repository.ContactRepository
	bookings  repository.BookingRepository
	notifier  Notifier
}

func NewPersisted(
	validator *validation.Validator,
	contacts repository.ContactRepository,
	bookings repository.BookingRepository,
	notifier Notifier,
	opts ...Option,
) *Persisted {
	return &Persisted{
		pipeline:  newPipeline(opts),
		validator: validator,
		contacts:  contacts,
		bookings:  bookings,
		notifier:  notifier,
	}
}

func (s *Persisted) Handle(ctx context.Context, kind Kind, raw map[string]any) (*Result, error) {
	switch kind {
	case KindContact:
		return s.handleContact(ctx, raw)
	case KindBooking:
		return s.handleBooking(ctx, raw)
	default:
		return nil, ErrUnknownKind
	}
}

func (s *Persisted) handleContact(ctx context.Context, raw map[string]any) (*Result, error) {
	msg, err := s.validator.Contact(raw)
	if err != nil {
		s.finish(ctx, KindContact, OutcomeRejected, "", err)
		return nil, err
	}

	if err := s.store(ctx, func(ctx context.Context) error { return s.contacts.Create(ctx, &msg) }); err != nil {
		s.finish(ctx, KindContact, OutcomeStoreFailed, "", err)
		return nil, err
	}

	result := &Result{Kind: KindContact, ID: msg.ID, Message: ContactConfirmation}
	if err := s.notifier.NotifyContact(ctx, msg); err != nil {
		s.finish(ctx, KindContact, OutcomeNotifyFailed, msg.ID, err)
		s.publish(ctx, KindContact, msg.ID, msg.Name, msg.Email, false, msg.CreatedAt)
		return result, err
	}

	s.finish(ctx, KindContact, OutcomeCompleted, msg.ID, nil)
	s.publish(ctx, KindContact, msg.ID, msg.Name, msg.Email, true, msg.CreatedAt)
	return result, nil
}

func (s *Persisted) handleBooking(ctx context.Context, raw map[string]any) (*Result, error) {
	b, err := s.validator.Booking(raw)
	if err != nil {
		s.finish(ctx, KindBooking, OutcomeRejected, "", err)
		return nil, err
	}

	if err := s.store(ctx, func(ctx context.Context) error { return s.bookings.Create(ctx, &b) }); err != nil {
		s.finish(ctx, KindBooking, OutcomeStoreFailed, "", err)
		return nil, err
	}

	result := &Result{
		Kind:                KindBooking,
		ID:                  b.ID,
		Message:             BookingConfirmation,
		RecommendedDuration: domain.RecommendedDuration(b.NumberOfChildren),
	}
	if err := s.notifier.NotifyBooking(ctx, b); err != nil {
		s.finish(ctx, KindBooking, OutcomeNotifyFailed, b.ID, err)
		s.publish(ctx, KindBooking, b.ID, b.Name, b.Email, false, b.CreatedAt)
		return result, err
	}

	s.finish(ctx, KindBooking, OutcomeCompleted, b.ID, nil)
	s.publish(ctx, KindBooking, b.ID, b.Name, b.Email, true, b.CreatedAt)
	return result, nil
}

func (s *Persisted) store(ctx context.Context, create func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return create(ctx)
}

// ListContacts returns every stored contact message.
func (s *Persisted) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.contacts.List(ctx)
}

// ListBookings returns every stored booking request.
func (s *Persisted) ListBookings(ctx context.Context) ([]domain.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.bookings.List(ctx)
}

var _ Handler = (*Persisted)(nil)
