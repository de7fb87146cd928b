// Package submission runs public form input through validation, optional
// persistence and owner notification.
//
// Every request ends in one of four outcomes: rejected (validation failed,
// nothing stored or sent), store_failed, notify_failed (the record stays
// stored and is not retried) or completed.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/kafka"
)

type Kind string

const (
	KindContact Kind = "contact"
	KindBooking Kind = "booking"
)

const (
	ContactConfirmation = "Your message has been sent! We'll get back to you soon."
	BookingConfirmation = "Your booking request has been sent! We'll contact you shortly to confirm details and provide a quote."
)

var ErrUnknownKind = errors.New("unknown submission kind")

type Outcome string

const (
	OutcomeRejected     Outcome = "rejected"
	OutcomeStoreFailed  Outcome = "store_failed"
	OutcomeNotifyFailed Outcome = "notify_failed"
	OutcomeCompleted    Outcome = "completed"
)

// Result describes an accepted submission.
type Result struct {
	Kind Kind
	// ID is empty when the handler does not persist.
	ID                  string
	Message             string
	RecommendedDuration string
}

// Handler is the capability both deployment shapes implement.
type Handler interface {
	Handle(ctx context.Context, kind Kind, raw map[string]any) (*Result, error)
}

type Notifier interface {
	NotifyContact(ctx context.Context, m domain.ContactMessage) error
	NotifyBooking(ctx context.Context, b domain.BookingRequest) error
}

type EventProducer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Option func(*pipeline)

func WithLogger(logger *slog.Logger) Option {
	return func(p *pipeline) {
		p.logger = logger
	}
}

// WithEvents publishes a SubmissionEvent to topic for every accepted submission.
func WithEvents(producer EventProducer, topic string) Option {
	return func(p *pipeline) {
		p.producer = producer
		p.topic = topic
	}
}

// WithStoreTimeout bounds each store call.
func WithStoreTimeout(d time.Duration) Option {
	return func(p *pipeline) {
		if d > 0 {
			p.storeTimeout = d
		}
	}
}

// pipeline holds what both handlers share.
type pipeline struct {
	logger       *slog.Logger
	producer     EventProducer
	topic        string
	storeTimeout time.Duration
}

func newPipeline(opts []Option) pipeline {
	p := pipeline{
		logger:       slog.Default(),
		storeTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p *pipeline) finish(ctx context.Context, kind Kind, outcome Outcome, id string, err error) {
	attrs := []any{slog.String("kind", string(kind)), slog.String("outcome", string(outcome))}
	if id != "" {
		attrs = append(attrs, slog.String("id", id))
	}
	switch outcome {
	case OutcomeCompleted:
		p.logger.InfoContext(ctx, "submission handled", attrs...)
	case OutcomeRejected:
		p.logger.InfoContext(ctx, "submission rejected", append(attrs, slog.Any("error", err))...)
	default:
		p.logger.ErrorContext(ctx, "submission failed", append(attrs, slog.Any("error", err))...)
	}
}

func (p *pipeline) publish(ctx context.Context, kind Kind, id, name, email string, notified bool, createdAt time.Time) {
	if p.producer == nil || p.topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	defer cancel()

	event := kafka.SubmissionEvent{
		Type:      fmt.Sprintf("%s_received", kind),
		ID:        id,
		Name:      name,
		Email:     email,
		Notified:  notified,
		CreatedAt: createdAt,
	}
	key := id
	if key == "" {
		key = email
	}
	if err := p.producer.Publish(ctx, p.topic, key, event); err != nil {
		p.logger.WarnContext(ctx, "publish submission event failed",
			slog.String("kind", string(kind)), slog.Any("error", err))
	}
}
