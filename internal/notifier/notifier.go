// Package notifier relays validated submissions to the business owner by email.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/email"
)

// ErrDelivery marks a failed hand-off to the email collaborator. Sends are
// never retried.
var ErrDelivery = errors.New("notification delivery failed")

type Config struct {
	From    string
	To      string
	Timeout time.Duration
}

type Notifier struct {
	sender email.Sender
	cfg    Config
}

func New(sender email.Sender, cfg Config) *Notifier {
	return &Notifier{sender: sender, cfg: cfg}
}

func (n *Notifier) NotifyContact(ctx context.Context, m domain.ContactMessage) error {
	return n.send(ctx, m.Email, ContactSubject(m), RenderContact(m))
}

func (n *Notifier) NotifyBooking(ctx context.Context, b domain.BookingRequest) error {
	return n.send(ctx, b.Email, BookingSubject(b), RenderBooking(b))
}

func (n *Notifier) send(ctx context.Context, replyTo, subject, body string) error {
	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}

	err := n.sender.Send(ctx, email.Message{
		From:    n.cfg.From,
		To:      []string{n.cfg.To},
		ReplyTo: replyTo,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return nil
}
