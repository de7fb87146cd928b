package email

import (
	"context"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// Message is a single plain-text email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client delivers messages over SMTP.
type Client struct {
	cfg Config
	d   dialer
}

func NewClient(cfg Config) *Client {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &Client{cfg: cfg, d: d}
}

func (c *Client) Send(ctx context.Context, m Message) error {
	msg, err := buildMessage(m)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.d.DialAndSend(msg)
	}()

	wait := c.cfg.Timeout()
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "smtp:" + c.cfg.Host, Err: err}
		}
		return nil
	case <-ctx.Done():
		return ErrSend{Provider: "smtp:" + c.cfg.Host, Err: ctx.Err()}
	case <-timer.C:
		return ErrSend{Provider: "smtp:" + c.cfg.Host, Err: context.DeadlineExceeded}
	}
}

func buildMessage(m Message) (*gomail.Message, error) {
	from := strings.TrimSpace(m.From)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	subject := strings.TrimSpace(m.Subject)
	if subject == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	if strings.TrimSpace(m.Text) == "" {
		return nil, ErrInvalidMessage{Reason: "text body is required"}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	if replyTo := strings.TrimSpace(m.ReplyTo); replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", m.Text)
	return msg, nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

var _ Sender = (*Client)(nil)
