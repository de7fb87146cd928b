package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	event := SubmissionEvent{Type: "booking_received", ID: "abc", Name: "Jo", Email: "jo@example.com", Notified: true}
	require.NoError(t, p.Publish(context.Background(), "submissions", "abc", event))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "submissions", w.msgs[0].Topic)
	assert.Equal(t, []byte("abc"), w.msgs[0].Key)

	var decoded SubmissionEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.True(t, decoded.Notified)
}

func TestProducer_PublishError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}}
	err := p.Publish(context.Background(), "submissions", "k", SubmissionEvent{})
	assert.ErrorContains(t, err, "broker down")
}

func TestNewProducer(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	assert.NotNil(t, p)
	assert.NoError(t, p.Close())
}
