package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyfaces/facepaint/internal/domain"
)

func TestNewPGRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}
	repos := NewPGRepositories(pool)
	assert.NotNil(t, repos.Contacts)
	assert.NotNil(t, repos.Bookings)
	assert.NotNil(t, repos.Events)
	assert.NotNil(t, repos.Gallery)
	assert.NotNil(t, repos.Testimonials)
}

func TestStorageErrWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := storageErr("insert contact message", cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert contact message")
}

// TestPGRepositories_Integration runs against a real database when
// TEST_DATABASE_URL is set.
func TestPGRepositories_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool))
	repos := NewPGRepositories(pool)

	b := &domain.BookingRequest{
		Name: "Jo Bloggs", Email: "jo@example.com", Phone: "07700 900123",
		EventDate: "2026-11-21", StartTime: "14:00", Location: "Belfast",
		EventType: "Other", NumberOfChildren: 10, Duration: "1 hour",
	}
	require.NoError(t, repos.Bookings.Create(ctx, b))
	assert.NotEmpty(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	listed, err := repos.Bookings.List(ctx)
	require.NoError(t, err)

	found := false
	for _, got := range listed {
		if got.ID == b.ID {
			found = true
			assert.Equal(t, b.NumberOfChildren, got.NumberOfChildren)
			assert.Nil(t, got.SpecialRequests)
		}
	}
	assert.True(t, found)
}
