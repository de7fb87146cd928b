package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/happyfaces/facepaint/internal/domain"
)

// ErrStorage marks failures of the underlying database.
var ErrStorage = errors.New("storage unavailable")

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// Create methods assign ID and, where the record has one, CreatedAt.
// List methods return rows in insertion order.

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRequest) error
	List(ctx context.Context) ([]domain.BookingRequest, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	List(ctx context.Context) ([]domain.Event, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	List(ctx context.Context) ([]domain.GalleryItem, error)
}

// TestimonialFilter narrows a testimonial listing. A nil Approved lists all.
type TestimonialFilter struct {
	Approved *bool
}

func OnlyApproved() TestimonialFilter {
	approved := true
	return TestimonialFilter{Approved: &approved}
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error)
}

// Repositories bundles one implementation of every collection.
type Repositories struct {
	Contacts     ContactRepository
	Bookings     BookingRepository
	Events       EventRepository
	Gallery      GalleryRepository
	Testimonials TestimonialRepository
}
