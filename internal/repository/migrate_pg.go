package repository

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the five collections if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return storageErr("apply schema", err)
	}
	return nil
}

// NewPGRepositories wires every collection to the same connection pool.
func NewPGRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Contacts:     NewContactRepository(db),
		Bookings:     NewBookingRepository(db),
		Events:       NewEventRepository(db),
		Gallery:      NewGalleryRepository(db),
		Testimonials: NewTestimonialRepository(db),
	}
}
