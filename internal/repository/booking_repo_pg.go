package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyfaces/facepaint/internal/domain"
)

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.BookingRequest) error {
	b.ID = uuid.NewString()
	if err := r.db.QueryRow(ctx, `INSERT INTO booking_requests
		(id, name, email, phone, event_date, start_time, location, event_type, number_of_children, duration, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		b.ID, b.Name, b.Email, b.Phone, b.EventDate, b.StartTime, b.Location, b.EventType, b.NumberOfChildren, b.Duration, b.SpecialRequests).
		Scan(&b.CreatedAt); err != nil {
		return storageErr("insert booking request", err)
	}
	return nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.BookingRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, phone, event_date, start_time, location, event_type,
		number_of_children, duration, special_requests, created_at
		FROM booking_requests ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr("list booking requests", err)
	}
	defer rows.Close()

	bookings := make([]domain.BookingRequest, 0)
	for rows.Next() {
		var b domain.BookingRequest
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.EventDate, &b.StartTime, &b.Location, &b.EventType,
			&b.NumberOfChildren, &b.Duration, &b.SpecialRequests, &b.CreatedAt); err != nil {
			return nil, storageErr("scan booking request", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list booking requests", err)
	}
	return bookings, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
