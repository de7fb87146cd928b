package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyfaces/facepaint/internal/domain"
)

type PGEventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

func (r *PGEventRepository) Create(ctx context.Context, e *domain.Event) error {
	e.ID = uuid.NewString()
	if _, err := r.db.Exec(ctx, `INSERT INTO events (id, title, venue, location, date, time, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, e.ID, e.Title, e.Venue, e.Location, e.Date, e.Time, e.Description); err != nil {
		return storageErr("insert event", err)
	}
	return nil
}

func (r *PGEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, venue, location, date, time, description FROM events ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr("list events", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Venue, &e.Location, &e.Date, &e.Time, &e.Description); err != nil {
			return nil, storageErr("scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list events", err)
	}
	return events, nil
}

type PGGalleryRepository struct {
	db *pgxpool.Pool
}

func NewGalleryRepository(db *pgxpool.Pool) GalleryRepository {
	return &PGGalleryRepository{db: db}
}

func (r *PGGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	item.ID = uuid.NewString()
	if _, err := r.db.Exec(ctx, `INSERT INTO gallery_items (id, image_url, title, category, description)
		VALUES ($1, $2, $3, $4, $5)`, item.ID, item.ImageURL, item.Title, item.Category, item.Description); err != nil {
		return storageErr("insert gallery item", err)
	}
	return nil
}

func (r *PGGalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, image_url, title, category, description FROM gallery_items ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr("list gallery items", err)
	}
	defer rows.Close()

	items := make([]domain.GalleryItem, 0)
	for rows.Next() {
		var item domain.GalleryItem
		if err := rows.Scan(&item.ID, &item.ImageURL, &item.Title, &item.Category, &item.Description); err != nil {
			return nil, storageErr("scan gallery item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list gallery items", err)
	}
	return items, nil
}

type PGTestimonialRepository struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) TestimonialRepository {
	return &PGTestimonialRepository{db: db}
}

func (r *PGTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	t.ID = uuid.NewString()
	if err := r.db.QueryRow(ctx, `INSERT INTO testimonials (id, author, rating, text, date, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`, t.ID, t.Author, t.Rating, t.Text, t.Date, t.IsApproved).
		Scan(&t.CreatedAt); err != nil {
		return storageErr("insert testimonial", err)
	}
	return nil
}

func (r *PGTestimonialRepository) List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error) {
	query := `SELECT id, author, rating, text, date, is_approved, created_at FROM testimonials`
	var args []any
	if filter.Approved != nil {
		query += ` WHERE is_approved = $1`
		args = append(args, *filter.Approved)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list testimonials", err)
	}
	defer rows.Close()

	testimonials := make([]domain.Testimonial, 0)
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Rating, &t.Text, &t.Date, &t.IsApproved, &t.CreatedAt); err != nil {
			return nil, storageErr("scan testimonial", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list testimonials", err)
	}
	return testimonials, nil
}

var (
	_ EventRepository       = (*PGEventRepository)(nil)
	_ GalleryRepository     = (*PGGalleryRepository)(nil)
	_ TestimonialRepository = (*PGTestimonialRepository)(nil)
)
