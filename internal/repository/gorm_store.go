package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/happyfaces/facepaint/internal/domain"
)

// GORM models mirror schema.sql for SQLite-backed local runs and tests.

type contactModel struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Phone     string    `gorm:"not null;default:''"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (contactModel) TableName() string { return "contact_messages" }

type bookingModel struct {
	ID               string `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Email            string `gorm:"not null"`
	Phone            string `gorm:"not null"`
	EventDate        string `gorm:"not null"`
	StartTime        string `gorm:"not null"`
	Location         string `gorm:"not null"`
	EventType        string `gorm:"not null"`
	NumberOfChildren int    `gorm:"not null"`
	Duration         string `gorm:"not null"`
	SpecialRequests  *string
	CreatedAt        time.Time `gorm:"not null;index"`
}

func (bookingModel) TableName() string { return "booking_requests" }

type eventModel struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Venue       string `gorm:"not null"`
	Location    string `gorm:"not null"`
	Date        string `gorm:"not null"`
	Time        string `gorm:"not null"`
	Description *string
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (eventModel) TableName() string { return "events" }

type galleryModel struct {
	ID          string `gorm:"primaryKey"`
	ImageURL    string `gorm:"column:image_url;not null"`
	Title       string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Description *string
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (galleryModel) TableName() string { return "gallery_items" }

type testimonialModel struct {
	ID         string    `gorm:"primaryKey"`
	Author     string    `gorm:"not null"`
	Rating     int       `gorm:"not null"`
	Text       string    `gorm:"not null"`
	Date       string    `gorm:"not null"`
	IsApproved bool      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (testimonialModel) TableName() string { return "testimonials" }

// OpenSQLite opens (creating if needed) a SQLite database and migrates the
// submission and catalog tables.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, storageErr("open sqlite", err)
	}
	if err := db.AutoMigrate(
		&contactModel{},
		&bookingModel{},
		&eventModel{},
		&galleryModel{},
		&testimonialModel{},
	); err != nil {
		return nil, storageErr("auto-migrate", err)
	}
	return db, nil
}

// NewGormRepositories wires every collection to a GORM database.
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Contacts:     &GormContactRepository{db: db},
		Bookings:     &GormBookingRepository{db: db},
		Events:       &GormEventRepository{db: db},
		Gallery:      &GormGalleryRepository{db: db},
		Testimonials: &GormTestimonialRepository{db: db},
	}
}

// newRowMeta returns a fresh id and a creation time truncated to microseconds,
// the precision Postgres keeps.
func newRowMeta() (string, time.Time) {
	return uuid.NewString(), time.Now().UTC().Truncate(time.Microsecond)
}

type GormContactRepository struct {
	db *gorm.DB
}

func (r *GormContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	id, now := newRowMeta()
	m := contactModel{ID: id, Name: msg.Name, Email: msg.Email, Phone: msg.Phone, Message: msg.Message, CreatedAt: now}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return storageErr("insert contact message", err)
	}
	msg.ID, msg.CreatedAt = m.ID, m.CreatedAt
	return nil
}

func (r *GormContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []contactModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, storageErr("list contact messages", err)
	}
	out := make([]domain.ContactMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.ContactMessage{
			ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Message: m.Message, CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

type GormBookingRepository struct {
	db *gorm.DB
}

func (r *GormBookingRepository) Create(ctx context.Context, b *domain.BookingRequest) error {
	id, now := newRowMeta()
	m := bookingModel{
		ID:               id,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		EventDate:        b.EventDate,
		StartTime:        b.StartTime,
		Location:         b.Location,
		EventType:        b.EventType,
		NumberOfChildren: b.NumberOfChildren,
		Duration:         b.Duration,
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return storageErr("insert booking request", err)
	}
	b.ID, b.CreatedAt = m.ID, m.CreatedAt
	return nil
}

func (r *GormBookingRepository) List(ctx context.Context) ([]domain.BookingRequest, error) {
	var rows []bookingModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, storageErr("list booking requests", err)
	}
	out := make([]domain.BookingRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.BookingRequest{
			ID:               m.ID,
			Name:             m.Name,
			Email:            m.Email,
			Phone:            m.Phone,
			EventDate:        m.EventDate,
			StartTime:        m.StartTime,
			Location:         m.Location,
			EventType:        m.EventType,
			NumberOfChildren: m.NumberOfChildren,
			Duration:         m.Duration,
			SpecialRequests:  m.SpecialRequests,
			CreatedAt:        m.CreatedAt,
		})
	}
	return out, nil
}

type GormEventRepository struct {
	db *gorm.DB
}

func (r *GormEventRepository) Create(ctx context.Context, e *domain.Event) error {
	id, now := newRowMeta()
	m := eventModel{
		ID: id, Title: e.Title, Venue: e.Venue, Location: e.Location,
		Date: e.Date, Time: e.Time, Description: e.Description, CreatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return storageErr("insert event", err)
	}
	e.ID = m.ID
	return nil
}

func (r *GormEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, storageErr("list events", err)
	}
	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Event{
			ID: m.ID, Title: m.Title, Venue: m.Venue, Location: m.Location,
			Date: m.Date, Time: m.Time, Description: m.Description,
		})
	}
	return out, nil
}

type GormGalleryRepository struct {
	db *gorm.DB
}

func (r *GormGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	id, now := newRowMeta()
	m := galleryModel{
		ID: id, ImageURL: item.ImageURL, Title: item.Title, Category: item.Category,
		Description: item.Description, CreatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return storageErr("insert gallery item", err)
	}
	item.ID = m.ID
	return nil
}

func (r *GormGalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	var rows []galleryModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, storageErr("list gallery items", err)
	}
	out := make([]domain.GalleryItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.GalleryItem{
			ID: m.ID, ImageURL: m.ImageURL, Title: m.Title, Category: m.Category, Description: m.Description,
		})
	}
	return out, nil
}

type GormTestimonialRepository struct {
	db *gorm.DB
}

func (r *GormTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	id, now := newRowMeta()
	m := testimonialModel{
		ID: id, Author: t.Author, Rating: t.Rating, Text: t.Text,
		Date: t.Date, IsApproved: t.IsApproved, CreatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return storageErr("insert testimonial", err)
	}
	t.ID, t.CreatedAt = m.ID, m.CreatedAt
	return nil
}

func (r *GormTestimonialRepository) List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at, id")
	if filter.Approved != nil {
		q = q.Where("is_approved = ?", *filter.Approved)
	}

	var rows []testimonialModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, storageErr("list testimonials", err)
	}
	out := make([]domain.Testimonial, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Testimonial{
			ID: m.ID, Author: m.Author, Rating: m.Rating, Text: m.Text,
			Date: m.Date, IsApproved: m.IsApproved, CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

var (
	_ ContactRepository     = (*GormContactRepository)(nil)
	_ BookingRepository     = (*GormBookingRepository)(nil)
	_ EventRepository       = (*GormEventRepository)(nil)
	_ GalleryRepository     = (*GormGalleryRepository)(nil)
	_ TestimonialRepository = (*GormTestimonialRepository)(nil)
)
