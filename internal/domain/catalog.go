package domain

import "time"

type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Venue       string  `json:"venue"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description *string `json:"description"`
}

type GalleryItem struct {
	ID          string  `json:"id"`
	ImageURL    string  `json:"imageUrl"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

const (
	MinRating = 1
	MaxRating = 5

	// DefaultTestimonialDate is stored when a testimonial is submitted without a date.
	DefaultTestimonialDate = "recently"
)

type Testimonial struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	Date       string    `json:"date"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}
