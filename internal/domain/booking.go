package domain

import "time"

// EventTypes lists the booking categories offered on the booking form.
// The validator does not enforce membership.
var EventTypes = []string{
	"Birthday Party",
	"Communion Party",
	"Christening Party",
	"Community Event",
	"Corporate Function",
	"School Event",
	"Other",
}

const (
	MinChildren = 1
	MaxChildren = 100
)

type BookingRequest struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	EventDate        string    `json:"eventDate"`
	StartTime        string    `json:"startTime"`
	Location         string    `json:"location"`
	EventType        string    `json:"eventType"`
	NumberOfChildren int       `json:"numberOfChildren"`
	Duration         string    `json:"duration"`
	SpecialRequests  *string   `json:"specialRequests"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RecommendedDuration returns the session length suggested for a party of n children.
func RecommendedDuration(n int) string {
	switch {
	case n < 15:
		return "1 hour"
	case n <= 30:
		return "2 hours"
	default:
		return "3 hours"
	}
}
