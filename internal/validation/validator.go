// Package validation turns untyped request input into constraint-satisfying
// domain records. Storage column definitions live in the repository package
// and share nothing with these rules except field names.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/happyfaces/facepaint/internal/domain"
)

const strictPhoneTag = "phone_strict"

type Options struct {
	// RequireContactPhone makes phone mandatory on contact messages.
	RequireContactPhone bool
	// StrictPhone additionally requires phone numbers to parse as valid
	// numbers for PhoneRegion.
	StrictPhone bool
	PhoneRegion string
}

type Validator struct {
	v    *validator.Validate
	opts Options
}

func New(opts Options) *Validator {
	if opts.PhoneRegion == "" {
		opts.PhoneRegion = "GB"
	}

	v := validator.New()
	region := strings.ToUpper(opts.PhoneRegion)
	_ = v.RegisterValidation(strictPhoneTag, func(fl validator.FieldLevel) bool {
		num, err := phonenumbers.Parse(fl.Field().String(), region)
		if err != nil {
			return false
		}
		return phonenumbers.IsValidNumber(num)
	})

	return &Validator{v: v, opts: opts}
}

func (val *Validator) phoneChecks() []check {
	checks := []check{minLen(10, "Please enter a valid phone number")}
	if val.opts.StrictPhone {
		checks = append(checks, check{tag: strictPhoneTag, message: "Please enter a valid phone number"})
	}
	return checks
}

var (
	nameChecks  = []check{minLen(2, "Name must be at least 2 characters")}
	emailChecks = []check{{tag: "email", message: "Please enter a valid email address"}}
)

// Contact validates a contact form submission.
func (val *Validator) Contact(raw map[string]any) (domain.ContactMessage, error) {
	c := newCollector(val.v, raw)

	msg := domain.ContactMessage{
		Name:  c.requiredText("name", nameChecks...),
		Email: c.requiredText("email", emailChecks...),
	}
	if val.opts.RequireContactPhone {
		msg.Phone = c.requiredText("phone", val.phoneChecks()...)
	} else if phone := c.optionalText("phone", val.phoneChecks()...); phone != nil {
		msg.Phone = *phone
	}
	msg.Message = c.requiredText("message", minLen(10, "Message must be at least 10 characters"))

	if err := c.err(); err != nil {
		return domain.ContactMessage{}, err
	}
	return msg, nil
}

// Booking validates a booking request. numberOfChildren may arrive as a
// number or a numeric string; fractional counts are rejected.
func (val *Validator) Booking(raw map[string]any) (domain.BookingRequest, error) {
	c := newCollector(val.v, raw)

	b := domain.BookingRequest{
		Name:      c.requiredText("name", nameChecks...),
		Email:     c.requiredText("email", emailChecks...),
		Phone:     c.requiredText("phone", val.phoneChecks()...),
		EventDate: c.requiredText("eventDate"),
		StartTime: c.requiredText("startTime"),
		Location:  c.requiredText("location", minLen(2, "Please enter event location or venue name")),
		EventType: c.requiredText("eventType"),
		NumberOfChildren: c.requiredInt("numberOfChildren",
			check{tag: fmt.Sprintf("gte=%d", domain.MinChildren), message: "Must have at least 1 child"},
			check{tag: fmt.Sprintf("lte=%d", domain.MaxChildren), message: "Please contact us directly for events with over 100 children"},
		),
		Duration:        c.requiredText("duration"),
		SpecialRequests: c.optionalText("specialRequests"),
	}

	if err := c.err(); err != nil {
		return domain.BookingRequest{}, err
	}
	return b, nil
}

func (val *Validator) Event(raw map[string]any) (domain.Event, error) {
	c := newCollector(val.v, raw)

	e := domain.Event{
		Title:       c.requiredText("title"),
		Venue:       c.requiredText("venue"),
		Location:    c.requiredText("location"),
		Date:        c.requiredText("date"),
		Time:        c.requiredText("time"),
		Description: c.optionalText("description"),
	}

	if err := c.err(); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (val *Validator) GalleryItem(raw map[string]any) (domain.GalleryItem, error) {
	c := newCollector(val.v, raw)

	item := domain.GalleryItem{
		ImageURL:    c.requiredText("imageUrl"),
		Title:       c.requiredText("title"),
		Category:    c.requiredText("category"),
		Description: c.optionalText("description"),
	}

	if err := c.err(); err != nil {
		return domain.GalleryItem{}, err
	}
	return item, nil
}

// Testimonial validates a review. Missing dates default to "recently" and new
// testimonials are unapproved unless the input says otherwise.
func (val *Validator) Testimonial(raw map[string]any) (domain.Testimonial, error) {
	c := newCollector(val.v, raw)

	t := domain.Testimonial{
		Author: c.requiredText("author", minLen(2, "Author name must be at least 2 characters")),
		Rating: c.requiredInt("rating",
			check{tag: fmt.Sprintf("gte=%d", domain.MinRating), message: "Rating must be between 1 and 5"},
			check{tag: fmt.Sprintf("lte=%d", domain.MaxRating), message: "Rating must be between 1 and 5"},
		),
		Text:       c.requiredText("text", minLen(10, "Testimonial must be at least 10 characters")),
		Date:       domain.DefaultTestimonialDate,
		IsApproved: c.optionalBool("isApproved", false),
	}
	if date := c.optionalText("date"); date != nil {
		t.Date = *date
	}

	if err := c.err(); err != nil {
		return domain.Testimonial{}, err
	}
	return t, nil
}
