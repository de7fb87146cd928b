package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() map[string]any {
	return map[string]any{
		"name":             "Jo Bloggs",
		"email":            "jo@example.com",
		"phone":            "07700 900123",
		"eventDate":        "2026-11-21",
		"startTime":        "14:00",
		"location":         "Belfast City Hall",
		"eventType":        "Birthday Party",
		"numberOfChildren": float64(12),
		"duration":         "1 hour",
	}
}

func TestContact_Valid(t *testing.T) {
	v := New(Options{})
	msg, err := v.Contact(map[string]any{
		"name":    "  Jo Bloggs ",
		"email":   "jo@example.com",
		"message": "Looking to book a party",
		"extra":   "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jo Bloggs", msg.Name)
	assert.Equal(t, "jo@example.com", msg.Email)
	assert.Empty(t, msg.Phone)
	assert.Equal(t, "Looking to book a party", msg.Message)
}

func TestContact_CollectsAllViolations(t *testing.T) {
	v := New(Options{})
	_, err := v.Contact(map[string]any{"name": "", "email": "bad", "message": "hi"})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "email", "message"}, verr.Fields())
	assert.Equal(t, "Please enter a valid email address", verr.Violations[1].Message)
	assert.Equal(t, "Message must be at least 10 characters", verr.Violations[2].Message)
}

func TestContact_PhoneRequiredWhenConfigured(t *testing.T) {
	v := New(Options{RequireContactPhone: true})
	_, err := v.Contact(map[string]any{
		"name":    "Jo Bloggs",
		"email":   "jo@example.com",
		"message": "Looking to book a party",
	})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"phone"}, verr.Fields())
}

func TestContact_OptionalPhoneStillChecked(t *testing.T) {
	v := New(Options{})
	_, err := v.Contact(map[string]any{
		"name":    "Jo Bloggs",
		"email":   "jo@example.com",
		"phone":   "123",
		"message": "Looking to book a party",
	})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"phone"}, verr.Fields())
}

func TestContact_NonTextField(t *testing.T) {
	v := New(Options{})
	_, err := v.Contact(map[string]any{
		"name":    []any{"Jo"},
		"email":   "jo@example.com",
		"message": "Looking to book a party",
	})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "name must be text", verr.Violations[0].Message)
}

func TestBooking_Valid(t *testing.T) {
	v := New(Options{})
	raw := validBooking()
	raw["specialRequests"] = "  Glitter please  "

	b, err := v.Booking(raw)
	require.NoError(t, err)
	assert.Equal(t, 12, b.NumberOfChildren)
	require.NotNil(t, b.SpecialRequests)
	assert.Equal(t, "Glitter please", *b.SpecialRequests)
}

func TestBooking_ChildrenFromString(t *testing.T) {
	v := New(Options{})
	raw := validBooking()
	raw["numberOfChildren"] = "25"

	b, err := v.Booking(raw)
	require.NoError(t, err)
	assert.Equal(t, 25, b.NumberOfChildren)
}

func TestBooking_ChildrenFromJSONNumber(t *testing.T) {
	v := New(Options{})
	raw := validBooking()
	raw["numberOfChildren"] = json.Number("40")

	b, err := v.Booking(raw)
	require.NoError(t, err)
	assert.Equal(t, 40, b.NumberOfChildren)
}

func TestBooking_ChildrenBounds(t *testing.T) {
	v := New(Options{})

	for _, n := range []any{float64(1), float64(100), "1", "100"} {
		raw := validBooking()
		raw["numberOfChildren"] = n
		_, err := v.Booking(raw)
		assert.NoError(t, err, "children=%v", n)
	}

	for _, n := range []any{float64(0), float64(101), "0", "101", float64(-3), "abc", 2.5, "2.5", true} {
		raw := validBooking()
		raw["numberOfChildren"] = n
		_, err := v.Booking(raw)
		verr, ok := AsError(err)
		require.True(t, ok, "children=%v", n)
		assert.Equal(t, []string{"numberOfChildren"}, verr.Fields(), "children=%v", n)
	}
}

func TestBooking_ChildrenMessages(t *testing.T) {
	v := New(Options{})

	raw := validBooking()
	raw["numberOfChildren"] = float64(0)
	_, err := v.Booking(raw)
	verr, _ := AsError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "Must have at least 1 child", verr.Violations[0].Message)

	raw["numberOfChildren"] = float64(101)
	_, err = v.Booking(raw)
	verr, _ = AsError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "Please contact us directly for events with over 100 children", verr.Violations[0].Message)
}

func TestBooking_MissingFields(t *testing.T) {
	v := New(Options{})
	_, err := v.Booking(map[string]any{"name": "Jo Bloggs", "email": "jo@example.com"})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"phone", "eventDate", "startTime", "location", "eventType", "numberOfChildren", "duration",
	}, verr.Fields())
}

func TestBooking_BlankSpecialRequestsIsNil(t *testing.T) {
	v := New(Options{})
	raw := validBooking()
	raw["specialRequests"] = "   "

	b, err := v.Booking(raw)
	require.NoError(t, err)
	assert.Nil(t, b.SpecialRequests)
}

func TestStrictPhone(t *testing.T) {
	v := New(Options{StrictPhone: true, PhoneRegion: "GB"})

	raw := validBooking()
	raw["phone"] = "028 9024 5133"
	_, err := v.Booking(raw)
	assert.NoError(t, err)

	raw["phone"] = "0000000000"
	_, err = v.Booking(raw)
	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"phone"}, verr.Fields())
}

func TestTestimonial_Defaults(t *testing.T) {
	v := New(Options{})
	tm, err := v.Testimonial(map[string]any{
		"author": "Sarah M",
		"rating": float64(5),
		"text":   "Fantastic at our party!",
	})
	require.NoError(t, err)
	assert.Equal(t, "recently", tm.Date)
	assert.False(t, tm.IsApproved)
}

func TestTestimonial_RatingBounds(t *testing.T) {
	v := New(Options{})
	for _, r := range []any{float64(0), float64(6)} {
		_, err := v.Testimonial(map[string]any{
			"author": "Sarah M",
			"rating": r,
			"text":   "Fantastic at our party!",
		})
		verr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, []string{"rating"}, verr.Fields())
	}
}

func TestEvent_RequiresFields(t *testing.T) {
	v := New(Options{})
	_, err := v.Event(map[string]any{"title": "Summer Fair"})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"venue", "location", "date", "time"}, verr.Fields())
}

func TestGalleryItem_Valid(t *testing.T) {
	v := New(Options{})
	item, err := v.GalleryItem(map[string]any{
		"imageUrl": "/images/tiger.jpg",
		"title":    "Tiger",
		"category": "Animals",
	})
	require.NoError(t, err)
	assert.Nil(t, item.Description)
}
