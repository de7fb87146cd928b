package notifier

import (
	"fmt"
	"strings"

	"github.com/happyfaces/facepaint/internal/domain"
)

func ContactSubject(m domain.ContactMessage) string {
	return "New Contact Message from " + m.Name
}

func BookingSubject(b domain.BookingRequest) string {
	return "New Booking Request from " + b.Name
}

// RenderContact renders the plain-text body for a contact message. The
// phone line is omitted when no phone was given.
func RenderContact(m domain.ContactMessage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New Contact Message from %s\n\n", m.Name)
	fmt.Fprintf(&sb, "MESSAGE:\n%s\n\n", m.Message)
	sb.WriteString("CONTACT INFORMATION:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", m.Name)
	fmt.Fprintf(&sb, "- Email: %s\n", m.Email)
	if m.Phone != "" {
		fmt.Fprintf(&sb, "- Phone: %s\n", m.Phone)
	}
	writeFooter(&sb, m.Name)
	return sb.String()
}

// RenderBooking renders the plain-text body for a booking request.
func RenderBooking(b domain.BookingRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New Booking Request from %s\n\n", b.Name)
	sb.WriteString("EVENT DETAILS:\n")
	fmt.Fprintf(&sb, "- Event Type: %s\n", b.EventType)
	fmt.Fprintf(&sb, "- Event Date: %s\n", b.EventDate)
	fmt.Fprintf(&sb, "- Start Time: %s\n", b.StartTime)
	fmt.Fprintf(&sb, "- Location/Venue: %s\n", b.Location)
	fmt.Fprintf(&sb, "- Number of Children: %d\n", b.NumberOfChildren)
	fmt.Fprintf(&sb, "- Duration: %s\n\n", b.Duration)
	sb.WriteString("CONTACT INFORMATION:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "- Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "- Phone: %s\n\n", b.Phone)
	if b.SpecialRequests != nil && strings.TrimSpace(*b.SpecialRequests) != "" {
		fmt.Fprintf(&sb, "SPECIAL REQUESTS:\n%s\n", *b.SpecialRequests)
	} else {
		sb.WriteString("No special requests\n")
	}
	writeFooter(&sb, b.Name)
	return sb.String()
}

func writeFooter(sb *strings.Builder, name string) {
	fmt.Fprintf(sb, "\n---\nReply directly to this email to respond to %s.", name)
}
