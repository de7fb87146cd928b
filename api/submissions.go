package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/service/submission"
)

// SubmissionLister exposes stored submissions. Only the persisted deployment has one.
type SubmissionLister interface {
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	ListBookings(ctx context.Context) ([]domain.BookingRequest, error)
}

type SubmissionHandler struct {
	handler submission.Handler
	lister  SubmissionLister
	logger  *slog.Logger
}

type submissionData struct {
	ID                  string `json:"id,omitempty"`
	RecommendedDuration string `json:"recommendedDuration,omitempty"`
}

// NewSubmissionHandler builds the write endpoints. lister may be nil.
func NewSubmissionHandler(handler submission.Handler, lister SubmissionLister, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{handler: handler, lister: lister, logger: logger}
}

func (h *SubmissionHandler) Register(router *gin.RouterGroup) {
	router.OPTIONS("/contact", preflight)
	router.OPTIONS("/bookings", preflight)
	router.POST("/contact", allowAnyOrigin, h.contact)
	router.POST("/bookings", allowAnyOrigin, h.booking)
	if h.lister != nil {
		router.GET("/contact", h.listContacts)
		router.GET("/bookings", h.listBookings)
	}
}

func (h *SubmissionHandler) contact(c *gin.Context) {
	h.submit(c, submission.KindContact, "Failed to send contact message")
}

func (h *SubmissionHandler) booking(c *gin.Context) {
	h.submit(c, submission.KindBooking, "Failed to send booking request")
}

func (h *SubmissionHandler) submit(c *gin.Context, kind submission.Kind, fallback string) {
	raw, err := bindObject(c)
	if err != nil {
		fail(c, h.logger, err, fallback)
		return
	}

	res, err := h.handler.Handle(c.Request.Context(), kind, raw)
	if err != nil {
		fail(c, h.logger, err, fallback)
		return
	}

	if res.ID == "" && res.RecommendedDuration == "" {
		ok(c, res.Message, nil)
		return
	}
	ok(c, res.Message, submissionData{ID: res.ID, RecommendedDuration: res.RecommendedDuration})
}

func (h *SubmissionHandler) listContacts(c *gin.Context) {
	messages, err := h.lister.ListContacts(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err, "Failed to fetch contact messages")
		return
	}
	okData(c, messages)
}

func (h *SubmissionHandler) listBookings(c *gin.Context) {
	bookings, err := h.lister.ListBookings(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err, "Failed to fetch booking requests")
		return
	}
	okData(c, bookings)
}
