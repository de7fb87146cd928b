package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/happyfaces/facepaint/internal/service/catalog"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
	logger  *slog.Logger
}

func NewCatalogHandler(service catalog.CatalogUseCase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/events", h.listEvents)
	router.POST("/events", h.createEvent)
	router.GET("/gallery", h.listGallery)
	router.POST("/gallery", h.createGalleryItem)
	router.GET("/testimonials", h.listTestimonials)
	router.POST("/testimonials", h.createTestimonial)
}

func (h *CatalogHandler) listEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err, "Failed to fetch events")
		return
	}
	okData(c, events)
}

func (h *CatalogHandler) createEvent(c *gin.Context) {
	raw, err := bindObject(c)
	if err != nil {
		fail(c, h.logger, err, "Failed to create event")
		return
	}
	event, err := h.service.CreateEvent(c.Request.Context(), raw)
	if err != nil {
		fail(c, h.logger, err, "Failed to create event")
		return
	}
	okData(c, event)
}

func (h *CatalogHandler) listGallery(c *gin.Context) {
	items, err := h.service.ListGallery(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err, "Failed to fetch gallery items")
		return
	}
	okData(c, items)
}

func (h *CatalogHandler) createGalleryItem(c *gin.Context) {
	raw, err := bindObject(c)
	if err != nil {
		fail(c, h.logger, err, "Failed to create gallery item")
		return
	}
	item, err := h.service.CreateGalleryItem(c.Request.Context(), raw)
	if err != nil {
		fail(c, h.logger, err, "Failed to create gallery item")
		return
	}
	okData(c, item)
}

func (h *CatalogHandler) listTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListApprovedTestimonials(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err, "Failed to fetch testimonials")
		return
	}
	okData(c, testimonials)
}

func (h *CatalogHandler) createTestimonial(c *gin.Context) {
	raw, err := bindObject(c)
	if err != nil {
		fail(c, h.logger, err, "Failed to create testimonial")
		return
	}
	testimonial, err := h.service.CreateTestimonial(c.Request.Context(), raw)
	if err != nil {
		fail(c, h.logger, err, "Failed to create testimonial")
		return
	}
	okData(c, testimonial)
}
