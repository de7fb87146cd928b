package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/happyfaces/facepaint/internal/cache"
	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/repository"
	"github.com/happyfaces/facepaint/internal/validation"
)

type CatalogUseCase interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, raw map[string]any) (*domain.Event, error)
	ListGallery(ctx context.Context) ([]domain.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, raw map[string]any) (*domain.GalleryItem, error)
	ListApprovedTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, raw map[string]any) (*domain.Testimonial, error)
}

// Cache is optional. Errors from it are logged and otherwise ignored.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type CatalogService struct {
	validator    *validation.Validator
	events       repository.EventRepository
	gallery      repository.GalleryRepository
	testimonials repository.TestimonialRepository
	cache        Cache
	logger       *slog.Logger
	timeout      time.Duration
}

func NewCatalogService(
	validator *validation.Validator,
	repos repository.Repositories,
	cache Cache,
	logger *slog.Logger,
	timeout time.Duration,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CatalogService{
		validator:    validator,
		events:       repos.Events,
		gallery:      repos.Gallery,
		testimonials: repos.Testimonials,
		cache:        cache,
		logger:       logger,
		timeout:      timeout,
	}
}

func (s *CatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return cachedList(ctx, s, cache.EventsKey, s.events.List)
}

func (s *CatalogService) CreateEvent(ctx context.Context, raw map[string]any) (*domain.Event, error) {
	e, err := s.validator.Event(raw)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, cache.EventsKey, func(ctx context.Context) error { return s.events.Create(ctx, &e) }); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *CatalogService) ListGallery(ctx context.Context) ([]domain.GalleryItem, error) {
	return cachedList(ctx, s, cache.GalleryKey, s.gallery.List)
}

func (s *CatalogService) CreateGalleryItem(ctx context.Context, raw map[string]any) (*domain.GalleryItem, error) {
	item, err := s.validator.GalleryItem(raw)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, cache.GalleryKey, func(ctx context.Context) error { return s.gallery.Create(ctx, &item) }); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) ListApprovedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return cachedList(ctx, s, cache.TestimonialsKey, func(ctx context.Context) ([]domain.Testimonial, error) {
		return s.testimonials.List(ctx, repository.OnlyApproved())
	})
}

func (s *CatalogService) CreateTestimonial(ctx context.Context, raw map[string]any) (*domain.Testimonial, error) {
	t, err := s.validator.Testimonial(raw)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, cache.TestimonialsKey, func(ctx context.Context) error { return s.testimonials.Create(ctx, &t) }); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *CatalogService) create(ctx context.Context, key string, insert func(context.Context) error) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := insert(storeCtx); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "cache invalidation failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return nil
}

func cachedList[T any](ctx context.Context, s *CatalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var cached []T
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.Any("error", err))
		} else if found && cached != nil {
			return cached, nil
		}
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	items, err := load(storeCtx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items); err != nil {
			s.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return items, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
