package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/happyfaces/facepaint/internal/cache"
	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/logging"
	"github.com/happyfaces/facepaint/internal/repository"
	"github.com/happyfaces/facepaint/internal/validation"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockGalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GalleryItem), args.Error(1)
}

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepository) List(ctx context.Context, filter repository.TestimonialFilter) ([]domain.Testimonial, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type fixture struct {
	events       *MockEventRepository
	gallery      *MockGalleryRepository
	testimonials *MockTestimonialRepository
	cache        *MockCache
	service      *CatalogService
}

func newFixture(withCache bool) *fixture {
	f := &fixture{
		events:       &MockEventRepository{},
		gallery:      &MockGalleryRepository{},
		testimonials: &MockTestimonialRepository{},
		cache:        &MockCache{},
	}
	repos := repository.Repositories{Events: f.events, Gallery: f.gallery, Testimonials: f.testimonials}
	var c Cache
	if withCache {
		c = f.cache
	}
	f.service = NewCatalogService(validation.New(validation.Options{}), repos, c, logging.Discard(), time.Second)
	return f
}

func TestCatalogService_ListEvents_CacheMiss(t *testing.T) {
	f := newFixture(true)
	events := []domain.Event{{ID: "e-1", Title: "Summer Fair"}}

	f.cache.On("Get", mock.Anything, cache.EventsKey, mock.Anything).Return(false, nil).Once()
	f.events.On("List", mock.Anything).Return(events, nil).Once()
	f.cache.On("Set", mock.Anything, cache.EventsKey, events).Return(nil).Once()

	got, err := f.service.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, events, got)
	f.cache.AssertExpectations(t)
	f.events.AssertExpectations(t)
}

func TestCatalogService_ListGallery_CacheHit(t *testing.T) {
	f := newFixture(true)

	f.cache.On("Get", mock.Anything, cache.GalleryKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dst := args.Get(2).(*[]domain.GalleryItem)
			*dst = []domain.GalleryItem{{ID: "g-1", Title: "Tiger"}}
		}).Return(true, nil).Once()

	got, err := f.service.ListGallery(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g-1", got[0].ID)
	f.gallery.AssertNotCalled(t, "List", mock.Anything)
}

func TestCatalogService_CacheErrorFallsBackToStore(t *testing.T) {
	f := newFixture(true)

	f.cache.On("Get", mock.Anything, cache.GalleryKey, mock.Anything).Return(false, errors.New("redis down")).Once()
	f.gallery.On("List", mock.Anything).Return([]domain.GalleryItem{}, nil).Once()
	f.cache.On("Set", mock.Anything, cache.GalleryKey, mock.Anything).Return(errors.New("redis down")).Once()

	got, err := f.service.ListGallery(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogService_ListApprovedTestimonials(t *testing.T) {
	f := newFixture(false)

	f.testimonials.On("List", mock.Anything, mock.MatchedBy(func(filter repository.TestimonialFilter) bool {
		return filter.Approved != nil && *filter.Approved
	})).Return([]domain.Testimonial{{ID: "t-1", IsApproved: true}}, nil).Once()

	got, err := f.service.ListApprovedTestimonials(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	f.testimonials.AssertExpectations(t)
}

func TestCatalogService_CreateEvent_InvalidatesCache(t *testing.T) {
	f := newFixture(true)

	f.events.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Event).ID = "e-2"
	}).Return(nil).Once()
	f.cache.On("Delete", mock.Anything, cache.EventsKey).Return(nil).Once()

	e, err := f.service.CreateEvent(context.Background(), map[string]any{
		"title": "Summer Fair", "venue": "Botanic Gardens", "location": "Belfast",
		"date": "2026-07-04", "time": "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "e-2", e.ID)
	f.cache.AssertExpectations(t)
}

func TestCatalogService_CreateTestimonial_Invalid(t *testing.T) {
	f := newFixture(true)

	_, err := f.service.CreateTestimonial(context.Background(), map[string]any{"author": "S", "rating": float64(9)})
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"author", "rating", "text"}, verr.Fields())
	f.testimonials.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateGalleryItem_StoreError(t *testing.T) {
	f := newFixture(true)

	f.gallery.On("Create", mock.Anything, mock.Anything).Return(repository.ErrStorage).Once()

	_, err := f.service.CreateGalleryItem(context.Background(), map[string]any{
		"imageUrl": "/images/tiger.jpg", "title": "Tiger", "category": "Animals",
	})
	assert.ErrorIs(t, err, repository.ErrStorage)
	f.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
