package service_test

import (
	"context"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) GetPreference(
	ctx context.Context, key string,
) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockPreferenceStore) PutPreference(
	ctx context.Context, key, value string,
) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type fakeCatalog struct {
	products []domain.Product
}

func (c fakeCatalog) GetAll() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

func (c fakeCatalog) GetByID(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (c fakeCatalog) GetBySlug(slug string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (p *recordingPublisher) PublishActivity(
	_ context.Context, e domain.ActivityEvent,
) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Events() []domain.ActivityEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ActivityEvent(nil), p.events...)
}
