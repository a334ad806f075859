package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeClock — управляемое время для проверок TTL.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// mapStore — хранилище в map для тестов сервиса (без LRU и retention).
type mapStore struct {
	mu   sync.Mutex
	rows map[domain.CacheKey]domain.CacheRow
}

func newMapStore() *mapStore {
	return &mapStore{rows: make(map[domain.CacheKey]domain.CacheRow)}
}

func (s *mapStore) Get(_ context.Context, key domain.CacheKey) (*domain.CacheRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[key]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (s *mapStore) Upsert(_ context.Context, row *domain.CacheRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[row.Key()] = *row
	return nil
}

func (s *mapStore) Delete(_ context.Context, key domain.CacheKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[key]
	delete(s.rows, key)
	return ok, nil
}

func (s *mapStore) DeleteShop(_ context.Context, shop string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k := range s.rows {
		if k.Shop == shop {
			delete(s.rows, k)
			n++
		}
	}
	return n, nil
}

func (s *mapStore) ListExpiring(_ context.Context, before time.Time, _, _ int) ([]domain.CacheRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.CacheRow
	for _, r := range s.rows {
		if r.ExpiresAt.Before(before) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *mapStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k, r := range s.rows {
		if r.ExpiresAt.Before(before) {
			delete(s.rows, k)
			n++
		}
	}
	return n, nil
}

func (s *mapStore) put(row domain.CacheRow) {
	s.mu.Lock()
	s.rows[row.Key()] = row
	s.mu.Unlock()
}
