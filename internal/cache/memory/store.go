// Package memory — LRU-хранилище записей кэша в памяти процесса.
// Используется как backend без внешних зависимостей (dev, тесты, один инстанс).
package memory

import (
	"container/list"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
)

var _ ports.CacheStore = (*Store)(nil)

type entry struct {
	key domain.CacheKey
	row domain.CacheRow
}

// Store — LRU с ограничением ёмкости. Истёкшие строки живут ещё retention,
// чтобы их можно было отдать в режиме stale-while-revalidate.
type Store struct {
	capacity  int
	retention time.Duration
	now       func() time.Time

	ll    *list.List
	index map[domain.CacheKey]*list.Element

	mu sync.Mutex
}

// NewStore — capacity <= 0 → 1; retention < 0 → 0.
func NewStore(capacity int, retention time.Duration) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	if retention < 0 {
		retention = 0
	}
	return &Store{
		capacity:  capacity,
		retention: retention,
		now:       time.Now,
		ll:        list.New(),
		index:     make(map[domain.CacheKey]*list.Element),
	}
}

// WithClock — источник времени (тесты).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Get(_ context.Context, key domain.CacheKey) (*domain.CacheRow, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		return nil, nil
	}
	ent := elem.Value.(*entry)
	if s.isPurgeable(ent, now) {
		s.removeElement(elem)
		metrics.CacheSize.Set(float64(len(s.index)))
		return nil, nil
	}
	s.ll.MoveToFront(elem)
	return cloneRow(&ent.row), nil
}

func (s *Store) Upsert(_ context.Context, row *domain.CacheRow) error {
	if row == nil {
		return nil
	}
	key := row.Key()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[key]; ok {
		elem.Value.(*entry).row = *cloneRow(row)
		s.ll.MoveToFront(elem)
		return nil
	}

	s.pruneFromBack(now)

	elem := s.ll.PushFront(&entry{key: key, row: *cloneRow(row)})
	s.index[key] = elem

	if s.ll.Len() > s.capacity {
		s.evictLRU()
	}
	metrics.CacheSize.Set(float64(len(s.index)))
	return nil
}

func (s *Store) Delete(_ context.Context, key domain.CacheKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		return false, nil
	}
	s.removeElement(elem)
	metrics.CacheSize.Set(float64(len(s.index)))
	return true, nil
}

func (s *Store) DeleteShop(_ context.Context, shop string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, elem := range s.index {
		if key.Shop == shop {
			s.removeElement(elem)
			n++
		}
	}
	metrics.CacheSize.Set(float64(len(s.index)))
	return n, nil
}

// ListExpiring — строки с ExpiresAt < before, по возрастанию ExpiresAt.
func (s *Store) ListExpiring(_ context.Context, before time.Time, limit, offset int) ([]domain.CacheRow, error) {
	s.mu.Lock()
	rows := make([]domain.CacheRow, 0)
	for _, elem := range s.index {
		ent := elem.Value.(*entry)
		if ent.row.ExpiresAt.Before(before) {
			rows = append(rows, *cloneRow(&ent.row))
		}
	}
	s.mu.Unlock()

	slices.SortFunc(rows, func(a, b domain.CacheRow) int {
		if c := a.ExpiresAt.Compare(b.ExpiresAt); c != 0 {
			return c
		}
		return compareKeys(a.Key(), b.Key())
	})

	if offset >= len(rows) {
		return []domain.CacheRow{}, nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *Store) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, elem := range s.index {
		if elem.Value.(*entry).row.ExpiresAt.Before(before) {
			s.removeElement(elem)
			n++
		}
	}
	metrics.CacheSize.Set(float64(len(s.index)))
	return n, nil
}

// Len — число строк (включая истёкшие в пределах retention).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}
