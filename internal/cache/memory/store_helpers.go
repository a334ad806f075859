package memory

import (
	"container/list"
	"strings"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// evictLRU — удаляет наименее используемый элемент.
func (s *Store) evictLRU() {
	if back := s.ll.Back(); back != nil {
		s.removeElement(back)
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (s *Store) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(s.index, ent.key)
	}
	s.ll.Remove(elem)
}

// isPurgeable — строка истекла больше чем retention назад.
func (s *Store) isPurgeable(ent *entry, now time.Time) bool {
	return now.After(ent.row.ExpiresAt.Add(s.retention))
}

// pruneFromBack — удаляет устаревшие сверх retention строки с хвоста до первой живой.
func (s *Store) pruneFromBack(now time.Time) {
	for {
		back := s.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok || s.isPurgeable(ent, now) {
			s.removeElement(back)
			continue
		}
		return
	}
}

// cloneRow — копия строки, чтобы внешние изменения не отражались на данных внутри хранилища.
func cloneRow(row *domain.CacheRow) *domain.CacheRow {
	if row == nil {
		return nil
	}
	cloned := *row
	if row.Data != nil {
		cloned.Data = append([]byte(nil), row.Data...)
	}
	return &cloned
}

func compareKeys(a, b domain.CacheKey) int {
	if c := strings.Compare(a.Shop, b.Shop); c != 0 {
		return c
	}
	return strings.Compare(string(a.DataType), string(b.DataType))
}
