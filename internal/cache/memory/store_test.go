package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newRow(shop string, dt domain.DataType, expiresIn time.Duration) *domain.CacheRow {
	return &domain.CacheRow{
		Shop:      shop,
		DataType:  dt,
		Data:      []byte(`{"data":[],"timestamp":0,"expiresAt":0}`),
		ExpiresAt: base.Add(expiresIn),
		UpdatedAt: base,
	}
}

func key(shop string, dt domain.DataType) domain.CacheKey {
	return domain.CacheKey{Shop: shop, DataType: dt}
}

func TestUpsertGet_HitMiss(t *testing.T) {
	s := NewStore(4, time.Hour).WithClock(func() time.Time { return base })
	ctx := context.Background()

	// miss
	if row, err := s.Get(ctx, key("a", domain.DataTypeVendors)); row != nil || err != nil {
		t.Fatalf("expected miss before Upsert, got %v %v", row, err)
	}

	// hit после Upsert
	_ = s.Upsert(ctx, newRow("a", domain.DataTypeVendors, time.Minute))
	row, err := s.Get(ctx, key("a", domain.DataTypeVendors))
	if err != nil || row == nil || row.Shop != "a" {
		t.Fatalf("expected hit, got %v %v", row, err)
	}
}

func TestRetention_KeepsExpiredThenPurges(t *testing.T) {
	now := base
	s := NewStore(4, 10*time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	_ = s.Upsert(ctx, newRow("a", domain.DataTypeVendors, time.Minute))

	now = base.Add(5 * time.Minute) // истекла, но в пределах retention
	if row, _ := s.Get(ctx, key("a", domain.DataTypeVendors)); row == nil {
		t.Fatalf("expired row must be kept during retention")
	}

	now = base.Add(12 * time.Minute)
	if row, _ := s.Get(ctx, key("a", domain.DataTypeVendors)); row != nil {
		t.Fatalf("row must be purged after retention")
	}
	if s.Len() != 0 {
		t.Fatalf("purged row must leave the index")
	}
}

func TestLRUEviction(t *testing.T) {
	s := NewStore(2, time.Hour).WithClock(func() time.Time { return base })
	ctx := context.Background()

	_ = s.Upsert(ctx, newRow("A", domain.DataTypeVendors, time.Hour))
	_ = s.Upsert(ctx, newRow("B", domain.DataTypeVendors, time.Hour))
	// A сделать «свежим»
	if row, _ := s.Get(ctx, key("A", domain.DataTypeVendors)); row == nil {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = s.Upsert(ctx, newRow("C", domain.DataTypeVendors, time.Hour))

	if row, _ := s.Get(ctx, key("B", domain.DataTypeVendors)); row != nil {
		t.Fatalf("expected B to be evicted")
	}
	if row, _ := s.Get(ctx, key("A", domain.DataTypeVendors)); row == nil || s.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in store")
	}
}

func TestCloneImmutability(t *testing.T) {
	s := NewStore(1, 0).WithClock(func() time.Time { return base })
	ctx := context.Background()
	orig := newRow("Z", domain.DataTypeVendors, time.Hour)
	_ = s.Upsert(ctx, orig)
	orig.Data[0] = 'X'

	// меняем то, что вернул Get — не должно влиять на хранилище
	r1, _ := s.Get(ctx, key("Z", domain.DataTypeVendors))
	r1.Data[1] = 'Y'

	r2, _ := s.Get(ctx, key("Z", domain.DataTypeVendors))
	if r2.Data[0] != '{' || r2.Data[1] != '"' {
		t.Fatalf("store data must not be affected by external mutation: %s", r2.Data)
	}
}

func TestDeleteAndDeleteShop(t *testing.T) {
	s := NewStore(8, time.Hour).WithClock(func() time.Time { return base })
	ctx := context.Background()
	_ = s.Upsert(ctx, newRow("a", domain.DataTypeVendors, time.Hour))
	_ = s.Upsert(ctx, newRow("a", domain.DataTypeCategories, time.Hour))
	_ = s.Upsert(ctx, newRow("b", domain.DataTypeVendors, time.Hour))

	if ok, _ := s.Delete(ctx, key("a", domain.DataTypeScopeCheck)); ok {
		t.Fatalf("delete of missing key must report false")
	}
	if ok, _ := s.Delete(ctx, key("a", domain.DataTypeVendors)); !ok {
		t.Fatalf("delete of existing key must report true")
	}
	if n, _ := s.DeleteShop(ctx, "a"); n != 1 {
		t.Fatalf("DeleteShop removed %d, want 1", n)
	}
	if s.Len() != 1 {
		t.Fatalf("only shop b must remain, len=%d", s.Len())
	}
}

func TestListExpiringAndDeleteExpired(t *testing.T) {
	s := NewStore(8, time.Hour).WithClock(func() time.Time { return base })
	ctx := context.Background()
	_ = s.Upsert(ctx, newRow("a", domain.DataTypeVendors, 3*time.Minute))
	_ = s.Upsert(ctx, newRow("b", domain.DataTypeVendors, time.Minute))
	_ = s.Upsert(ctx, newRow("c", domain.DataTypeVendors, 2*time.Minute))
	_ = s.Upsert(ctx, newRow("d", domain.DataTypeVendors, time.Hour))

	rows, err := s.ListExpiring(ctx, base.Add(10*time.Minute), 2, 0)
	if err != nil || len(rows) != 2 || rows[0].Shop != "b" || rows[1].Shop != "c" {
		t.Fatalf("unexpected first page: %+v err=%v", rows, err)
	}
	rows, _ = s.ListExpiring(ctx, base.Add(10*time.Minute), 2, 2)
	if len(rows) != 1 || rows[0].Shop != "a" {
		t.Fatalf("unexpected second page: %+v", rows)
	}
	if rows, _ := s.ListExpiring(ctx, base.Add(10*time.Minute), 2, 10); len(rows) != 0 {
		t.Fatalf("offset past end must be empty")
	}

	n, _ := s.DeleteExpired(ctx, base.Add(150*time.Second))
	if n != 2 || s.Len() != 2 {
		t.Fatalf("DeleteExpired removed %d, len=%d", n, s.Len())
	}
}
