package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func setupStore(t *testing.T, retention time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, "t:", retention).WithClock(func() time.Time { return base }), mr
}

func row(shop string, dt domain.DataType, expiresIn time.Duration) *domain.CacheRow {
	return &domain.CacheRow{
		Shop:      shop,
		DataType:  dt,
		Data:      []byte(`{"data":[],"timestamp":1,"expiresAt":2}`),
		ExpiresAt: base.Add(expiresIn),
		UpdatedAt: base,
	}
}

func TestConfig_ValidateAndDefaults(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Addr: "x:6379", DB: -1}).Validate())
	assert.NoError(t, (&Config{Addr: "x:6379"}).Validate())

	cfg := Config{Addr: "x:6379"}.MergeDefaults()
	assert.Equal(t, 10, cfg.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, "wizard:", cfg.Prefix)
	assert.Equal(t, "x:6379", cfg.Options().Addr)
}

func TestStore_UpsertGet(t *testing.T) {
	s, mr := setupStore(t, 10*time.Minute)
	ctx := context.Background()
	key := domain.CacheKey{Shop: "a.myshopify.com", DataType: domain.DataTypeVendors}

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Upsert(ctx, row(key.Shop, key.DataType, 15*time.Minute)))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, key, got.Key())
	assert.True(t, got.ExpiresAt.Equal(base.Add(15*time.Minute)))

	// TTL ключа = до истечения + retention
	assert.Equal(t, 25*time.Minute, mr.TTL("t:entry:"+key.String()))

	mr.FastForward(26 * time.Minute)
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ShopIsolationAndDelete(t *testing.T) {
	s, _ := setupStore(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, row("a", domain.DataTypeVendors, time.Minute)))
	require.NoError(t, s.Upsert(ctx, row("a", domain.DataTypeCategories, time.Minute)))
	require.NoError(t, s.Upsert(ctx, row("b", domain.DataTypeVendors, time.Minute)))

	deleted, err := s.Delete(ctx, domain.CacheKey{Shop: "a", DataType: domain.DataTypeVendors})
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, domain.CacheKey{Shop: "a", DataType: domain.DataTypeVendors})
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := s.DeleteShop(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := s.Get(ctx, domain.CacheKey{Shop: "b", DataType: domain.DataTypeVendors})
	require.NoError(t, err)
	assert.NotNil(t, got)

	n, err = s.DeleteShop(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_ListExpiringAndDeleteExpired(t *testing.T) {
	s, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, row("a", domain.DataTypeVendors, 3*time.Minute)))
	require.NoError(t, s.Upsert(ctx, row("a", domain.DataTypeCategories, time.Minute)))
	require.NoError(t, s.Upsert(ctx, row("b", domain.DataTypeVendors, 2*time.Minute)))
	require.NoError(t, s.Upsert(ctx, row("c", domain.DataTypeVendors, time.Hour)))

	rows, err := s.ListExpiring(ctx, base.Add(10*time.Minute), 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].Shop)
	assert.Equal(t, domain.DataTypeCategories, rows[0].DataType)
	assert.Equal(t, "b", rows[1].Shop)

	page, err := s.ListExpiring(ctx, base.Add(10*time.Minute), 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].Shop)

	n, err := s.DeleteExpired(ctx, base.Add(10*time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	rows, err = s.ListExpiring(ctx, base.Add(2*time.Hour), 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c", rows[0].Shop)
}

func TestStore_LastWriteWins(t *testing.T) {
	s, _ := setupStore(t, 0)
	ctx := context.Background()
	key := domain.CacheKey{Shop: "a", DataType: domain.DataTypeScopeCheck}

	first := row("a", key.DataType, time.Minute)
	second := row("a", key.DataType, 5*time.Minute)
	second.Data = []byte(`{"data":true,"timestamp":1,"expiresAt":2}`)

	require.NoError(t, s.Upsert(ctx, first))
	require.NoError(t, s.Upsert(ctx, second))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, string(second.Data), string(got.Data))

	rows, err := s.ListExpiring(ctx, base.Add(time.Hour), 0, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseMember(t *testing.T) {
	k, ok := parseMember("shop.myshopify.com:vendors")
	assert.True(t, ok)
	assert.Equal(t, domain.CacheKey{Shop: "shop.myshopify.com", DataType: domain.DataTypeVendors}, k)

	for _, bad := range []string{"", "novalue", ":vendors", "shop:"} {
		_, ok := parseMember(bad)
		assert.False(t, ok, bad)
	}
}
