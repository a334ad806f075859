// Package redis — хранилище записей кэша в Redis (общий кэш для нескольких инстансов).
//
// Раскладка ключей (prefix по умолчанию "wizard:"):
//
//	{prefix}entry:{shop}:{dataType}  строка (JSON CacheRow), TTL = до expiresAt + retention
//	{prefix}expiry                   ZSET "{shop}:{dataType}" → expiresAt в мс
//	{prefix}shop:{shop}              SET типов данных магазина
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
)

var _ ports.CacheStore = (*Store)(nil)

// minKeyTTL — нижняя граница TTL ключа: 0 в SET означает «без срока».
const minKeyTTL = time.Second

// Store — ports.CacheStore поверх go-redis.
type Store struct {
	rdb       goredis.UniversalClient
	prefix    string
	retention time.Duration
	now       func() time.Time
}

// NewClient — клиент с проверкой соединения (fail-fast, как и пул Postgres).
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.MergeDefaults()
	rdb := goredis.NewClient(cfg.Options())
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewStore — retention: сколько истёкшая запись ещё хранится для stale-while-revalidate.
func NewStore(rdb goredis.UniversalClient, prefix string, retention time.Duration) *Store {
	if retention < 0 {
		retention = 0
	}
	return &Store{rdb: rdb, prefix: prefix, retention: retention, now: time.Now}
}

// WithClock — источник времени (тесты).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Get(ctx context.Context, key domain.CacheKey) (*domain.CacheRow, error) {
	raw, err := s.rdb.Get(ctx, s.entryKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	var row domain.CacheRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return &row, nil
}

func (s *Store) Upsert(ctx context.Context, row *domain.CacheRow) error {
	if row == nil {
		return nil
	}
	key := row.Key()
	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}

	ttl := row.ExpiresAt.Sub(s.now()) + s.retention
	if ttl < minKeyTTL {
		ttl = minKeyTTL
	}

	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, s.entryKey(key), raw, ttl)
		p.ZAdd(ctx, s.expiryKey(), goredis.Z{Score: float64(row.ExpiresAt.UnixMilli()), Member: key.String()})
		p.SAdd(ctx, s.shopKey(key.Shop), string(key.DataType))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis upsert %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key domain.CacheKey) (bool, error) {
	var del *goredis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		del = p.Del(ctx, s.entryKey(key))
		p.ZRem(ctx, s.expiryKey(), key.String())
		p.SRem(ctx, s.shopKey(key.Shop), string(key.DataType))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis delete %s: %w", key, err)
	}
	return del.Val() > 0, nil
}

func (s *Store) DeleteShop(ctx context.Context, shop string) (int64, error) {
	types, err := s.rdb.SMembers(ctx, s.shopKey(shop)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis shop members %s: %w", shop, err)
	}
	if len(types) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(types))
	members := make([]any, 0, len(types))
	for _, dt := range types {
		k := domain.CacheKey{Shop: shop, DataType: domain.DataType(dt)}
		keys = append(keys, s.entryKey(k))
		members = append(members, k.String())
	}

	var del *goredis.IntCmd
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		del = p.Del(ctx, keys...)
		p.ZRem(ctx, s.expiryKey(), members...)
		p.Del(ctx, s.shopKey(shop))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis delete shop %s: %w", shop, err)
	}
	return del.Val(), nil
}

// ListExpiring — по индексу expiry; строки, уже вытесненные Redis по TTL, пропускаются.
func (s *Store) ListExpiring(ctx context.Context, before time.Time, limit, offset int) ([]domain.CacheRow, error) {
	count := int64(-1)
	if limit > 0 {
		count = int64(limit)
	}
	members, err := s.rdb.ZRangeByScore(ctx, s.expiryKey(), &goredis.ZRangeBy{
		Min:    "-inf",
		Max:    "(" + scoreOf(before),
		Offset: int64(offset),
		Count:  count,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list expiring: %w", err)
	}
	if len(members) == 0 {
		return []domain.CacheRow{}, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		k, ok := parseMember(m)
		if !ok {
			continue
		}
		keys = append(keys, s.entryKey(k))
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	rows := make([]domain.CacheRow, 0, len(vals))
	for _, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var row domain.CacheRow
		if err := json.Unmarshal([]byte(str), &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DeleteExpired — удаляет строки и чистит индексы; возвращает число снятых с индекса записей.
func (s *Store) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	maxScore := "(" + scoreOf(before)
	members, err := s.rdb.ZRangeByScore(ctx, s.expiryKey(), &goredis.ZRangeBy{Min: "-inf", Max: maxScore}).Result()
	if err != nil {
		return 0, fmt.Errorf("redis scan expired: %w", err)
	}
	if len(members) == 0 {
		return 0, nil
	}

	var removed *goredis.IntCmd
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		for _, m := range members {
			k, ok := parseMember(m)
			if !ok {
				continue
			}
			p.Del(ctx, s.entryKey(k))
			p.SRem(ctx, s.shopKey(k.Shop), string(k.DataType))
		}
		removed = p.ZRemRangeByScore(ctx, s.expiryKey(), "-inf", maxScore)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis delete expired: %w", err)
	}
	return removed.Val(), nil
}

func (s *Store) entryKey(k domain.CacheKey) string { return s.prefix + "entry:" + k.String() }

func (s *Store) expiryKey() string { return s.prefix + "expiry" }

func (s *Store) shopKey(shop string) string { return s.prefix + "shop:" + shop }

func scoreOf(t time.Time) string { return fmt.Sprintf("%d", t.UnixMilli()) }

// parseMember — "{shop}:{dataType}"; тип данных двоеточий не содержит.
func parseMember(m string) (domain.CacheKey, bool) {
	i := strings.LastIndexByte(m, ':')
	if i <= 0 || i == len(m)-1 {
		return domain.CacheKey{}, false
	}
	return domain.CacheKey{Shop: m[:i], DataType: domain.DataType(m[i+1:])}, true
}
