package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/cache"
	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
	"github.com/Gunvolt24/product_wizard/pkg/routine"
)

const (
	DefaultCacheTTL       = 15 * time.Minute
	DefaultStaleRatio     = 0.8
	DefaultRefreshTimeout = 2 * time.Minute
)

var _ ports.CacheAdmin = (*CacheService)(nil)

// CacheService — кэш справочников магазина поверх постоянного хранилища.
// Запись свежая до ttl*staleRatio, затем устаревшая, после expiresAt — истёкшая.
// Устаревшие и истёкшие данные в режиме stale-while-revalidate отдаются сразу,
// а обновление запускается в фоне.
type CacheService struct {
	store          ports.CacheStore
	stats          ports.StatsCollector
	log            ports.Logger
	runner         *routine.Runner
	ttl            time.Duration
	staleRatio     float64
	refreshTimeout time.Duration
	now            func() time.Time
}

// CacheOption — настройка CacheService.
type CacheOption func(*CacheService)

// WithTTL — срок жизни записей по умолчанию.
func WithTTL(ttl time.Duration) CacheOption {
	return func(s *CacheService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithStaleRatio — доля TTL, после которой запись считается устаревшей (0 < r <= 1).
func WithStaleRatio(r float64) CacheOption {
	return func(s *CacheService) {
		if r > 0 && r <= 1 {
			s.staleRatio = r
		}
	}
}

// WithRefreshTimeout — верхняя граница фонового обновления.
func WithRefreshTimeout(d time.Duration) CacheOption {
	return func(s *CacheService) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

// WithClock — источник времени (тесты).
func WithClock(now func() time.Time) CacheOption {
	return func(s *CacheService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewCacheService — DI-конструктор. stats == nil → статистика не ведётся.
func NewCacheService(
	store ports.CacheStore,
	stats ports.StatsCollector,
	log ports.Logger,
	opts ...CacheOption,
) *CacheService {
	if stats == nil {
		stats = cache.NopStats{}
	}
	s := &CacheService{
		store:          store,
		stats:          stats,
		log:            log,
		runner:         routine.New(log),
		ttl:            DefaultCacheTTL,
		staleRatio:     DefaultStaleRatio,
		refreshTimeout: DefaultRefreshTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheResult — результат чтения. Metadata есть всегда, когда запись найдена и разобрана,
// в том числе при промахе по истечению.
type CacheResult struct {
	Data     json.RawMessage
	Found    bool
	Metadata *domain.CacheMetadata
}

// RefreshFunc — обновление данных ключа; вызывается в фоне со своим контекстом.
type RefreshFunc func(ctx context.Context) error

type getOptions struct {
	swr     bool
	onStale RefreshFunc
}

// GetOption — настройка одного чтения.
type GetOption func(*getOptions)

// StaleWhileRevalidate — отдавать истёкшие данные как попадание.
func StaleWhileRevalidate() GetOption {
	return func(o *getOptions) { o.swr = true }
}

// OnStaleData — вызывается в фоне, если отданные данные устарели или истекли.
func OnStaleData(fn RefreshFunc) GetOption {
	return func(o *getOptions) { o.onStale = fn }
}

// Get — чтение записи (shop, dataType).
// Ошибки хранилища и битые записи считаются промахом: кэш не должен ронять запрос.
func (s *CacheService) Get(ctx context.Context, shop string, dataType domain.DataType, opts ...GetOption) CacheResult {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}

	key := domain.CacheKey{Shop: shop, DataType: dataType}
	statsKey := key.String()

	if err := key.Validate(); err != nil {
		s.log.Warnf(ctx, "cache get rejected key=%s err=%v", statsKey, err)
		s.recordMiss(statsKey)
		return CacheResult{}
	}

	row, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "cache store get failed key=%s err=%v", statsKey, err)
		s.recordMiss(statsKey)
		return CacheResult{}
	}
	if row == nil {
		s.recordMiss(statsKey)
		return CacheResult{}
	}

	env, err := cache.Decode(row.Data)
	if err != nil {
		s.log.Warnf(ctx, "cache entry corrupt key=%s err=%v", statsKey, err)
		metrics.CacheOps.WithLabelValues(dataType.String(), "corrupt").Inc()
		s.recordMiss(statsKey)
		return CacheResult{}
	}

	now := s.now()
	meta := s.metadata(env, now)

	if meta.IsExpired && !o.swr {
		s.recordMiss(statsKey)
		meta.HitRate = s.hitRate(statsKey)
		return CacheResult{Metadata: meta}
	}

	s.recordHit(statsKey)
	meta.HitRate = s.hitRate(statsKey)

	if (meta.IsStale || meta.IsExpired) && o.onStale != nil {
		metrics.CacheOps.WithLabelValues(dataType.String(), "stale").Inc()
		s.refreshInBackground(ctx, key, o.onStale)
	}

	return CacheResult{Data: env.Data, Found: true, Metadata: meta}
}

// GetAs — Get с декодированием payload в T. Payload не в форме T → промах.
func GetAs[T any](
	ctx context.Context,
	s *CacheService,
	shop string,
	dataType domain.DataType,
	opts ...GetOption,
) (T, *domain.CacheMetadata, bool) {
	var zero T
	res := s.Get(ctx, shop, dataType, opts...)
	if !res.Found {
		return zero, res.Metadata, false
	}
	var out T
	if err := json.Unmarshal(res.Data, &out); err != nil {
		s.log.Warnf(ctx, "cache payload decode failed key=%s:%s err=%v", shop, dataType, err)
		return zero, res.Metadata, false
	}
	return out, res.Metadata, true
}

// Set — записать data с TTL (по умолчанию — TTL сервиса). Повторная запись заменяет прежнюю.
func (s *CacheService) Set(ctx context.Context, shop string, dataType domain.DataType, data any, ttl ...time.Duration) error {
	key := domain.CacheKey{Shop: shop, DataType: dataType}
	if err := key.Validate(); err != nil {
		return err
	}

	effective := s.ttl
	if len(ttl) > 0 && ttl[0] > 0 {
		effective = ttl[0]
	}

	now := s.now()
	raw, expiresAt, err := cache.Encode(data, now, effective)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}

	row := &domain.CacheRow{
		Shop:      shop,
		DataType:  dataType,
		Data:      raw,
		ExpiresAt: expiresAt,
		UpdatedAt: now,
	}
	if err := s.store.Upsert(ctx, row); err != nil {
		s.log.Errorf(ctx, "cache store upsert failed key=%s err=%v", key, err)
		return fmt.Errorf("store cache entry %s: %w", key, err)
	}
	metrics.CacheOps.WithLabelValues(dataType.String(), "set").Inc()
	return nil
}

// Invalidate — удалить запись. Отсутствующий ключ — не ошибка.
func (s *CacheService) Invalidate(ctx context.Context, shop string, dataType domain.DataType) error {
	key := domain.CacheKey{Shop: shop, DataType: dataType}
	if err := key.Validate(); err != nil {
		return err
	}
	deleted, err := s.store.Delete(ctx, key)
	if err != nil {
		s.log.Errorf(ctx, "cache store delete failed key=%s err=%v", key, err)
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	if deleted {
		metrics.CacheOps.WithLabelValues(dataType.String(), "invalidate").Inc()
		s.log.Infof(ctx, "cache invalidated key=%s", key)
	}
	return nil
}

// InvalidateShop — удалить все записи магазина.
func (s *CacheService) InvalidateShop(ctx context.Context, shop string) error {
	if shop == "" {
		return domain.ErrEmptyShop
	}
	n, err := s.store.DeleteShop(ctx, shop)
	if err != nil {
		s.log.Errorf(ctx, "cache store delete shop failed shop=%s err=%v", shop, err)
		return fmt.Errorf("invalidate shop %s: %w", shop, err)
	}
	s.log.Infof(ctx, "cache invalidated shop=%s rows=%d", shop, n)
	return nil
}

// Expiring — записи, истекающие до before (админский просмотр).
func (s *CacheService) Expiring(ctx context.Context, before time.Time, limit, offset int) ([]domain.CacheRow, error) {
	return s.store.ListExpiring(ctx, before, limit, offset)
}

// GetAllStats — снимок статистики; пусто, если сборщик не умеет отчитываться.
func (s *CacheService) GetAllStats() map[string]domain.KeyStats {
	if r, ok := s.stats.(ports.StatsReporter); ok {
		return r.Snapshot()
	}
	return map[string]domain.KeyStats{}
}

// ClearStats — сбросить статистику.
func (s *CacheService) ClearStats() {
	if r, ok := s.stats.(ports.StatsReporter); ok {
		r.Reset()
	}
}

// TTL — срок жизни записей по умолчанию.
func (s *CacheService) TTL() time.Duration { return s.ttl }

// Drain — дождаться фоновых обновлений (остановка сервиса, тесты).
func (s *CacheService) Drain(ctx context.Context) bool {
	return s.runner.WaitContext(ctx)
}

func (s *CacheService) metadata(env cache.Envelope, now time.Time) *domain.CacheMetadata {
	age := now.Sub(env.WrittenAt())
	remaining := env.Expiry().Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	// порог считается от срока жизни самой записи: Set с нестандартным ttl устаревает пропорционально
	lifetime := env.Expiry().Sub(env.WrittenAt())
	staleAfter := time.Duration(float64(lifetime) * s.staleRatio)
	return &domain.CacheMetadata{
		IsStale:      age > staleAfter,
		IsExpired:    now.After(env.Expiry()),
		Age:          age,
		RemainingTTL: remaining,
	}
}

// refreshInBackground — запуск обновления вне жизни запроса.
// Контекст отвязан от отмены вызывающего, но ограничен refreshTimeout.
func (s *CacheService) refreshInBackground(ctx context.Context, key domain.CacheKey, fn RefreshFunc) {
	base := context.WithoutCancel(ctx)
	label := key.DataType.String()

	s.runner.Go(base, "cache-refresh:"+key.String(), func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			metrics.CacheRefreshes.WithLabelValues(label, "error").Inc()
			s.log.Warnf(ctx, "background refresh failed key=%s err=%v", key, err)
			return
		}
		metrics.CacheRefreshes.WithLabelValues(label, "ok").Inc()
	}, func(error) {
		metrics.CacheRefreshes.WithLabelValues(label, "panic").Inc()
	})
}

// hit/miss в Prometheus пишет cache.PrometheusStats, если он подключён.
func (s *CacheService) recordHit(key string) { s.stats.RecordHit(key) }

func (s *CacheService) recordMiss(key string) { s.stats.RecordMiss(key) }

func (s *CacheService) hitRate(key string) float64 {
	if r, ok := s.stats.(ports.StatsReporter); ok {
		return r.HitRate(key)
	}
	return 0
}
