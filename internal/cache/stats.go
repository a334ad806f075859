package cache

import (
	"strings"
	"sync"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
)

var (
	_ ports.StatsCollector = (*MemoryStats)(nil)
	_ ports.StatsReporter  = (*MemoryStats)(nil)
	_ ports.StatsCollector = NopStats{}
	_ ports.StatsReporter  = (*PrometheusStats)(nil)
)

// MemoryStats — счётчики попаданий/промахов в памяти процесса.
// Только для диагностики: на корректность не влияют, при рестарте обнуляются.
type MemoryStats struct {
	mu    sync.Mutex
	stats map[string]domain.KeyStats
}

// NewMemoryStats — конструктор MemoryStats.
func NewMemoryStats() *MemoryStats {
	return &MemoryStats{stats: make(map[string]domain.KeyStats)}
}

func (m *MemoryStats) RecordHit(key string) {
	m.mu.Lock()
	s := m.stats[key]
	s.Hits++
	m.stats[key] = s
	m.mu.Unlock()
}

func (m *MemoryStats) RecordMiss(key string) {
	m.mu.Lock()
	s := m.stats[key]
	s.Misses++
	m.stats[key] = s
	m.mu.Unlock()
}

// HitRate — доля попаданий по ключу.
func (m *MemoryStats) HitRate(key string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats[key].HitRate()
}

// Snapshot — копия всех счётчиков.
func (m *MemoryStats) Snapshot() map[string]domain.KeyStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]domain.KeyStats, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}

// Reset — обнуляет счётчики.
func (m *MemoryStats) Reset() {
	m.mu.Lock()
	m.stats = make(map[string]domain.KeyStats)
	m.mu.Unlock()
}

// NopStats — ничего не считает.
type NopStats struct{}

func (NopStats) RecordHit(string)  {}
func (NopStats) RecordMiss(string) {}

// PrometheusStats — пишет попадания/промахи в метрики и пробрасывает во внутренний сборщик.
type PrometheusStats struct {
	inner ports.StatsCollector
}

// NewPrometheusStats — inner может быть nil.
func NewPrometheusStats(inner ports.StatsCollector) *PrometheusStats {
	if inner == nil {
		inner = NopStats{}
	}
	return &PrometheusStats{inner: inner}
}

func (p *PrometheusStats) RecordHit(key string) {
	metrics.CacheOps.WithLabelValues(dataTypeLabel(key), "hit").Inc()
	p.inner.RecordHit(key)
}

func (p *PrometheusStats) RecordMiss(key string) {
	metrics.CacheOps.WithLabelValues(dataTypeLabel(key), "miss").Inc()
	p.inner.RecordMiss(key)
}

func (p *PrometheusStats) HitRate(key string) float64 {
	if r, ok := p.inner.(ports.StatsReporter); ok {
		return r.HitRate(key)
	}
	return 0
}

func (p *PrometheusStats) Snapshot() map[string]domain.KeyStats {
	if r, ok := p.inner.(ports.StatsReporter); ok {
		return r.Snapshot()
	}
	return map[string]domain.KeyStats{}
}

func (p *PrometheusStats) Reset() {
	if r, ok := p.inner.(ports.StatsReporter); ok {
		r.Reset()
	}
}

// dataTypeLabel — метка по типу данных, без магазина (иначе кардинальность растёт с числом магазинов).
func dataTypeLabel(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}
