package ports

import "github.com/Gunvolt24/product_wizard/internal/domain"

// StatsCollector — приёмник событий попадания/промаха по ключу "shop:dataType".
type StatsCollector interface {
	RecordHit(key string)
	RecordMiss(key string)
}

// StatsReporter — сборщик, умеющий отдавать накопленное.
type StatsReporter interface {
	StatsCollector
	HitRate(key string) float64
	Snapshot() map[string]domain.KeyStats
	Reset()
}
