package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations by data type",
		},
		[]string{"data_type", "op"}, // hit|miss|stale|set|invalidate|corrupt
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of rows currently in the in-memory cache store",
		},
	)
	CacheRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_refreshes_total",
			Help: "Background stale-data refreshes",
		},
		[]string{"data_type", "result"}, // ok|error|panic
	)
	CacheExpiredPurged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_expired_purged_total",
			Help: "Expired cache rows removed by the janitor",
		},
	)
)

var (
	ShopifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopify_requests_total",
			Help: "Shopify Admin API calls",
		},
		[]string{"operation", "result"}, // ok|error|user_error
	)
	ShopifyRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shopify_request_duration_seconds",
			Help:    "Shopify Admin API call latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	VariantsReconciled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variants_reconciled_total",
			Help: "Variant combinations routed to update or create",
		},
		[]string{"action"}, // update|create
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в default registry. Повторные вызовы игнорируются.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize, CacheRefreshes, CacheExpiredPurged,
			ShopifyRequests, ShopifyRequestDuration, VariantsReconciled,
		)
	})
}
