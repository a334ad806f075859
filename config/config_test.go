package config_test

import (
	"slices"
	"strings"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/product_wizard/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("WIZARD_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 30*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 25*time.Second || c.HTTP.GracefulTimeout != 10*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled || c.Tracing.ServiceName != "product-wizard" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres / Redis
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 || c.Postgres.MaxConnLifetime != time.Hour || c.Postgres.HealthCheck != time.Minute {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}
	if c.Redis.Addr != "redis:6379" || c.Redis.Prefix != "wizard:" {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka must be disabled by default")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) || c.Kafka.Topic != "shop-events" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != time.Second || c.Kafka.RetryMax != 30*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.Backend != cfg.CacheBackendPostgres || c.Cache.TTL != 15*time.Minute || c.Cache.StaleRatio != 0.8 {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}
	if c.Cache.Retention != 24*time.Hour || c.Cache.JanitorSpec != "@every 5m" || len(c.Cache.WarmUpShops) != 0 {
		t.Fatalf("Cache maintenance defaults wrong: %+v", c.Cache)
	}

	// Shopify
	if c.Shopify.APIVersion != "2024-10" || c.Shopify.PageSize != 250 || len(c.Shopify.Tokens) != 0 {
		t.Fatalf("Shopify defaults wrong: %+v", c.Shopify)
	}

	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "WIZARD_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")
	t.Setenv(p+"_REDIS_ADDR", "cache:6380")
	t.Setenv(p+"_REDIS_DB", "3")
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_START_OFFSET", "first")
	t.Setenv(p+"_CACHE_BACKEND", "redis")
	t.Setenv(p+"_CACHE_TTL", "30m")
	t.Setenv(p+"_CACHE_STALE_RATIO", "0.5")
	t.Setenv(p+"_CACHE_WARM_UP_SHOPS", "a.myshopify.com,b.myshopify.com")
	t.Setenv(p+"_SHOPIFY_TOKENS", "a.myshopify.com:shpat_a,b.myshopify.com:shpat_b")
	t.Setenv(p+"_SHOPIFY_WEBHOOK_SECRET", "s3cret")
	t.Setenv(p+"_VARIANT_SIZE_TABLE_FILE", "/etc/wizard/sizes.yaml")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.HandlerTimeout != 4500*time.Millisecond {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Redis.Addr != "cache:6380" || c.Redis.DB != 3 {
		t.Fatalf("Redis overrides wrong: %+v", c.Redis)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) || c.Kafka.StartOffset != "first" {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.Backend != "redis" || c.Cache.TTL != 30*time.Minute || c.Cache.StaleRatio != 0.5 {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if !slices.Equal(c.Cache.WarmUpShops, []string{"a.myshopify.com", "b.myshopify.com"}) {
		t.Fatalf("WarmUpShops override wrong: %v", c.Cache.WarmUpShops)
	}
	if c.Shopify.Tokens["b.myshopify.com"] != "shpat_b" || len(c.Shopify.Tokens) != 2 || c.Shopify.WebhookSecret != "s3cret" {
		t.Fatalf("Shopify overrides wrong: %+v", c.Shopify)
	}
	if c.Variant.SizeTableFile != "/etc/wizard/sizes.yaml" || !c.Logger.IsProd {
		t.Fatalf("Variant/Logger overrides wrong: %+v %+v", c.Variant, c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "WIZARD_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}

func TestLoadWithPrefix_ValidateRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"backend", "_CACHE_BACKEND", "sqlite"},
		{"stale_ratio_zero", "_CACHE_STALE_RATIO", "0"},
		{"stale_ratio_above_one", "_CACHE_STALE_RATIO", "1.5"},
		{"ttl", "_CACHE_TTL", "0s"},
		{"sample_ratio", "_TRACING_OTEL_SAMPLE_RATIO", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := "WIZARD_TEST_VALIDATE_" + strings.ToUpper(tt.name)
			t.Setenv(p+tt.key, tt.value)
			if _, err := cfg.LoadWithPrefix(p); err == nil {
				t.Fatalf("expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadWithPrefix_KafkaEnabledNeedsTopic(t *testing.T) {
	p := "WIZARD_TEST_KAFKA"
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_TOPIC", "")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected validation error for enabled kafka without topic")
	}
}
