//go:build integration

package testutil

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/product_wizard/internal/cache"
	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// UniqSuffix — короткий уникальный суффикс для имён магазинов/топиков.
func UniqSuffix() string { return uuid.NewString()[:12] }

// MakeShop — уникальный домен магазина.
func MakeShop() string { return "itest-" + UniqSuffix() + ".myshopify.com" }

// MakeCacheRow — строка кэша с валидным конвертом; ttl < 0 даёт уже истёкшую запись.
func MakeCacheRow(shop string, dt domain.DataType, data any, ttl time.Duration) domain.CacheRow {
	now := time.Now().UTC().Truncate(time.Millisecond)
	raw, expiresAt, err := cache.Encode(data, now, ttl)
	if err != nil {
		panic(err)
	}
	return domain.CacheRow{
		Shop:      shop,
		DataType:  dt,
		Data:      raw,
		ExpiresAt: expiresAt,
		UpdatedAt: now,
	}
}

// MakeInvalidationEvent — сообщение вебхука/топика в формате domain.CatalogEvent.
func MakeInvalidationEvent(shop, topic string, dts ...domain.DataType) []byte {
	b, err := json.Marshal(domain.CatalogEvent{Shop: shop, Topic: topic, DataTypes: dts})
	if err != nil {
		panic(err)
	}
	return b
}
