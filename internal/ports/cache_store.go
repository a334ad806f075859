package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// CacheStore — постоянное хранилище записей кэша, одна строка на (shop, dataType).
// Требования к реализации: потокобезопасность; upsert атомарен по ключу; возврат копий строк.
type CacheStore interface {
	// Get — строка по ключу; (nil, nil), если строки нет.
	Get(ctx context.Context, key domain.CacheKey) (*domain.CacheRow, error)

	// Upsert — вставить или заменить строку (last write wins).
	Upsert(ctx context.Context, row *domain.CacheRow) error

	// Delete — удалить строку; false, если её не было.
	Delete(ctx context.Context, key domain.CacheKey) (bool, error)

	// DeleteShop — удалить все строки магазина, вернуть их число.
	DeleteShop(ctx context.Context, shop string) (int64, error)

	// ListExpiring — строки с expires_at < before, по возрастанию expires_at.
	ListExpiring(ctx context.Context, before time.Time, limit, offset int) ([]domain.CacheRow, error)

	// DeleteExpired — удалить строки с expires_at < before, вернуть их число.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
