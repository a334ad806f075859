package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// CacheAdmin — служебные операции над кэшем для HTTP и событий.
type CacheAdmin interface {
	Invalidate(ctx context.Context, shop string, dataType domain.DataType) error
	InvalidateShop(ctx context.Context, shop string) error
	GetAllStats() map[string]domain.KeyStats
	ClearStats()
	Expiring(ctx context.Context, before time.Time, limit, offset int) ([]domain.CacheRow, error)
}
