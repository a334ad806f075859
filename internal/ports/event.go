package ports

import (
	"context"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// EventApplier — применение события магазина к кэшу (вебхуки, Kafka).
type EventApplier interface {
	HandleEvent(ctx context.Context, ev domain.CatalogEvent) error
}
