package ports

import (
	"context"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// VariantGateway — чтение и массовая запись вариантов товара.
type VariantGateway interface {
	ExistingVariants(ctx context.Context, shop, productID string) ([]domain.ExistingVariant, error)
	BulkUpdate(ctx context.Context, shop, productID string, updates []domain.VariantUpdate) ([]domain.UserError, error)
	BulkCreate(ctx context.Context, shop, productID string, creates []domain.VariantCreate) ([]domain.UserError, error)
}

// VariantRequestValidator — проверка запроса мастера до обращения к Shopify.
type VariantRequestValidator interface {
	Validate(ctx context.Context, req *domain.VariantRequest) error
}

// VariantPlanner — сервис построения и применения плана вариантов.
type VariantPlanner interface {
	Plan(ctx context.Context, shop string, req domain.VariantRequest) (domain.VariantPlan, error)
	Sync(ctx context.Context, shop string, req domain.VariantRequest) (domain.SyncResult, error)
}
