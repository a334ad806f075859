package ports

import (
	"context"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// CatalogAPI — постраничное чтение товаров магазина (Shopify Admin API).
type CatalogAPI interface {
	ProductsPage(ctx context.Context, shop string, first int, after string) (*domain.CatalogPage, error)
}

// CatalogReader — сервис чтения справочников каталога.
type CatalogReader interface {
	List(ctx context.Context, shop string, dataType domain.DataType) (domain.CatalogList, error)
	WarmUp(ctx context.Context, shop string) error
}
