package shopify

import (
	"context"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// MaxPageSize — максимум first для соединений Admin API.
const MaxPageSize = 250

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type productsPageData struct {
	Products struct {
		Nodes []struct {
			Vendor      string `json:"vendor"`
			ProductType string `json:"productType"`
			Category    *struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"nodes"`
		PageInfo pageInfo `json:"pageInfo"`
	} `json:"products"`
}

// ProductsPage — одна страница товаров; first приводится к [1, 250].
func (c *Client) ProductsPage(ctx context.Context, shop string, first int, after string) (*domain.CatalogPage, error) {
	vars := map[string]any{"first": clampFirst(first)}
	if after != "" {
		vars["after"] = after
	}

	var data productsPageData
	if err := c.Execute(ctx, shop, "products_page", productsPageQuery, vars, &data); err != nil {
		return nil, err
	}

	page := &domain.CatalogPage{
		Products:    make([]domain.CatalogProduct, 0, len(data.Products.Nodes)),
		HasNextPage: data.Products.PageInfo.HasNextPage,
		EndCursor:   data.Products.PageInfo.EndCursor,
	}
	for _, n := range data.Products.Nodes {
		p := domain.CatalogProduct{Vendor: n.Vendor, ProductType: n.ProductType}
		if n.Category != nil {
			p.Category = n.Category.Name
		}
		page.Products = append(page.Products, p)
	}
	return page, nil
}

func clampFirst(first int) int {
	if first <= 0 || first > MaxPageSize {
		return MaxPageSize
	}
	return first
}
