package shopify

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// maxVariantPages — защита от зацикленного курсора (250 × 100 с запасом покрывает лимит вариантов).
const maxVariantPages = 100

type productVariantsData struct {
	Product *struct {
		Variants struct {
			Nodes []struct {
				ID              string               `json:"id"`
				SelectedOptions []domain.OptionValue `json:"selectedOptions"`
			} `json:"nodes"`
			PageInfo pageInfo `json:"pageInfo"`
		} `json:"variants"`
	} `json:"product"`
}

// ExistingVariants — все варианты товара с выбранными опциями.
// Товар не найден → domain.ErrUpstream.
func (c *Client) ExistingVariants(ctx context.Context, shop, productID string) ([]domain.ExistingVariant, error) {
	out := make([]domain.ExistingVariant, 0)
	after := ""
	for page := 0; page < maxVariantPages; page++ {
		vars := map[string]any{"id": productID, "first": MaxPageSize}
		if after != "" {
			vars["after"] = after
		}

		var data productVariantsData
		if err := c.Execute(ctx, shop, "product_variants", productVariantsQuery, vars, &data); err != nil {
			return nil, err
		}
		if data.Product == nil {
			return nil, fmt.Errorf("%w: product %s not found", domain.ErrUpstream, productID)
		}
		for _, n := range data.Product.Variants.Nodes {
			out = append(out, domain.ExistingVariant{ID: n.ID, SelectedOptions: n.SelectedOptions})
		}

		info := data.Product.Variants.PageInfo
		if !info.HasNextPage {
			return out, nil
		}
		if info.EndCursor == "" || info.EndCursor == after {
			return nil, fmt.Errorf("%w: variants cursor did not advance", domain.ErrUpstream)
		}
		after = info.EndCursor
	}
	return nil, fmt.Errorf("%w: more than %d variant pages", domain.ErrUpstream, maxVariantPages)
}

type bulkPayload struct {
	UserErrors []domain.UserError `json:"userErrors"`
}

// BulkUpdate — productVariantsBulkUpdate. Пустой батч не отправляется.
func (c *Client) BulkUpdate(ctx context.Context, shop, productID string, updates []domain.VariantUpdate) ([]domain.UserError, error) {
	if len(updates) == 0 {
		return nil, nil
	}
	inputs := make([]map[string]any, 0, len(updates))
	for _, u := range updates {
		in := variantInput(u.VariantFields)
		in["id"] = u.ID
		inputs = append(inputs, in)
	}

	var data struct {
		Payload bulkPayload `json:"productVariantsBulkUpdate"`
	}
	vars := map[string]any{"productId": productID, "variants": inputs}
	if err := c.Execute(ctx, shop, "variants_bulk_update", variantsBulkUpdateMutation, vars, &data); err != nil {
		return nil, err
	}
	return data.Payload.UserErrors, nil
}

// BulkCreate — productVariantsBulkCreate. Пустой батч не отправляется.
func (c *Client) BulkCreate(ctx context.Context, shop, productID string, creates []domain.VariantCreate) ([]domain.UserError, error) {
	if len(creates) == 0 {
		return nil, nil
	}
	inputs := make([]map[string]any, 0, len(creates))
	for _, cr := range creates {
		in := variantInput(cr.VariantFields)
		opts := make([]map[string]string, 0, len(cr.OptionValues))
		for _, ov := range cr.OptionValues {
			opts = append(opts, map[string]string{"optionName": ov.Name, "name": ov.Value})
		}
		in["optionValues"] = opts
		inputs = append(inputs, in)
	}

	var data struct {
		Payload bulkPayload `json:"productVariantsBulkCreate"`
	}
	vars := map[string]any{"productId": productID, "variants": inputs}
	if err := c.Execute(ctx, shop, "variants_bulk_create", variantsBulkCreateMutation, vars, &data); err != nil {
		return nil, err
	}
	return data.Payload.UserErrors, nil
}

// variantInput — ProductVariantsBulkInput без id/optionValues.
// compareAtPrice, cost и вес не передаются, если не заданы.
func variantInput(f domain.VariantFields) map[string]any {
	in := map[string]any{
		"price":   f.Price,
		"barcode": f.Barcode,
	}
	if f.CompareAtPrice != "" {
		in["compareAtPrice"] = f.CompareAtPrice
	}

	item := map[string]any{"sku": f.SKU}
	if f.Cost != "" {
		item["cost"] = f.Cost
	}
	if f.Weight != nil {
		item["measurement"] = map[string]any{
			"weight": map[string]any{"value": f.Weight.Value, "unit": f.Weight.Unit},
		}
	}
	in["inventoryItem"] = item
	return in
}
