package variant

import (
	"strconv"
	"strings"

	"github.com/Gunvolt24/product_wizard/internal/domain"
)

// DefaultPrice — цена, если её нет ни у варианта, ни в базовой записи.
const DefaultPrice = "0.00"

// Zip — собирает записи по индексу комбинации из параллельных массивов мастера.
// Отсутствующие элементы остаются пустыми и закрываются fallback-цепочкой в Reconcile.
func Zip(skus, barcodes []string, pricing []domain.VariantInput, n int) []domain.VariantInput {
	inputs := make([]domain.VariantInput, n)
	for i := range inputs {
		if i < len(pricing) {
			inputs[i] = pricing[i]
		}
		if i < len(skus) {
			inputs[i].SKU = skus[i]
		}
		if i < len(barcodes) {
			inputs[i].Barcode = barcodes[i]
		}
	}
	return inputs
}

// BaseInput — базовая запись ("base pricing") — pricing[0], если есть.
func BaseInput(pricing []domain.VariantInput) domain.VariantInput {
	if len(pricing) == 0 {
		return domain.VariantInput{}
	}
	return pricing[0]
}

// Reconcile — делит комбинации на обновление существующих и создание новых.
// Поле i-й комбинации: inputs[i] → base → значение по умолчанию.
// inputs короче combos — не ошибка, недостающее берётся из base.
func Reconcile(
	combos []domain.VariantCombination,
	existing []domain.ExistingVariant,
	inputs []domain.VariantInput,
	base domain.VariantInput,
) domain.ReconciliationResult {
	result := domain.ReconciliationResult{
		ToUpdate: []domain.VariantUpdate{},
		ToCreate: []domain.VariantCreate{},
	}

	for i, combo := range combos {
		var own domain.VariantInput
		if i < len(inputs) {
			own = inputs[i]
		}
		fields := resolveFields(own, base)

		if match := findExisting(combo, existing); match != nil {
			result.ToUpdate = append(result.ToUpdate, domain.VariantUpdate{ID: match.ID, VariantFields: fields})
			continue
		}

		values := make([]domain.OptionValue, len(combo.Values))
		copy(values, combo.Values)
		result.ToCreate = append(result.ToCreate, domain.VariantCreate{OptionValues: values, VariantFields: fields})
	}
	return result
}

// ApplyCreates — список вариантов после применения ToCreate (имитация записи).
func ApplyCreates(existing []domain.ExistingVariant, creates []domain.VariantCreate, newID func(i int) string) []domain.ExistingVariant {
	out := make([]domain.ExistingVariant, 0, len(existing)+len(creates))
	out = append(out, existing...)
	for i, c := range creates {
		selected := make([]domain.OptionValue, len(c.OptionValues))
		copy(selected, c.OptionValues)
		out = append(out, domain.ExistingVariant{ID: newID(i), SelectedOptions: selected})
	}
	return out
}

func findExisting(combo domain.VariantCombination, existing []domain.ExistingVariant) *domain.ExistingVariant {
	for i := range existing {
		if combo.Matches(existing[i].SelectedOptions) {
			return &existing[i]
		}
	}
	return nil
}

func resolveFields(own, base domain.VariantInput) domain.VariantFields {
	fields := domain.VariantFields{
		Price:          firstNonEmpty(own.Price, base.Price, DefaultPrice),
		CompareAtPrice: firstNonEmpty(own.CompareAtPrice, base.CompareAtPrice),
		Barcode:        firstNonEmpty(own.Barcode, base.Barcode),
		SKU:            firstNonEmpty(own.SKU, base.SKU),
		Cost:           firstNonEmpty(own.Cost, base.Cost),
	}

	weight := firstNonEmpty(own.Weight, base.Weight)
	unit := firstNonEmpty(own.WeightUnit, base.WeightUnit)
	if weight != "" && unit != "" {
		if value, err := strconv.ParseFloat(weight, 64); err == nil {
			fields.Weight = &domain.Measurement{Value: value, Unit: unit}
		}
	}
	return fields
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Plan — полный расчёт: комбинации, сборка входов по индексу, сверка с существующими.
func (s *Sorter) Plan(req domain.VariantRequest, existing []domain.ExistingVariant) domain.VariantPlan {
	combos := s.GenerateCombinations(req.Options)
	inputs := Zip(req.SKUs, req.Barcodes, req.Pricing, len(combos))
	return domain.VariantPlan{
		ProductID: req.ProductID,
		Titles:    Titles(combos),
		Result:    Reconcile(combos, existing, inputs, BaseInput(req.Pricing)),
	}
}
