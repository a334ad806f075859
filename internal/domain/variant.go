package domain

import "strings"

// Option — одно измерение товара (Size, Color) с упорядоченными значениями.
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// OptionValue — пара (имя опции, значение).
type OptionValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VariantCombination — один элемент декартова произведения опций (в порядке опций).
type VariantCombination struct {
	Values []OptionValue `json:"values"`
}

// Title — отображаемое имя варианта: "S / Red".
func (c VariantCombination) Title() string {
	parts := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		parts = append(parts, v.Value)
	}
	return strings.Join(parts, " / ")
}

// Matches — равенство как неупорядоченных множеств пар (name, value).
func (c VariantCombination) Matches(selected []OptionValue) bool {
	if len(selected) != len(c.Values) {
		return false
	}
	want := make(map[OptionValue]int, len(c.Values))
	for _, v := range c.Values {
		want[v]++
	}
	for _, s := range selected {
		if want[s] == 0 {
			return false
		}
		want[s]--
	}
	return true
}

// ExistingVariant — вариант, уже существующий в Shopify. Только читается.
type ExistingVariant struct {
	ID              string        `json:"id"`
	SelectedOptions []OptionValue `json:"selectedOptions"`
}

// VariantInput — данные одного варианта, собранные по индексу комбинации.
// Пустая строка означает «не задано».
type VariantInput struct {
	SKU            string `json:"sku,omitempty"`
	Barcode        string `json:"barcode,omitempty"`
	Price          string `json:"price,omitempty"`
	CompareAtPrice string `json:"compareAtPrice,omitempty"`
	Cost           string `json:"cost,omitempty"`
	Weight         string `json:"weight,omitempty"`
	WeightUnit     string `json:"weightUnit,omitempty"`
}

// Measurement — вес варианта.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// VariantFields — итоговые поля варианта после цепочки fallback.
// CompareAtPrice и Cost опускаются, если не заданы (не ноль).
type VariantFields struct {
	Price          string       `json:"price"`
	CompareAtPrice string       `json:"compareAtPrice,omitempty"`
	Barcode        string       `json:"barcode"`
	SKU            string       `json:"sku"`
	Cost           string       `json:"cost,omitempty"`
	Weight         *Measurement `json:"weight,omitempty"`
}

// VariantUpdate — обновление существующего варианта.
type VariantUpdate struct {
	ID string `json:"id"`
	VariantFields
}

// VariantCreate — создание нового варианта.
type VariantCreate struct {
	OptionValues []OptionValue `json:"optionValues"`
	VariantFields
}

// ReconciliationResult — разбиение комбинаций на update/create.
type ReconciliationResult struct {
	ToUpdate []VariantUpdate `json:"toUpdate"`
	ToCreate []VariantCreate `json:"toCreate"`
}

// Len — общее число записей (равно числу комбинаций).
func (r ReconciliationResult) Len() int { return len(r.ToUpdate) + len(r.ToCreate) }

// VariantRequest — входные данные мастера: опции и параллельные массивы SKU/штрихкодов/цен.
type VariantRequest struct {
	ProductID string         `json:"productId"`
	Options   []Option       `json:"options"`
	SKUs      []string       `json:"skus,omitempty"`
	Barcodes  []string       `json:"barcodes,omitempty"`
	Pricing   []VariantInput `json:"pricing,omitempty"`
}

// VariantPlan — результат планирования: заголовки комбинаций и батчи.
type VariantPlan struct {
	ProductID string               `json:"productId"`
	Titles    []string             `json:"titles"`
	Result    ReconciliationResult `json:"result"`
}

// UserError — ошибка уровня Admin API (userErrors).
type UserError struct {
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

// SyncResult — итог применения плана.
type SyncResult struct {
	Plan             VariantPlan `json:"plan"`
	Updated          int         `json:"updated"`
	Created          int         `json:"created"`
	UpdateUserErrors []UserError `json:"updateUserErrors,omitempty"`
	CreateUserErrors []UserError `json:"createUserErrors,omitempty"`
	CreateSkipped    bool        `json:"createSkipped,omitempty"`
}
