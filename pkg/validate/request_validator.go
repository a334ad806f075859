package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
)

// Проверка, что RequestValidator удовлетворяет порту VariantRequestValidator.
var _ ports.VariantRequestValidator = (*RequestValidator)(nil)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации входных данных.
var ErrInvalidRequest = errors.New("request validation failed")

// MaxVariants — предел вариантов на товар в Admin API.
const MaxVariants = 2048

var weightUnits = map[string]struct{}{
	"GRAMS":     {},
	"KILOGRAMS": {},
	"OUNCES":    {},
	"POUNDS":    {},
}

// RequestValidator — проверка запроса мастера вариантов.
type RequestValidator struct {
	maxVariants int
}

// NewRequestValidator — конструктор. maxVariants <= 0 → MaxVariants.
// Возвращает ErrInvalidRequest (с обёрнутой причиной) при любой проблеме.
func NewRequestValidator(maxVariants int) *RequestValidator {
	if maxVariants <= 0 {
		maxVariants = MaxVariants
	}
	return &RequestValidator{maxVariants: maxVariants}
}

// Validate — опции, число комбинаций, цены и вес.
func (v *RequestValidator) Validate(_ context.Context, req *domain.VariantRequest) error {
	if req == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidRequest)
	}
	if err := v.validateOptions(req.Options); err != nil {
		return err
	}
	for i := range req.Pricing {
		if err := validateInput(&req.Pricing[i], i); err != nil {
			return err
		}
	}
	return nil
}

// validateOptions — хотя бы одна опция, у каждой хотя бы одно значение;
// имена уникальны и не пусты, значения уникальны в пределах опции.
// Товар без опций не проходит через мастер вариантов.
func (v *RequestValidator) validateOptions(options []domain.Option) error {
	if len(options) == 0 {
		return fmt.Errorf("%w: нужна хотя бы одна опция", ErrInvalidRequest)
	}
	names := make(map[string]struct{}, len(options))
	total := 1
	for i, opt := range options {
		name := strings.TrimSpace(opt.Name)
		if name == "" {
			return fmt.Errorf("%w: options[%d].name обязателен", ErrInvalidRequest, i)
		}
		if _, dup := names[strings.ToLower(name)]; dup {
			return fmt.Errorf("%w: опция %q повторяется", ErrInvalidRequest, name)
		}
		names[strings.ToLower(name)] = struct{}{}

		if len(opt.Values) == 0 {
			return fmt.Errorf("%w: у опции %q нет значений", ErrInvalidRequest, name)
		}
		seen := make(map[string]struct{}, len(opt.Values))
		for j, value := range opt.Values {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%w: options[%d].values[%d] пустое", ErrInvalidRequest, i, j)
			}
			if _, dup := seen[value]; dup {
				return fmt.Errorf("%w: значение %q опции %q повторяется", ErrInvalidRequest, value, name)
			}
			seen[value] = struct{}{}
		}

		total *= len(opt.Values)
		if total > v.maxVariants {
			return fmt.Errorf("%w: больше %d комбинаций", ErrInvalidRequest, v.maxVariants)
		}
	}
	return nil
}

// validateInput — денежные поля и вес: неотрицательные десятичные.
func validateInput(in *domain.VariantInput, idx int) error {
	money := []struct {
		field string
		value string
	}{
		{"price", in.Price},
		{"compareAtPrice", in.CompareAtPrice},
		{"cost", in.Cost},
		{"weight", in.Weight},
	}
	for _, m := range money {
		if strings.TrimSpace(m.value) == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(m.value))
		if err != nil {
			return fmt.Errorf("%w: pricing[%d].%s некорректно: %q", ErrInvalidRequest, idx, m.field, m.value)
		}
		if d.IsNegative() {
			return fmt.Errorf("%w: pricing[%d].%s должно быть неотрицательным", ErrInvalidRequest, idx, m.field)
		}
	}
	if unit := strings.TrimSpace(in.WeightUnit); unit != "" {
		if _, ok := weightUnits[strings.ToUpper(unit)]; !ok {
			return fmt.Errorf("%w: pricing[%d].weightUnit неизвестна: %q", ErrInvalidRequest, idx, unit)
		}
	}
	return nil
}

// NormalizeMoney — денежная строка в виде с двумя знаками ("10" → "10.00"); пустая остаётся пустой.
func NormalizeMoney(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q не число", ErrInvalidRequest, s)
	}
	return d.StringFixed(2), nil
}

// NormalizeRequest — приводит цены и единицы веса к каноническому виду. Вызывать после Validate.
func NormalizeRequest(req *domain.VariantRequest) error {
	for i := range req.Pricing {
		in := &req.Pricing[i]
		for _, field := range []*string{&in.Price, &in.CompareAtPrice, &in.Cost} {
			norm, err := NormalizeMoney(*field)
			if err != nil {
				return err
			}
			*field = norm
		}
		in.WeightUnit = strings.ToUpper(strings.TrimSpace(in.WeightUnit))
	}
	return nil
}
