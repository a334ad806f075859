package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
)

// PlanInput — запрос мастера плюс уже существующие варианты (для офлайн-планирования).
type PlanInput struct {
	domain.VariantRequest
	Existing []domain.ExistingVariant `json:"existing,omitempty"`
}

// DecodeRequestJSON — строгий разбор PlanInput из JSON и его валидация.
func DecodeRequestJSON(ctx context.Context, validator ports.VariantRequestValidator, raw []byte) (*PlanInput, error) {
	var in PlanInput
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidRequest, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidRequest)
	}
	if err := validator.Validate(ctx, &in.VariantRequest); err != nil {
		return nil, err
	}
	if err := NormalizeRequest(&in.VariantRequest); err != nil {
		return nil, err
	}
	return &in, nil
}
