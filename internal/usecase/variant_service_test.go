package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports/mocks"
	"github.com/Gunvolt24/product_wizard/internal/usecase"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

const productID = "gid://shopify/Product/42"

func variantRequest() domain.VariantRequest {
	return domain.VariantRequest{
		ProductID: productID,
		Options: []domain.Option{
			{Name: "Size", Values: []string{"M", "S"}},
			{Name: "Color", Values: []string{"Red"}},
		},
		SKUs:    []string{"SKU-S", "SKU-M"},
		Pricing: []domain.VariantInput{{Price: "19.9"}},
	}
}

func TestVariantPlan_UsesExistingVariants(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockVariantGateway(ctrl)

	gw.EXPECT().ExistingVariants(gomock.Any(), shopA, productID).Return([]domain.ExistingVariant{
		{ID: "v-1", SelectedOptions: []domain.OptionValue{{Name: "Color", Value: "Red"}, {Name: "Size", Value: "S"}}},
	}, nil)

	svc := usecase.NewVariantService(gw, validate.NewRequestValidator(0), nil, noopLogger{})
	plan, err := svc.Plan(context.Background(), shopA, variantRequest())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Titles) != 2 || plan.Titles[0] != "S / Red" || plan.Titles[1] != "M / Red" {
		t.Fatalf("unexpected titles: %v", plan.Titles)
	}
	if len(plan.Result.ToUpdate) != 1 || plan.Result.ToUpdate[0].ID != "v-1" || plan.Result.ToUpdate[0].SKU != "SKU-S" {
		t.Fatalf("unexpected updates: %+v", plan.Result.ToUpdate)
	}
	if len(plan.Result.ToCreate) != 1 || plan.Result.ToCreate[0].Price != "19.90" || plan.Result.ToCreate[0].SKU != "SKU-M" {
		t.Fatalf("unexpected creates: %+v", plan.Result.ToCreate)
	}
}

func TestVariantPlan_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockVariantGateway(ctrl)
	validator := mocks.NewMockVariantRequestValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.VariantRequest{})).Return(validate.ErrInvalidRequest)
	gw.EXPECT().ExistingVariants(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewVariantService(gw, validator, nil, noopLogger{})
	if _, err := svc.Plan(context.Background(), shopA, variantRequest()); !errors.Is(err, validate.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}

	req := variantRequest()
	req.ProductID = ""
	if _, err := svc.Plan(context.Background(), shopA, req); !errors.Is(err, validate.ErrInvalidRequest) {
		t.Fatalf("missing product id must be invalid, got %v", err)
	}
}

func TestVariantSync_WritesBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockVariantGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().ExistingVariants(gomock.Any(), shopA, productID).Return([]domain.ExistingVariant{
			{ID: "v-1", SelectedOptions: []domain.OptionValue{{Name: "Size", Value: "S"}, {Name: "Color", Value: "Red"}}},
		}, nil),
		gw.EXPECT().BulkUpdate(gomock.Any(), shopA, productID, gomock.Len(1)).Return(nil, nil),
		gw.EXPECT().BulkCreate(gomock.Any(), shopA, productID, gomock.Len(1)).
			Return([]domain.UserError{{Field: []string{"variants", "0", "sku"}, Message: "SKU taken"}}, nil),
	)

	svc := usecase.NewVariantService(gw, validate.NewRequestValidator(0), nil, noopLogger{})
	res, err := svc.Sync(context.Background(), shopA, variantRequest())
	if err != nil {
		t.Fatalf("user errors are not a failure: %v", err)
	}
	if res.Updated != 1 || res.Created != 0 || len(res.CreateUserErrors) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestVariantSync_UpdateUserErrorsSkipCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockVariantGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().ExistingVariants(gomock.Any(), shopA, productID).Return([]domain.ExistingVariant{
			{ID: "v-1", SelectedOptions: []domain.OptionValue{{Name: "Size", Value: "S"}, {Name: "Color", Value: "Red"}}},
		}, nil),
		gw.EXPECT().BulkUpdate(gomock.Any(), shopA, productID, gomock.Len(1)).
			Return([]domain.UserError{{Field: []string{"variants", "0", "price"}, Message: "Price is invalid"}}, nil),
	)
	// BulkCreate не ожидается: gomock упадёт на лишнем вызове

	svc := usecase.NewVariantService(gw, validate.NewRequestValidator(0), nil, noopLogger{})
	res, err := svc.Sync(context.Background(), shopA, variantRequest())
	if err != nil {
		t.Fatalf("user errors are not a failure: %v", err)
	}
	if !res.CreateSkipped || res.Updated != 0 || res.Created != 0 || len(res.UpdateUserErrors) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Plan.Result.ToCreate) != 1 {
		t.Fatalf("plan must still list the pending create: %+v", res.Plan.Result)
	}
}

func TestVariantSync_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockVariantGateway(ctrl)

	gw.EXPECT().ExistingVariants(gomock.Any(), shopA, productID).Return(nil, nil)
	gw.EXPECT().BulkCreate(gomock.Any(), shopA, productID, gomock.Len(2)).Return(nil, domain.ErrUpstream)

	svc := usecase.NewVariantService(gw, validate.NewRequestValidator(0), nil, noopLogger{})
	if _, err := svc.Sync(context.Background(), shopA, variantRequest()); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}
