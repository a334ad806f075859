package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/internal/variant"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

var _ ports.VariantPlanner = (*VariantService)(nil)

// VariantService — планирование и применение вариантов товара (без знаний о транспорте).
type VariantService struct {
	gateway   ports.VariantGateway
	validator ports.VariantRequestValidator
	sorter    *variant.Sorter
	log       ports.Logger
}

// NewVariantService — DI-конструктор. sorter == nil → таблица размеров по умолчанию.
func NewVariantService(
	gateway ports.VariantGateway,
	validator ports.VariantRequestValidator,
	sorter *variant.Sorter,
	log ports.Logger,
) *VariantService {
	if sorter == nil {
		sorter = variant.DefaultSorter()
	}
	return &VariantService{gateway: gateway, validator: validator, sorter: sorter, log: log}
}

// Plan — валидация, чтение существующих вариантов, генерация и сверка. Ничего не пишет.
func (s *VariantService) Plan(ctx context.Context, shop string, req domain.VariantRequest) (domain.VariantPlan, error) {
	if shop == "" {
		return domain.VariantPlan{}, domain.ErrEmptyShop
	}
	if req.ProductID == "" {
		return domain.VariantPlan{}, fmt.Errorf("%w: productId обязателен", validate.ErrInvalidRequest)
	}
	if err := s.validator.Validate(ctx, &req); err != nil {
		s.log.Warnf(ctx, "variant request rejected product=%s err=%v", req.ProductID, err)
		return domain.VariantPlan{}, err
	}
	if err := validate.NormalizeRequest(&req); err != nil {
		return domain.VariantPlan{}, err
	}

	existing, err := s.gateway.ExistingVariants(ctx, shop, req.ProductID)
	if err != nil {
		s.log.Errorf(ctx, "gateway.ExistingVariants failed product=%s err=%v", req.ProductID, err)
		return domain.VariantPlan{}, fmt.Errorf("existing variants: %w", err)
	}

	plan := s.sorter.Plan(req, existing)
	metrics.VariantsReconciled.WithLabelValues("update").Add(float64(len(plan.Result.ToUpdate)))
	metrics.VariantsReconciled.WithLabelValues("create").Add(float64(len(plan.Result.ToCreate)))

	s.log.Infof(ctx, "variant plan product=%s combinations=%d update=%d create=%d",
		req.ProductID, len(plan.Titles), len(plan.Result.ToUpdate), len(plan.Result.ToCreate))
	return plan, nil
}

// Sync — Plan и запись батчей. userErrors возвращаются в результате и не считаются ошибкой;
// батч с userErrors считается неприменённым. Если обновления вернули userErrors,
// создание не выполняется (CreateSkipped).
func (s *VariantService) Sync(ctx context.Context, shop string, req domain.VariantRequest) (domain.SyncResult, error) {
	plan, err := s.Plan(ctx, shop, req)
	if err != nil {
		return domain.SyncResult{}, err
	}
	res := domain.SyncResult{Plan: plan}
	start := time.Now()

	if updates := plan.Result.ToUpdate; len(updates) > 0 {
		userErrs, err := s.gateway.BulkUpdate(ctx, shop, plan.ProductID, updates)
		if err != nil {
			s.log.Errorf(ctx, "gateway.BulkUpdate failed product=%s err=%v", plan.ProductID, err)
			return res, fmt.Errorf("bulk update: %w", err)
		}
		res.UpdateUserErrors = userErrs
		if len(userErrs) == 0 {
			res.Updated = len(updates)
		}
	}

	if creates := plan.Result.ToCreate; len(creates) > 0 && len(res.UpdateUserErrors) > 0 {
		res.CreateSkipped = true
		s.log.Warnf(ctx, "variant create skipped product=%s pending=%d: update rejected", plan.ProductID, len(creates))
	} else if len(creates) > 0 {
		userErrs, err := s.gateway.BulkCreate(ctx, shop, plan.ProductID, creates)
		if err != nil {
			s.log.Errorf(ctx, "gateway.BulkCreate failed product=%s err=%v", plan.ProductID, err)
			return res, fmt.Errorf("bulk create: %w", err)
		}
		res.CreateUserErrors = userErrs
		if len(userErrs) == 0 {
			res.Created = len(creates)
		}
	}

	if len(res.UpdateUserErrors)+len(res.CreateUserErrors) > 0 {
		s.log.Warnf(ctx, "variant sync user errors product=%s update=%d create=%d",
			plan.ProductID, len(res.UpdateUserErrors), len(res.CreateUserErrors))
	}
	s.log.Infof(ctx, "variant sync product=%s updated=%d created=%d took=%s",
		plan.ProductID, res.Updated, res.Created, time.Since(start))
	return res, nil
}
