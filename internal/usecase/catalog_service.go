package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/internal/variant"
)

const (
	// DefaultPageSize — максимум товаров на страницу в Admin API.
	DefaultPageSize = 250
	// maxCatalogPages — защита от бесконечной пагинации.
	maxCatalogPages = 10_000
	warmUpParallel  = 4
)

// ErrPagination — Admin API вернул некорректный курсор.
var ErrPagination = errors.New("catalog pagination broken")

var _ ports.CatalogReader = (*CatalogService)(nil)

// CatalogService — справочники каталога (vendors/productTypes/categories) через кэш.
type CatalogService struct {
	cache    *CacheService
	api      ports.CatalogAPI
	log      ports.Logger
	sorter   *variant.Sorter
	pageSize int
	group    singleflight.Group
}

// NewCatalogService — DI-конструктор. sorter == nil → таблица размеров по умолчанию.
func NewCatalogService(
	cache *CacheService,
	api ports.CatalogAPI,
	log ports.Logger,
	sorter *variant.Sorter,
	pageSize int,
) *CatalogService {
	if sorter == nil {
		sorter = variant.DefaultSorter()
	}
	if pageSize <= 0 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}
	return &CatalogService{
		cache:    cache,
		api:      api,
		log:      log,
		sorter:   sorter,
		pageSize: pageSize,
	}
}

func (s *CatalogService) Vendors(ctx context.Context, shop string) (domain.CatalogList, error) {
	return s.List(ctx, shop, domain.DataTypeVendors)
}

func (s *CatalogService) ProductTypes(ctx context.Context, shop string) (domain.CatalogList, error) {
	return s.List(ctx, shop, domain.DataTypeProductTypes)
}

func (s *CatalogService) Categories(ctx context.Context, shop string) (domain.CatalogList, error) {
	return s.List(ctx, shop, domain.DataTypeCategories)
}

// List — агрегат из кэша (stale-while-revalidate), при промахе — синхронный пересчёт.
func (s *CatalogService) List(ctx context.Context, shop string, dataType domain.DataType) (domain.CatalogList, error) {
	if shop == "" {
		return domain.CatalogList{}, domain.ErrEmptyShop
	}
	if !dataType.IsCatalog() {
		return domain.CatalogList{}, fmt.Errorf("%w: %q is not a catalog aggregate", domain.ErrUnknownDataType, dataType)
	}

	values, meta, ok := GetAs[[]string](ctx, s.cache, shop, dataType,
		StaleWhileRevalidate(),
		OnStaleData(func(ctx context.Context) error {
			_, err := s.refresh(ctx, shop)
			return err
		}),
	)
	if ok {
		if values == nil {
			values = []string{}
		}
		return domain.CatalogList{DataType: dataType, Values: values, Cache: meta}, nil
	}

	aggs, err := s.refresh(ctx, shop)
	if err != nil {
		return domain.CatalogList{}, err
	}
	return domain.CatalogList{DataType: dataType, Values: aggs[dataType]}, nil
}

// WarmUp — пересчитать все агрегаты магазина и положить их в кэш.
func (s *CatalogService) WarmUp(ctx context.Context, shop string) error {
	if shop == "" {
		return domain.ErrEmptyShop
	}
	_, err := s.refresh(ctx, shop)
	return err
}

// WarmUpShops — прогрев нескольких магазинов параллельно. Первая ошибка отменяет остальных.
func (s *CatalogService) WarmUpShops(ctx context.Context, shops []string) error {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmUpParallel)
	for _, shop := range shops {
		g.Go(func() error {
			if err := s.WarmUp(gctx, shop); err != nil {
				return fmt.Errorf("warm up %s: %w", shop, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Warnf(ctx, "catalog warm-up failed err=%v", err)
		return err
	}
	s.log.Infof(ctx, "catalog warmed shops=%d took=%s", len(shops), time.Since(start))
	return nil
}

// Invalidate — сбросить агрегаты магазина (по умолчанию все три).
func (s *CatalogService) Invalidate(ctx context.Context, shop string, dataTypes ...domain.DataType) error {
	if len(dataTypes) == 0 {
		dataTypes = domain.CatalogDataTypes()
	}
	var errs []error
	for _, dt := range dataTypes {
		if err := s.cache.Invalidate(ctx, shop, dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// refresh — один обход каталога даёт все три агрегата.
// Параллельные обновления одного магазина объединяются. Сам обход отвязан от
// отмены вызывающих и ограничен refreshTimeout; каждый вызывающий ждёт
// результат не дольше своего ctx.
func (s *CatalogService) refresh(ctx context.Context, shop string) (map[domain.DataType][]string, error) {
	ch := s.group.DoChan(shop, func() (any, error) {
		scanCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cache.refreshTimeout)
		defer cancel()

		start := time.Now()
		aggs, err := s.scan(scanCtx, shop)
		if err != nil {
			s.log.Errorf(scanCtx, "catalog scan failed shop=%s err=%v", shop, err)
			return nil, err
		}
		for _, dt := range domain.CatalogDataTypes() {
			if setErr := s.cache.Set(scanCtx, shop, dt, aggs[dt]); setErr != nil {
				s.log.Warnf(scanCtx, "cache.Set failed shop=%s data_type=%s err=%v", shop, dt, setErr)
			}
		}
		s.log.Infof(scanCtx, "catalog refreshed shop=%s vendors=%d product_types=%d categories=%d took=%s",
			shop, len(aggs[domain.DataTypeVendors]), len(aggs[domain.DataTypeProductTypes]),
			len(aggs[domain.DataTypeCategories]), time.Since(start))
		return aggs, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("catalog refresh shop=%s: %w", shop, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.Infof(ctx, "catalog refresh coalesced shop=%s", shop)
		}
		return res.Val.(map[domain.DataType][]string), nil
	}
}

// scan — обход всех страниц товаров; ошибка на любой странице отменяет результат.
func (s *CatalogService) scan(ctx context.Context, shop string) (map[domain.DataType][]string, error) {
	sets := map[domain.DataType]map[string]struct{}{
		domain.DataTypeVendors:      {},
		domain.DataTypeProductTypes: {},
		domain.DataTypeCategories:   {},
	}

	after := ""
	for pages := 0; ; pages++ {
		if pages >= maxCatalogPages {
			return nil, fmt.Errorf("%w: more than %d pages", ErrPagination, maxCatalogPages)
		}
		page, err := s.api.ProductsPage(ctx, shop, s.pageSize, after)
		if err != nil {
			return nil, fmt.Errorf("products page after=%q: %w", after, err)
		}
		if page == nil {
			return nil, fmt.Errorf("%w: empty page", ErrPagination)
		}
		for _, p := range page.Products {
			addValue(sets[domain.DataTypeVendors], p.Vendor)
			addValue(sets[domain.DataTypeProductTypes], p.ProductType)
			addValue(sets[domain.DataTypeCategories], p.Category)
		}
		if !page.HasNextPage {
			break
		}
		if page.EndCursor == "" || page.EndCursor == after {
			return nil, fmt.Errorf("%w: cursor did not advance", ErrPagination)
		}
		after = page.EndCursor
	}

	out := make(map[domain.DataType][]string, len(sets))
	for dt, set := range sets {
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		out[dt] = s.sorter.SmartSort(values)
	}
	return out, nil
}

func addValue(set map[string]struct{}, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	set[v] = struct{}{}
}
