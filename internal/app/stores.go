package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/product_wizard/config"
	cachemem "github.com/Gunvolt24/product_wizard/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/product_wizard/internal/cache/redis"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/internal/repo/postgres"
	"github.com/Gunvolt24/product_wizard/internal/variant"
)

// newCacheStore — хранилище кэша по cfg.Cache.Backend и функция его закрытия.
func newCacheStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.CacheStore, func(), error) {
	switch strings.ToLower(cfg.Cache.Backend) {
	case config.CacheBackendPostgres:
		pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
			DSN:             cfg.Postgres.DSN,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
			HealthCheck:     cfg.Postgres.HealthCheck,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("postgres pool: %w", err)
		}
		log.Infof(ctx, "cache backend=postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewCacheStore(pool), pool.Close, nil

	case config.CacheBackendRedis:
		rcfg := cacheredis.Config{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Prefix:   cfg.Redis.Prefix,
		}.MergeDefaults()
		rdb, err := cacheredis.NewClient(ctx, rcfg)
		if err != nil {
			return nil, nil, err
		}
		log.Infof(ctx, "cache backend=redis addr=%s db=%d", rcfg.Addr, rcfg.DB)
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				log.Warnf(context.Background(), "redis close: %v", err)
			}
		}
		return cacheredis.NewStore(rdb, rcfg.Prefix, cfg.Cache.Retention), closeFn, nil

	case config.CacheBackendMemory:
		log.Infof(ctx, "cache backend=memory capacity=%d", cfg.Cache.Capacity)
		return cachemem.NewStore(cfg.Cache.Capacity, cfg.Cache.Retention), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// newSorter — справочник размеров из файла или встроенный.
func newSorter(ctx context.Context, path string, log ports.Logger) (*variant.Sorter, error) {
	if path == "" {
		return variant.DefaultSorter(), nil
	}
	table, err := variant.LoadSizeTable(path)
	if err != nil {
		return nil, err
	}
	log.Infof(ctx, "size table loaded path=%s clothing=%d", path, len(table.ClothingOrder))
	return variant.NewSorter(table), nil
}
