package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "product-wizard"

// PoolConfig — параметры пула соединений к хранилищу кэша.
type PoolConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	// HealthCheck — период фоновой проверки простаивающих соединений.
	HealthCheck time.Duration
	PingTimeout time.Duration
}

// MergeDefaults — копия конфига с заполненными значениями по умолчанию.
func (c PoolConfig) MergeDefaults() PoolConfig {
	if c.MaxConnLifetime == 0 {
		c.MaxConnLifetime = time.Hour
	}
	if c.MaxConnIdleTime == 0 {
		c.MaxConnIdleTime = 30 * time.Minute
	}
	if c.HealthCheck == 0 {
		c.HealthCheck = time.Minute
	}
	if c.PingTimeout == 0 {
		c.PingTimeout = 5 * time.Second
	}
	return c
}

// PgxConfig — разбор DSN и перенос лимитов в формат pgxpool.
// Нулевые MaxConns/MinConns оставляют значения pgx.
func (c PoolConfig) PgxConfig() (*pgxpool.Config, error) {
	if c.DSN == "" {
		return nil, errors.New("postgres: dsn is required")
	}
	if c.MinConns < 0 || c.MaxConns < 0 || (c.MaxConns > 0 && c.MinConns > c.MaxConns) {
		return nil, fmt.Errorf("postgres: bad pool bounds min=%d max=%d", c.MinConns, c.MaxConns)
	}
	cfg, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}
	if c.MaxConns > 0 {
		cfg.MaxConns = c.MaxConns
	}
	if c.MinConns > 0 {
		cfg.MinConns = c.MinConns
	}
	cfg.MaxConnLifetime = c.MaxConnLifetime
	cfg.MaxConnIdleTime = c.MaxConnIdleTime
	cfg.HealthCheckPeriod = c.HealthCheck
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	return cfg, nil
}

// NewPool — пул соединений с проверкой доступности базы при старте.
func NewPool(ctx context.Context, c PoolConfig) (*pgxpool.Pool, error) {
	c = c.MergeDefaults()
	cfg, err := c.PgxConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return pool, nil
}
