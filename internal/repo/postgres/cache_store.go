package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
)

// Проверка, что CacheStore удовлетворяет интерфейсу ports.CacheStore.
var _ ports.CacheStore = (*CacheStore)(nil)

// CacheStore — записи кэша в таблице cache_entries (pgxpool).
type CacheStore struct {
	pool *pgxpool.Pool
}

// NewCacheStore — конструктор CacheStore.
func NewCacheStore(pool *pgxpool.Pool) *CacheStore { return &CacheStore{pool: pool} }

// Get — строка по ключу; (nil, nil), если её нет.
func (s *CacheStore) Get(ctx context.Context, key domain.CacheKey) (*domain.CacheRow, error) {
	var row domain.CacheRow
	err := s.pool.QueryRow(ctx, `
		SELECT shop, data_type, data, expires_at, updated_at
		FROM cache_entries
		WHERE shop = $1 AND data_type = $2
	`, key.Shop, string(key.DataType)).Scan(&row.Shop, &row.DataType, &row.Data, &row.ExpiresAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select cache entry %s: %w", key, err)
	}
	return &row, nil
}

// Upsert — атомарная замена строки по (shop, data_type).
func (s *CacheStore) Upsert(ctx context.Context, row *domain.CacheRow) error {
	if row == nil {
		return nil
	}
	updatedAt := row.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO cache_entries (shop, data_type, data, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (shop, data_type) DO UPDATE SET
			data = EXCLUDED.data,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`, row.Shop, string(row.DataType), string(row.Data), row.ExpiresAt, updatedAt); err != nil {
		return fmt.Errorf("upsert cache entry %s: %w", row.Key(), err)
	}
	return nil
}

func (s *CacheStore) Delete(ctx context.Context, key domain.CacheKey) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM cache_entries WHERE shop = $1 AND data_type = $2`,
		key.Shop, string(key.DataType))
	if err != nil {
		return false, fmt.Errorf("delete cache entry %s: %w", key, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *CacheStore) DeleteShop(ctx context.Context, shop string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cache_entries WHERE shop = $1`, shop)
	if err != nil {
		return 0, fmt.Errorf("delete cache entries of %s: %w", shop, err)
	}
	return tag.RowsAffected(), nil
}

// ListExpiring — строки с expires_at < before; при равном сроке порядок по ключу.
func (s *CacheStore) ListExpiring(ctx context.Context, before time.Time, limit, offset int) ([]domain.CacheRow, error) {
	if offset < 0 {
		offset = 0
	}
	// LIMIT NULL = без ограничения
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := s.pool.Query(ctx, `
		SELECT shop, data_type, data, expires_at, updated_at
		FROM cache_entries
		WHERE expires_at < $1
		ORDER BY expires_at ASC, shop ASC, data_type ASC
		LIMIT $2 OFFSET $3
	`, before, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("list expiring: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CacheRow, 0)
	for rows.Next() {
		var r domain.CacheRow
		if err := rows.Scan(&r.Shop, &r.DataType, &r.Data, &r.ExpiresAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cache entry: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *CacheStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cache_entries WHERE expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired: %w", err)
	}
	return tag.RowsAffected(), nil
}
