//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

// migrationsDir — <repo>/migrations относительно этого файла.
func migrationsDir() (string, error) {
	_, thisFile, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations")
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return "", fmt.Errorf("migrations dir %q not found", dir)
	}
	return dir, nil
}

// MigrateUp — накатывает схему кэша; возвращает число применённых миграций.
func MigrateUp(ctx context.Context, dsn string) (int, error) {
	dir, err := migrationsDir()
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		tcLogger.Printf("migrated %s in %s", r.Source.Path, r.Duration)
	}
	return len(results), nil
}
