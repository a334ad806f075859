//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/product_wizard/internal/repo/postgres"
)

const (
	postgresImage = "postgres:16-alpine"
	redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
	redisImage    = "redis:7-alpine"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// StopFunc — остановка контейнера и закрытие клиентов.
type StopFunc func(context.Context) error

// lifecycleLog — одна строка лога на каждую фазу жизни контейнера.
func lifecycleLog() tc.ContainerLifecycleHooks {
	phase := func(name string) []tc.ContainerHook {
		return []tc.ContainerHook{func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			tcLogger.Printf("%s id=%.12s", name, id)
			return nil
		}}
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{func(_ context.Context, req tc.ContainerRequest) error {
			tcLogger.Printf("creating image=%s", req.Image)
			return nil
		}},
		PostStarts:     phase("started"),
		PostReadies:    phase("ready"),
		PostTerminates: phase("terminated"),
	}
}

// PGContainer — Postgres со схемой кэша и готовым пулом.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC — поднимает Postgres, накатывает миграции и открывает пул.
func StartPostgresTC(ctx context.Context) (*PGContainer, StopFunc, error) {
	pg, err := postgres.Run(ctx, postgresImage,
		tc.WithLifecycleHooks(lifecycleLog()),
		postgres.WithDatabase("wizard"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}
	fail := func(step string, err error) (*PGContainer, StopFunc, error) {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("%s: %w", step, err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail("conn string", err)
	}
	if _, err := MigrateUp(ctx, dsn); err != nil {
		return fail("migrate", err)
	}
	pool, err := pgrepo.NewPool(ctx, pgrepo.PoolConfig{DSN: dsn, MaxConns: 5})
	if err != nil {
		return fail("pool", err)
	}

	stop := func(context.Context) error {
		pool.Close()
		return tc.TerminateContainer(pg)
	}
	return &PGContainer{Container: pg, Pool: pool, DSN: dsn}, stop, nil
}

// KafkaEnv — Redpanda с Kafka API; BaseTopic — префикс тем теста.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

// StartKafkaTC — поднимает Redpanda с автосозданием тем.
func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, StopFunc, error) {
	rp, err := redpanda.Run(ctx, redpandaImage,
		tc.WithLifecycleHooks(lifecycleLog()),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}
	stop := func(context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}

// RedisEnv — Redis и адрес в формате go-redis Options.Addr.
type RedisEnv struct {
	Container *tcredis.RedisContainer
	Addr      string
}

// StartRedisTC — поднимает Redis без персистентности.
func StartRedisTC(ctx context.Context) (*RedisEnv, StopFunc, error) {
	rc, err := tcredis.Run(ctx, redisImage, tc.WithLifecycleHooks(lifecycleLog()))
	if err != nil {
		return nil, nil, fmt.Errorf("run redis: %w", err)
	}

	addr, err := rc.Endpoint(ctx, "")
	if err != nil {
		_ = tc.TerminateContainer(rc)
		return nil, nil, fmt.Errorf("redis endpoint: %w", err)
	}
	stop := func(context.Context) error { return tc.TerminateContainer(rc) }
	return &RedisEnv{Container: rc, Addr: addr}, stop, nil
}
