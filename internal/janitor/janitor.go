// Package janitor — периодическая очистка давно истёкших записей кэша.
// Истёкшая запись ещё retention отдаётся в режиме stale-while-revalidate, потом удаляется.
package janitor

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
)

// DefaultSpec — расписание по умолчанию.
const DefaultSpec = "@every 5m"

const runTimeout = time.Minute

// Purger — часть хранилища, нужная janitor.
type Purger interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// Janitor — cron-задача DeleteExpired(now - retention).
type Janitor struct {
	store     Purger
	log       ports.Logger
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
}

// New — spec в формате robfig/cron: 5 полей, опционально секунды, дескрипторы (@every 5m).
func New(store Purger, log ports.Logger, retention time.Duration, spec string) (*Janitor, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	if retention < 0 {
		retention = 0
	}

	cl := cronLogger{log: log}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	j := &Janitor{
		store:     store,
		log:       log,
		retention: retention,
		now:       time.Now,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}

	if _, err := j.cron.AddFunc(spec, j.tick); err != nil {
		return nil, fmt.Errorf("janitor schedule %q: %w", spec, err)
	}
	return j, nil
}

// WithClock — источник времени (тесты).
func (j *Janitor) WithClock(now func() time.Time) *Janitor {
	j.now = now
	return j
}

// Start — запуск планировщика (не блокирует).
func (j *Janitor) Start() {
	j.log.Infof(context.Background(), "cache janitor started retention=%s", j.retention)
	j.cron.Start()
}

// Stop — остановить планировщик и дождаться текущего запуска (или ctx).
func (j *Janitor) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		j.log.Warnf(ctx, "cache janitor stop: %v", ctx.Err())
	}
}

// RunOnce — одна очистка; возвращает число удалённых строк.
func (j *Janitor) RunOnce(ctx context.Context) (int64, error) {
	before := j.now().Add(-j.retention)
	n, err := j.store.DeleteExpired(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge expired before %s: %w", before.Format(time.RFC3339), err)
	}
	metrics.CacheExpiredPurged.Add(float64(n))
	return n, nil
}

func (j *Janitor) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	n, err := j.RunOnce(ctx)
	if err != nil {
		j.log.Errorf(ctx, "cache janitor failed: %v", err)
		return
	}
	if n > 0 {
		j.log.Infof(ctx, "cache janitor purged rows=%d took=%s", n, time.Since(start))
	}
}

// cronLogger — cron.Logger поверх ports.Logger.
type cronLogger struct {
	log ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Infof(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorf(context.Background(), "cron: %s err=%v %v", msg, err, keysAndValues)
}
