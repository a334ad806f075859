package janitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gunvolt24/product_wizard/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type fakePurger struct {
	mu     sync.Mutex
	calls  []time.Time
	result int64
	err    error
}

func (p *fakePurger) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, before)
	return p.result, p.err
}

func (p *fakePurger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func TestRunOnce_UsesRetentionCutoff(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &fakePurger{result: 3}
	j, err := New(p, nopLogger{}, 10*time.Minute, "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	j.WithClock(func() time.Time { return now })

	before := testutil.ToFloat64(metrics.CacheExpiredPurged)
	n, err := j.RunOnce(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("RunOnce = %d, %v", n, err)
	}
	if !p.calls[0].Equal(now.Add(-10 * time.Minute)) {
		t.Fatalf("cutoff = %v", p.calls[0])
	}
	if got := testutil.ToFloat64(metrics.CacheExpiredPurged); got != before+3 {
		t.Fatalf("purged counter = %v, want %v", got, before+3)
	}
}

func TestRunOnce_StoreError(t *testing.T) {
	p := &fakePurger{err: errors.New("db down")}
	j, err := New(p, nopLogger{}, 0, "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := j.RunOnce(context.Background()); err == nil {
		t.Fatalf("store error must surface")
	}
}

func TestNew_InvalidSpec(t *testing.T) {
	if _, err := New(&fakePurger{}, nopLogger{}, 0, "not a cron spec"); err == nil {
		t.Fatalf("expected schedule error")
	}
}

func TestScheduler_RunsAndStops(t *testing.T) {
	p := &fakePurger{}
	j, err := New(p, nopLogger{}, time.Minute, "@every 1s")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	j.Start()

	deadline := time.Now().Add(3 * time.Second)
	for p.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor did not run")
		}
		time.Sleep(50 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Stop(ctx)
}
