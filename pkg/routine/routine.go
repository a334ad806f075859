// Package routine — запуск горутин с перехватом паники.
// Паника в фоновой задаче логируется и не роняет процесс.
package routine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
)

// Logger — то, что нужно пакету от логгера.
type Logger interface {
	Errorf(ctx context.Context, format string, args ...any)
}

// ErrPanic — паника, превращённая в ошибку.
func ErrPanic(recovered any) error {
	return fmt.Errorf("routine: panic recovered: %v", recovered)
}

// Runner — запускает именованные задачи и умеет дождаться их завершения.
type Runner struct {
	log Logger
	wg  sync.WaitGroup
}

// New — конструктор Runner.
func New(log Logger) *Runner {
	return &Runner{log: log}
}

// Go — запускает fn(ctx) в отдельной горутине; onPanic (может быть nil) вызывается после перехвата.
func (r *Runner) Go(ctx context.Context, name string, fn func(ctx context.Context), onPanic func(err error)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer recoverWithLog(ctx, r.log, name, onPanic)
		fn(ctx)
	}()
}

// Wait — ждёт все задачи, запущенные через этот Runner.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// WaitContext — как Wait, но не дольше жизни ctx. false, если не дождались.
func (r *Runner) WaitContext(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

func recoverWithLog(ctx context.Context, log Logger, name string, onPanic func(err error)) {
	rec := recover()
	if rec == nil {
		return
	}
	if log != nil {
		log.Errorf(ctx, "goroutine panicked routine=%s panic=%v stack=%s", name, rec, debug.Stack())
	}
	if onPanic != nil {
		onPanic(ErrPanic(rec))
	}
}
