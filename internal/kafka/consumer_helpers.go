package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/product_wizard/pkg/metrics"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

// handleMessage — обработка одного события; true → оффсет нужно закоммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidRequest):
		// мусор не ретраим
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid event offset=%d key=%s: %v (skipped)", msg.Offset, msg.Key, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "event processing failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

// commitSafely — ошибка коммита только логируется: сообщение придёт повторно, инвалидация идемпотентна.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff — false, если ctx отменён раньше.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual — половина задержки фиксирована, половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}
