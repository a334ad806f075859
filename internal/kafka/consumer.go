package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет порту приложения.
var _ ports.MessageConsumer = (*Consumer)(nil)

const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// reader — минимальный контракт над kafka.Reader (подменяется моками в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageHandler — разбор события каталога и инвалидация кэша.
type messageHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}

// Consumer — чтение событий каталога из Kafka с семантикой at-least-once.
type Consumer struct {
	reader         reader
	handler        messageHandler
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор; нулевые таймауты заменяются значениями по умолчанию.
func NewConsumer(cfg *ConsumerConfig, handler messageHandler, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		handler:        handler,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, defaultProcessTimeout),
		retryInitial:   orDefault(cfg.RetryInitial, defaultRetryInitial),
		retryMax:       orDefault(cfg.RetryMax, defaultRetryMax),
		// рассинхронизирует backoff между инстансами
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — цикл чтения до отмены ctx:
// обработано или невалидно → коммит; временная ошибка → без коммита (повтор);
// ошибка FetchMessage → экспоненциальный backoff с jitter.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "catalog events consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial
	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
			continue
		}
		// пауза перед повтором, чтобы не долбить упавшее хранилище
		_ = c.sleepWithBackoff(ctx, c.withJitterEqual(min(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close — закрывает reader; повторные вызовы безопасны.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

func orDefault(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}
