package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// события магазина мелкие: короткое ожидание даёт быструю инвалидацию
	defaultMaxWait  = 500 * time.Millisecond
	defaultMaxBytes = 1 << 20
)

// ConsumerConfig — параметры консьюмера событий каталога.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first | last (по умолчанию last)

	// MaxWait — сколько брокер копит события перед ответом на fetch.
	MaxWait  time.Duration
	MaxBytes int

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		MaxWait:        orDefault(c.MaxWait, defaultMaxWait),
		MaxBytes:       defaultMaxBytes,
	}
	if c.MaxBytes > 0 {
		rc.MaxBytes = c.MaxBytes
	}

	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	} else {
		rc.StartOffset = kafka.LastOffset
	}
	return rc
}
