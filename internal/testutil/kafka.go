//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — тема и группа консьюмера, не пересекающиеся между тестами.
func UniqueTopicAndGroup(base string) (topic, group string) {
	topic = base + "-" + UniqSuffix()
	return topic, topic + "-wizard"
}

// EnsureTopic — создаёт тему с одной партицией и ждёт её в метаданных.
// broker принимает "host:port", "PLAINTEXT://host:port" и списки через запятую.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(bootstrapAddr(broker)), Timeout: 5 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if terr := resp.Errors[topic]; terr != nil && !errors.Is(terr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, terr)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for {
		meta, merr := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if merr == nil && len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, errors.Join(ctx.Err(), merr))
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// Publish — пишет сообщения в тему с ключом shop (порядок в пределах магазина).
func Publish(ctx context.Context, brokers []string, topic, shop string, values ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(values))
	for _, v := range values {
		msgs = append(msgs, kafka.Message{Key: []byte(shop), Value: v})
	}
	return w.WriteMessages(ctx, msgs...)
}

// bootstrapAddr — первый адрес bootstrap-строки без схемы.
func bootstrapAddr(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if u, err := url.Parse(first); err == nil && u.Host != "" {
		return u.Host
	}
	return first
}
