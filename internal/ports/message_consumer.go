package ports

import "context"

// MessageConsumer — источник событий каталога (Kafka), живущий до отмены контекста.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
