// Package cache — кодек записей кэша и сборщики статистики попаданий.
// Хранилища живут в подпакетах memory и redis, а также в repo/postgres.
package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCorruptEntry — запись не является корректным конвертом.
var ErrCorruptEntry = errors.New("corrupt cache entry")

// Envelope — конверт записи: payload + время записи и истечения (epoch ms).
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	ExpiresAt int64           `json:"expiresAt"`
}

// WrittenAt — время записи.
func (e Envelope) WrittenAt() time.Time { return time.UnixMilli(e.Timestamp) }

// Expiry — время истечения.
func (e Envelope) Expiry() time.Time { return time.UnixMilli(e.ExpiresAt) }

// Encode — оборачивает data в конверт {timestamp: now, expiresAt: now+ttl}.
// Возвращает байты конверта и момент истечения для колонки expires_at.
func Encode(data any, now time.Time, ttl time.Duration) ([]byte, time.Time, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("marshal payload: %w", err)
	}
	expiresAt := now.Add(ttl)
	raw, err := json.Marshal(Envelope{
		Data:      payload,
		Timestamp: now.UnixMilli(),
		ExpiresAt: expiresAt.UnixMilli(),
	})
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("marshal envelope: %w", err)
	}
	return raw, time.UnixMilli(expiresAt.UnixMilli()), nil
}

// Decode — разбирает конверт. Невалидный JSON, отсутствие data/timestamp/expiresAt → ErrCorruptEntry.
func Decode(raw []byte) (Envelope, error) {
	var probe struct {
		Data      json.RawMessage `json:"data"`
		Timestamp *int64          `json:"timestamp"`
		ExpiresAt *int64          `json:"expiresAt"`
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&probe); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	if probe.Timestamp == nil || probe.ExpiresAt == nil || len(probe.Data) == 0 {
		return Envelope{}, fmt.Errorf("%w: missing envelope fields", ErrCorruptEntry)
	}
	return Envelope{Data: probe.Data, Timestamp: *probe.Timestamp, ExpiresAt: *probe.ExpiresAt}, nil
}
