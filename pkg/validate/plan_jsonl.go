package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/product_wizard/internal/ports"
)

const (
	maxLineBytes = 10 << 20
	maxRejected  = 20
)

// Handler — обработка одного валидного запроса; результат печатается строкой JSON.
type Handler func(ctx context.Context, in *PlanInput) (any, error)

// LineError — отклонённая строка входа (нумерация с 1).
type LineError struct {
	Line int
	Err  error
}

// Summary — итог пакетной обработки. Rejected хранит только первые ошибки.
type Summary struct {
	Valid    int
	Invalid  int
	Rejected []LineError
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

func (s *Summary) reject(line int, err error) {
	s.Invalid++
	if len(s.Rejected) < maxRejected {
		s.Rejected = append(s.Rejected, LineError{Line: line, Err: err})
	}
}

// ProcessJSONLStream — по запросу на строку; невалидные строки учитываются и пропускаются,
// ошибка handle или записи прерывает обработку.
func ProcessJSONLStream(
	ctx context.Context,
	validator ports.VariantRequestValidator,
	r io.Reader,
	w io.Writer,
	handle Handler,
) (Summary, error) {
	var sum Summary
	enc := json.NewEncoder(w)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		in, err := DecodeRequestJSON(ctx, validator, raw)
		if err != nil {
			sum.reject(line, err)
			continue
		}
		if err := emit(ctx, enc, in, handle); err != nil {
			return sum, fmt.Errorf("line %d: %w", line, err)
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}

func emit(ctx context.Context, enc *json.Encoder, in *PlanInput, handle Handler) error {
	out, err := handle(ctx, in)
	if err != nil {
		return fmt.Errorf("plan product=%s: %w", in.ProductID, err)
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write result product=%s: %w", in.ProductID, err)
	}
	return nil
}
