package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/product_wizard/internal/ports"
)

// InputFormat — формат входного файла.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// StdinPath — путь, означающий чтение из stdin.
const StdinPath = "-"

// ParseFormat — значение флага -format.
func ParseFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatJSONL:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unsupported format %q: want auto|json|jsonl", s)
	}
}

// resolveFormat — auto по расширению; stdin читается построчно.
func resolveFormat(path string, f InputFormat) InputFormat {
	if f != FormatAuto {
		return f
	}
	if path == StdinPath || strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ProcessFile — один JSON-запрос или поток JSONL из файла (или stdin при path == "-").
func ProcessFile(
	ctx context.Context,
	validator ports.VariantRequestValidator,
	path string,
	format InputFormat,
	w io.Writer,
	handle Handler,
) (Summary, error) {
	var r io.Reader = os.Stdin
	if path != StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return Summary{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	switch resolveFormat(path, format) {
	case FormatJSONL:
		return ProcessJSONLStream(ctx, validator, r, w, handle)
	case FormatJSON:
		return processSingle(ctx, validator, r, w, handle)
	default:
		return Summary{}, fmt.Errorf("unsupported format %q", format)
	}
}

func processSingle(
	ctx context.Context,
	validator ports.VariantRequestValidator,
	r io.Reader,
	w io.Writer,
	handle Handler,
) (Summary, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxLineBytes+1))
	if err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}
	if len(raw) > maxLineBytes {
		return Summary{}, fmt.Errorf("%w: input exceeds %d bytes", ErrInvalidRequest, maxLineBytes)
	}

	var sum Summary
	in, err := DecodeRequestJSON(ctx, validator, raw)
	if err != nil {
		sum.reject(1, err)
		return sum, err
	}
	if err := emit(ctx, json.NewEncoder(w), in, handle); err != nil {
		return sum, err
	}
	sum.Valid = 1
	return sum, nil
}
