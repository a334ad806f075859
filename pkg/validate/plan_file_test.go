package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	validLine   = `{"productId":"p-1","options":[{"name":"Size","values":["S","M"]}],"pricing":[{"price":"5"}]}`
	invalidLine = `{"productId":"p-2","options":[{"name":"","values":["S"]}]}`
	unknownLine = `{"productId":"p-3","colour":"red"}`
)

// echo — возвращает продукт и цену первой записи.
func echo(_ context.Context, in *PlanInput) (any, error) {
	return map[string]any{"productId": in.ProductID, "price": in.Pricing[0].Price}, nil
}

func TestProcessFile_JSON_Auto_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	if err := os.WriteFile(path, []byte(validLine), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ProcessFile(context.Background(), NewRequestValidator(0), path, FormatAuto, &out, echo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// цена нормализована до двух знаков
	if got["productId"] != "p-1" || got["price"] != "5.00" {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestProcessFile_JSON_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(invalidLine), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	summary, err := ProcessFile(context.Background(), NewRequestValidator(0), path, FormatAuto, &bytes.Buffer{}, echo)
	if !errors.Is(err, ErrInvalidRequest) || summary.String() != "0 valid / 1 invalid" {
		t.Fatalf("want invalid summary, got %q err=%v", summary, err)
	}
	if len(summary.Rejected) != 1 || summary.Rejected[0].Line != 1 {
		t.Fatalf("want line 1 rejected, got %+v", summary.Rejected)
	}
}

func TestProcessJSONLStream_Mixed(t *testing.T) {
	input := strings.Join([]string{validLine, invalidLine, "", unknownLine, validLine}, "\n")
	var out bytes.Buffer

	res, err := ProcessJSONLStream(context.Background(), NewRequestValidator(0), strings.NewReader(input), &out, echo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid != 2 || res.Invalid != 2 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	// пустая строка 3 пропускается, но нумерация её учитывает
	if len(res.Rejected) != 2 || res.Rejected[0].Line != 2 || res.Rejected[1].Line != 4 {
		t.Fatalf("unexpected rejected lines: %+v", res.Rejected)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestDecodeRequestJSON_TrailingData(t *testing.T) {
	_, err := DecodeRequestJSON(context.Background(), NewRequestValidator(0), []byte(validLine+" {}"))
	if !errors.Is(err, ErrInvalidRequest) || !strings.Contains(err.Error(), "trailing") {
		t.Fatalf("want trailing data error, got %v", err)
	}
}

func TestProcessJSONLStream_HandlerErrorStops(t *testing.T) {
	input := strings.Join([]string{validLine, validLine}, "\n")
	boom := errors.New("boom")
	calls := 0
	fail := func(context.Context, *PlanInput) (any, error) {
		calls++
		return nil, boom
	}

	res, err := ProcessJSONLStream(context.Background(), NewRequestValidator(0), strings.NewReader(input), &bytes.Buffer{}, fail)
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("want handler error with line number, got %v", err)
	}
	if calls != 1 || res.Valid != 0 {
		t.Fatalf("processing must stop at first handler error: calls=%d res=%+v", calls, res)
	}
}

func TestProcessJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ProcessJSONLStream(ctx, NewRequestValidator(0), strings.NewReader(validLine), &bytes.Buffer{}, echo); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]InputFormat{"": FormatAuto, "JSONL": FormatJSONL, " json ": FormatJSON, "auto": FormatAuto} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestResolveFormat(t *testing.T) {
	cases := []struct {
		path string
		in   InputFormat
		want InputFormat
	}{
		{"plans.jsonl", FormatAuto, FormatJSONL},
		{"plans.JSONL", FormatAuto, FormatJSONL},
		{"plan.json", FormatAuto, FormatJSON},
		{StdinPath, FormatAuto, FormatJSONL},
		{StdinPath, FormatJSON, FormatJSON},
	}
	for _, c := range cases {
		if got := resolveFormat(c.path, c.in); got != c.want {
			t.Fatalf("resolveFormat(%q, %q) = %q, want %q", c.path, c.in, got, c.want)
		}
	}
}

func TestProcessFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	if err := os.WriteFile(path, []byte(validLine), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := ProcessFile(context.Background(), NewRequestValidator(0), path, "xml", &bytes.Buffer{}, echo); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
