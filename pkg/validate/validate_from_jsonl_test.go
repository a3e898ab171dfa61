package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/greeting_processor/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewGreetingValidator()

	line1 := oneLineJSONL(minimalValidGreetingJSON("11111111-1111-1111-1111-111111111111", "2024-01-01T12:00:00"))
	line2 := oneLineJSONL(minimalValidGreetingJSON("bad-id", "2024-01-01T12:00:00"))
	line3 := "" // пустая строка — ок
	line4 := oneLineJSONL(minimalValidGreetingJSON("33333333-3333-3333-3333-333333333333", "2024-01-02T08:30:00.5"))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if len(res.Invalid) != 1 || res.Invalid[0].Line != 2 {
		t.Fatalf("unexpected invalid lines: %+v", res.Invalid)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var g1, g2 domain.Greeting
	if err := json.Unmarshal([]byte(outLines[0]), &g1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &g2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	if g1.MessageID.String() != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("unexpected id in output: %s", g1.MessageID)
	}
	if g2.Created.String() != "2024-01-02T08:30:00.5" {
		t.Fatalf("unexpected created in output: %s", g2.Created)
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()
	validator := NewGreetingValidator()

	bigMessage := strings.Repeat("X", 200_000) // > 64KB
	raw := `{"id":"3fa85f64-5717-4562-b3fc-2c963f66afa6","to":"Bob","from":"Alice","heading":"Hi",` +
		`"message":"` + bigMessage + `","created":"2024-01-01T12:00:00"}`

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(raw+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if strings.Count(strings.TrimSpace(out.String()), "\n")+1 != 1 {
		t.Fatalf("expected 1 output line")
	}
}

func TestValidateJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := oneLineJSONL(minimalValidGreetingJSON("3fa85f64-5717-4562-b3fc-2c963f66afa6", "2024-01-01T12:00:00"))
	var out bytes.Buffer
	_, err := ValidateJSONLStream(ctx, NewGreetingValidator(), strings.NewReader(input), &out)
	if err == nil {
		t.Fatalf("expected context error")
	}
}

// ------ функции-помощники ------

func oneLineJSONL(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
