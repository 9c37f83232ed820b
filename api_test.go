package lensmeta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/reoring/lensmeta"
	js "github.com/reoring/lensmeta/jsonschema"
)

// evenSchema accepts even ints, normalizes them to their half and refuses
// zero in its Refine hook.
type evenSchema struct{}

func (evenSchema) Parse(ctx context.Context, v any) (int, error) {
	n, ok := v.(int)
	if !ok {
		return 0, lensmeta.Issues{{Code: lensmeta.CodeInvalidType, Message: "Expected number"}}
	}
	if n%2 != 0 {
		return 0, errors.New("odd")
	}
	return n, nil
}

func (evenSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

func (evenSchema) Normalize(ctx context.Context, v int) (int, error) { return v / 2, nil }

func (evenSchema) Refine(ctx context.Context, v int) error {
	if v == 0 {
		return errors.New("zero")
	}
	return nil
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	var s lensmeta.Schema[int] = evenSchema{}

	ok := lensmeta.Validate(ctx, s, 4)
	if !ok.Success() || ok.Value != 4 || ok.Err() != nil {
		t.Fatalf("unexpected result: %+v", ok)
	}

	bad := lensmeta.Validate(ctx, s, "x")
	if bad.Success() || bad.Issues[0].Code != lensmeta.CodeInvalidType {
		t.Fatalf("unexpected result: %+v", bad)
	}
	if _, isIssues := lensmeta.AsIssues(bad.Err()); !isIssues {
		t.Fatal("Err should return Issues")
	}

	odd := lensmeta.Validate(ctx, s, 3)
	if odd.Issues[0].Code != lensmeta.CodeParseError || odd.Issues[0].Message != "odd" {
		t.Fatalf("plain errors should become parse_error: %+v", odd.Issues)
	}
}

func TestSafeParseAndIs(t *testing.T) {
	ctx := context.Background()
	var s lensmeta.Schema[int] = evenSchema{}
	if v, ok := lensmeta.SafeParse(ctx, s, 2); !ok || v != 2 {
		t.Fatalf("SafeParse = %v %v", v, ok)
	}
	if v, ok := lensmeta.SafeParse(ctx, s, 3); ok || v != 0 {
		t.Fatalf("SafeParse = %v %v", v, ok)
	}
	if lensmeta.Is(ctx, s, "x") || !lensmeta.Is(ctx, s, 8) {
		t.Fatal("Is disagrees with Parse")
	}
}

func TestHooks(t *testing.T) {
	ctx := context.Background()
	var s lensmeta.Schema[int] = evenSchema{}
	v, err := lensmeta.ApplyNormalize(ctx, 8, s)
	if err != nil || v != 4 {
		t.Fatalf("ApplyNormalize = %v %v", v, err)
	}
	if err := lensmeta.ApplyRefine(ctx, 0, s); err == nil {
		t.Fatal("ApplyRefine should call Refine")
	}
}

func TestFailFastContext(t *testing.T) {
	ctx := context.Background()
	if lensmeta.IsFailFast(ctx) {
		t.Fatal("fail-fast should be off by default")
	}
	if !lensmeta.IsFailFast(lensmeta.WithFailFast(ctx, true)) {
		t.Fatal("WithFailFast(true) not visible")
	}
	if lensmeta.IsFailFast(lensmeta.WithFailFast(lensmeta.WithFailFast(ctx, true), false)) {
		t.Fatal("inner WithFailFast(false) should win")
	}
}
