package ctxutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 42)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string for wrong type, got %s", got)
	}
}

func TestLogger_AddsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestID(context.Background(), "req-abc")
	Logger(ctx, base).Info("hello")

	if !strings.Contains(buf.String(), "request_id=req-abc") {
		t.Fatalf("expected request_id in output, got %q", buf.String())
	}
}

func TestLogger_NoRequestID(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if got := Logger(context.Background(), base); got != base {
		t.Fatal("expected base logger to be returned unchanged")
	}
}
