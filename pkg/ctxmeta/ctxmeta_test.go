package ctxmeta

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	got, ok := RequestIDFromContext(ctx)
	if !ok || got != "req-1" {
		t.Fatalf("want req-1, got %q ok=%v", got, ok)
	}
}

func TestRequestID_EmptyIgnored(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatalf("empty request id must not be stored")
	}
}

func TestRequestID_MissingFromBareContext(t *testing.T) {
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Fatalf("bare context must not carry request id")
	}
}

func TestTraceID_NoActiveSpan(t *testing.T) {
	if _, ok := TraceIDFromContext(context.Background()); ok {
		t.Fatalf("no span: trace id must be absent")
	}
	if _, ok := SpanIDFromContext(context.Background()); ok {
		t.Fatalf("no span: span id must be absent")
	}
}
