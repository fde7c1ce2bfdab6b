package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"todos/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.Get")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"todo.id":    int64(4),
		"todo.title": "buy milk",
		"complete":   true,
		"priority":   3,
		"tags":       []string{"a"},
		"other":      1.5,
	})
	scope.AddEvent("Todo retrieved")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	ended := spans[0]
	assert.Equal(t, "service.Get", ended.Name())
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Len(t, ended.Attributes(), 6)
	assert.Len(t, ended.Events(), 2, "one custom event plus the recorded error")
}

func TestScope_AttributeTypes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "handler.CreateTodo")
	scope := otel.NewScope(span)

	owner := int64(7)

	scope.SetAttribute("owner", &owner)
	scope.SetAttribute("anonymous", (*int64)(nil))
	scope.SetAttribute("ratio", 0.5)
	scope.SetAttribute("ttl", 90*time.Second)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	got := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "7", got["owner"])
	assert.Empty(t, got["anonymous"])
	assert.Equal(t, "0.5", got["ratio"])
	assert.Equal(t, "1m30s", got["ttl"])
}
