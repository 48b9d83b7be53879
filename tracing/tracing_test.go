package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"hashpix_backend/services"
)

func TestInit_EmptyOutputIsNoop(t *testing.T) {
	assert.NoError(t, Init("hashpix", "test", ""))
}

func TestInitWithExporter_RecordsAvatarSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("hashpix", "test", exporter))
	t.Cleanup(func() { _ = Shutdown(context.Background()) })

	svc := services.NewAvatarService()
	_, err := svc.Generate(context.Background(), "a")
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "avatar.generate", spans[0].Name)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, int64(97), attrs["avatar.digest"].AsInt64())
	assert.Equal(t, int64(1), attrs["avatar.attempts"].AsInt64())
	assert.True(t, attrs["avatar.in_band"].AsBool())
	assert.False(t, attrs["avatar.placeholder"].AsBool())
}
