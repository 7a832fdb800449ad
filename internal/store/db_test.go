package store_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"

	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	tracetest "go.opentelemetry.io/otel/sdk/trace/tracetest"

	gmap "github.com/blong14/gmem/internal/map/hashmap"
	gstore "github.com/blong14/gmem/internal/store"
)

func TestReader_TableGet(t *testing.T) {
	t.Parallel()
	// given
	k := []byte("key")
	expected := "value"
	v := gstore.New(
		&gstore.TableOpts{
			WithHashMap: func() *gmap.Map[any] {
				impl := gmap.New[any]()
				impl.Set(k, expected)
				return impl
			},
		},
	)

	// when
	actual, ok := v.Get(k)

	// then
	if !ok || actual != expected {
		t.Errorf("want %s got %v", expected, actual)
	}
}

func TestWriter_TraceSetSpanAttributes(t *testing.T) {
	// given: a recording provider installed before the table is built
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(sr)))
	v := gstore.New(&gstore.TableOpts{TableName: []byte("default")})
	tracer, ok := v.(gstore.TableTracer)
	if !ok {
		t.Fatal("table should trace")
	}

	// when
	tracer.TraceSet(context.Background(), []byte("key"), "value")

	// then
	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("want 1 span got %d", len(spans))
	}
	attrs := make(map[string]string)
	for _, attr := range spans[0].Attributes() {
		attrs[string(attr.Key)] = attr.Value.Emit()
	}
	if attrs["table.name"] != "default" {
		t.Errorf("want table name on the span got %q", attrs["table.name"])
	}
	if attrs["key"] != "key" {
		t.Errorf("want key on the span got %q", attrs["key"])
	}
}

func TestWriter_TraceSet(t *testing.T) {
	t.Parallel()
	// given
	v := gstore.New(nil)
	tracer, ok := v.(gstore.TableTracer)
	if !ok {
		t.Fatal("table should trace")
	}

	// when
	isNew := tracer.TraceSet(context.Background(), []byte("key"), "value")

	// then
	if !isNew {
		t.Error("want new key")
	}
	if v.Count() != 1 {
		t.Errorf("want 1 got %d", v.Count())
	}
	actual, ok := v.Get([]byte("key"))
	if !ok || actual != "value" {
		t.Errorf("want value got %v", actual)
	}
}
