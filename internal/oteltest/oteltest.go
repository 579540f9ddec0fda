// Package oteltest provides testing utilities for OpenTelemetry tracing.
// It includes an in-memory span exporter and helpers for verifying span
// structure in unit tests.
package oteltest

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	attr "go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Setup sets up otel tracing for testing (no sampling, sync, stores spans in memory)
// and returns a Tracer and an Exporter that can be used to flush the spans.
func Setup(t *testing.T) (oteltrace.Tracer, *Exporter) {
	t.Helper()

	// setup otel to be fully synchronous
	exporter := tracetest.NewInMemoryExporter()
	processor := sdktrace.NewSimpleSpanProcessor(exporter)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
	)
	tracer := tp.Tracer(t.Name())

	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Errorf("Error shutting down tracer provider: %v", err)
		}
	})

	return tracer, &Exporter{exporter: exporter, t: t}
}

// SetupGlobal is like Setup but also installs the tracer provider globally,
// for code paths that fall back to otel.Tracer.
func SetupGlobal(t *testing.T) *Exporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Errorf("Error shutting down tracer provider: %v", err)
		}
		otel.SetTracerProvider(original)
	})

	return &Exporter{exporter: exporter, t: t}
}

// Exporter is a wrapper around the OTel InMemoryExporter that provides some
// helper functions for testing.
type Exporter struct {
	exporter *tracetest.InMemoryExporter
	t        *testing.T
}

// Flush returns the spans buffered in memory.
func (e *Exporter) Flush() []Span {
	stubs := e.exporter.GetSpans()
	e.exporter.Reset()

	spans := make([]Span, len(stubs))
	for i, span := range stubs {
		spans[i] = Span{t: e.t, Stub: span}
	}
	return spans
}

// Span is a wrapper around the OTel SpanStub with some helpful testing functions.
type Span struct {
	t    *testing.T
	Stub tracetest.SpanStub
}

// Name returns the span's name.
func (s Span) Name() string {
	return s.Stub.Name
}

// Attrs returns the span's attributes as a map.
func (s Span) Attrs() map[attr.Key]attr.Value {
	out := make(map[attr.Key]attr.Value, len(s.Stub.Attributes))
	for _, kv := range s.Stub.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

// HasEvent reports whether the span recorded an event with the given name.
func (s Span) HasEvent(name string) bool {
	for _, ev := range s.Stub.Events {
		if ev.Name == name {
			return true
		}
	}
	return false
}
