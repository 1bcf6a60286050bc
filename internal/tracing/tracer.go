// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	jaegerPropagator "go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/canonical/chatterfix"

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer installs a global tracer provider according to the passed config.
// The gRPC OTLP endpoint wins over the HTTP one, with a stdout exporter as
// the fallback for local development.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)

	if !cfg.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		t.tracer = otel.Tracer(tracerName)

		return t
	}

	exporter, err := newExporter(context.Background(), cfg)

	if err != nil {
		cfg.Logger.Errorf("error creating otlp exporter, disabling tracing: %s", err)

		otel.SetTracerProvider(noop.NewTracerProvider())
		t.tracer = otel.Tracer(tracerName)

		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceName("chatterfix"),
			),
		),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaegerPropagator.Jaeger{},
		),
	)

	t.tracer = provider.Tracer(tracerName)

	return t
}

func newExporter(ctx context.Context, cfg *Config) (sdktrace.SpanExporter, error) {
	if cfg.OtelGRPCEndpoint != "" {
		return otlptrace.New(
			ctx,
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
	}

	if cfg.OtelHTTPEndpoint != "" {
		return otlptrace.New(
			ctx,
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
	}

	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
