package obstrace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// SigNozOptions configures the OTLP/HTTP exporter pointed at a SigNoz
// collector. SigNoz ingests traces as plain OTLP, so the exporter is just
// otlptracehttp aimed at the collector's endpoint.
type SigNozOptions struct {
	ServiceName string
	Endpoint    string // host:port of the SigNoz OTLP/HTTP receiver, e.g. "ingest.signoz.cloud:443"
	Insecure    bool
	Headers     map[string]string // e.g. {"signoz-ingestion-key": "..."}
}

// NewSigNozExporter builds an otlptracehttp.Exporter targeting opts.Endpoint.
func NewSigNozExporter(ctx context.Context, opts SigNozOptions) (sdktrace.SpanExporter, error) {
	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}
	if len(opts.Headers) > 0 {
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(opts.Headers))
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("obstrace: signoz exporter: %w", err)
	}
	return exporter, nil
}

// NewSigNozTracerProvider wires a batching TracerProvider around the OTLP
// exporter, tagged with opts.ServiceName (defaulting to "ecs-scheduler" to
// match the teacher's default).
func NewSigNozTracerProvider(ctx context.Context, opts SigNozOptions) (*sdktrace.TracerProvider, error) {
	if opts.ServiceName == "" {
		opts.ServiceName = "ecs-scheduler"
	}
	exporter, err := NewSigNozExporter(ctx, opts)
	if err != nil {
		return nil, err
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(opts.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("obstrace: signoz resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}
