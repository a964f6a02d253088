// Package obstrace adapts OpenTelemetry tracing to ecs.Tracer/ecs.Span,
// grounded in the teacher's SigNozSpanExporter (observability.go) but
// wired to the real otel SDK/exporter instead of a hand-rolled JSON writer.
package obstrace

import (
	"context"

	"github.com/kestrel-runtime/ecs"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an otel trace.Tracer to satisfy ecs.Tracer.
type Tracer struct {
	tracer trace.Tracer
	ctx    context.Context
}

// New wraps an otel tracer. ctx is the background context spans are
// started from; the scheduler's phase-bucket spans are leaf spans with no
// caller-supplied context of their own.
func New(ctx context.Context, t trace.Tracer) *Tracer {
	return &Tracer{tracer: t, ctx: ctx}
}

func (t *Tracer) StartSpan(name string) ecs.Span {
	_, span := t.tracer.Start(t.ctx, name)
	return &Span{span: span}
}

// Span wraps an otel trace.Span to satisfy ecs.Span.
type Span struct {
	span trace.Span
}

func (s *Span) End() { s.span.End() }

func (s *Span) SetError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}
