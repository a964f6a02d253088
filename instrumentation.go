package ecs

// Logger is the scheduler's structured logging sink. Production callers
// wire internal/obslog's zap-backed implementation; tests and examples
// can use noopLogger or their own stub.
type Logger interface {
	Debugw(msg string, kv ...any)
	Infow(msg string, kv ...any)
	Errorw(msg string, kv ...any)
}

// Tracer opens spans around phase-bucket and system execution. Production
// callers wire internal/obstrace's OpenTelemetry-backed implementation.
type Tracer interface {
	StartSpan(name string) Span
}

// Span is the handle returned by Tracer.StartSpan.
type Span interface {
	End()
	SetError(err error)
}

// MetricsCollector records per-run counters and durations. Production
// callers wire internal/obsmetrics's Prometheus-backed implementation.
type MetricsCollector interface {
	ObserveSystemDuration(phase float64, system string, seconds float64)
	IncSystemError(phase float64, system string)
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, kv ...any) {}
func (noopLogger) Infow(msg string, kv ...any)  {}
func (noopLogger) Errorw(msg string, kv ...any) {}

type noopSpan struct{}

func (noopSpan) End()             {}
func (noopSpan) SetError(error)   {}

type noopTracer struct{}

func (noopTracer) StartSpan(name string) Span { return noopSpan{} }

type noopMetrics struct{}

func (noopMetrics) ObserveSystemDuration(phase float64, system string, seconds float64) {}
func (noopMetrics) IncSystemError(phase float64, system string)                        {}
