package ecs

import (
	"context"
	"time"
)

// Canonical phase boundaries, per spec §4.5. Phase keys must satisfy
// 0 <= phase < 4; user systems are free to register anywhere in that
// range, but these four values are the ones App drives directly.
const (
	PhaseStart = 0.0
	PhaseTick  = 1.0
	PhaseEnd   = 2.0
	PhaseExit  = 3.0
)

// Scheduler owns the resource store and the phase-ordered system table.
// It is the single mutable root of an application's ECS state; World,
// CommandBuffer and every event queue live inside it as ordinary
// resources (§3).
type Scheduler struct {
	resources *ResourceStore
	phases    *PhaseMap
	events    []ageable
	table     *AccessTable

	logger  Logger
	tracer  Tracer
	metrics MetricsCollector

	pool *workerPool
}

// SchedulerBuilder configures a Scheduler before first use, mirroring the
// teacher's builder-style construction for optional dependencies.
type SchedulerBuilder struct {
	logger   Logger
	tracer   Tracer
	metrics  MetricsCollector
	parallel int
}

// NewSchedulerBuilder starts a builder with no-op instrumentation and
// strictly sequential phase-bucket execution.
func NewSchedulerBuilder() *SchedulerBuilder {
	return &SchedulerBuilder{
		logger:  noopLogger{},
		tracer:  noopTracer{},
		metrics: noopMetrics{},
	}
}

// WithLogger overrides the structured logging sink.
func (b *SchedulerBuilder) WithLogger(l Logger) *SchedulerBuilder {
	if l != nil {
		b.logger = l
	}
	return b
}

// WithTracer overrides the span tracer.
func (b *SchedulerBuilder) WithTracer(t Tracer) *SchedulerBuilder {
	if t != nil {
		b.tracer = t
	}
	return b
}

// WithMetrics overrides the metrics collector.
func (b *SchedulerBuilder) WithMetrics(m MetricsCollector) *SchedulerBuilder {
	if m != nil {
		b.metrics = m
	}
	return b
}

// WithParallelism enables concurrent invocation of every system within a
// single phase bucket once all of that bucket's systems have declared
// their accesses without conflict (§9 design notes: the access table
// already proves no aliasing exists across a validated bucket). workers
// <= 1 keeps the default sequential behaviour.
func (b *SchedulerBuilder) WithParallelism(workers int) *SchedulerBuilder {
	b.parallel = workers
	return b
}

// InstrumentationConfig configures logging, tracing, and metrics sinks in
// one call, mirroring the teacher's InstrumentationConfig/ObservationSettings
// pair (api.go) and extended with a ParallelExecution toggle per §9's
// design notes on opt-in same-phase concurrency.
type InstrumentationConfig struct {
	Logger            Logger
	Tracer            Tracer
	Metrics           MetricsCollector
	Observation       ObservationSettings
	ParallelExecution int
}

// ObservationSettings toggles which of InstrumentationConfig's sinks are
// actually wired in, the way the teacher's ObservationSettings gates each
// observer behind an Enable* flag rather than a nil check alone.
type ObservationSettings struct {
	EnableStructuredLogging bool
	EnableTracing           bool
	EnableMetrics           bool
}

// WithInstrumentation applies a whole InstrumentationConfig at once. Each
// sink is only swapped in when its ObservationSettings flag is set, so a
// config built for one concern (say, tracing) doesn't silently reset the
// others back to their no-op defaults.
func (b *SchedulerBuilder) WithInstrumentation(cfg InstrumentationConfig) *SchedulerBuilder {
	if cfg.Observation.EnableStructuredLogging {
		b.WithLogger(cfg.Logger)
	}
	if cfg.Observation.EnableTracing {
		b.WithTracer(cfg.Tracer)
	}
	if cfg.Observation.EnableMetrics {
		b.WithMetrics(cfg.Metrics)
	}
	return b.WithParallelism(cfg.ParallelExecution)
}

// Build constructs the Scheduler.
func (b *SchedulerBuilder) Build() *Scheduler {
	return &Scheduler{
		resources: NewResourceStore(),
		phases:    NewPhaseMap(),
		table:     NewAccessTable(),
		logger:    b.logger,
		tracer:    b.tracer,
		metrics:   b.metrics,
		pool:      newWorkerPool(b.parallel),
	}
}

// NewScheduler builds a Scheduler with default (sequential, no-op
// instrumentation) settings.
func NewScheduler() *Scheduler {
	return NewSchedulerBuilder().Build()
}

// Close releases the scheduler's worker pool, if one was built.
func (s *Scheduler) Close() {
	s.pool.Close()
}

// AddSystem registers sys at the given phase key. A NaN or out-of-range
// phase is a programmer error and aborts the process with a diagnostic,
// matching the original's `assert!(!phase.is_nan() && phase >= 0. && phase < 4.)`.
func (s *Scheduler) AddSystem(phase float64, sys System) {
	if phase != phase || phase < 0 || phase >= 4 {
		panicFatal(ErrInvalidPhase, "", "phase %v out of range [0,4)", phase)
	}
	s.phases.Insert(phase, sys)
}

// AddResource binds value under its own type, replacing any prior binding.
func AddResource[T any](s *Scheduler, value T) {
	insertResource[T](s.resources, value)
}

// RemoveResource unbinds T, if bound.
func RemoveResource[T any](s *Scheduler) {
	removeResource[T](s.resources)
}

// HasResource reports whether T is currently bound.
func HasResource[T any](s *Scheduler) bool {
	return hasResource[T](s.resources)
}

// AddEvent registers E as an event type with an empty, freshly-aged queue.
// Calling it twice for the same E is a no-op: existing events are kept.
func AddEvent[E any](s *Scheduler) {
	if hasResource[EventQueue[E]](s.resources) {
		return
	}
	insertResource[EventQueue[E]](s.resources, EventQueue[E]{})
	q, err := borrowResource[EventQueue[E]](s.resources)
	if err != nil {
		panic(err)
	}
	s.events = append(s.events, q)
}

// GetEventReader returns a reader bound to E's live queue, for use outside
// a system invocation (diagnostics, tests, glue code).
func GetEventReader[E any](s *Scheduler) (EventReader[E], error) {
	q, err := borrowResource[EventQueue[E]](s.resources)
	if err != nil {
		return EventReader[E]{}, missingEventErr[E](err)
	}
	return EventReader[E]{queue: q}, nil
}

// GetEventWriter returns a writer bound to E's live queue.
func GetEventWriter[E any](s *Scheduler) (EventWriter[E], error) {
	q, err := borrowResource[EventQueue[E]](s.resources)
	if err != nil {
		return EventWriter[E]{}, missingEventErr[E](err)
	}
	return EventWriter[E]{queue: q}, nil
}

func (s *Scheduler) ageAndSweepEvents() {
	for _, q := range s.events {
		q.ageAndSweep()
	}
}

// flushCommands drains the scheduler's CommandBuffer against its bound
// World. Unlike the aliasing and missing-resource conditions, a missing
// World at flush time is reported to the caller rather than panicked:
// an application may legitimately call Run before a World is wired up.
func (s *Scheduler) flushCommands() error {
	if !hasResource[CommandBuffer](s.resources) {
		return nil
	}
	buf, err := borrowResource[CommandBuffer](s.resources)
	if err != nil {
		return err
	}
	world, err := borrowResource[World](s.resources)
	if err != nil {
		serr := newSchedulerError(ErrCommandFlushWithoutWorld, "", "command buffer flush requires a bound World resource")
		s.logger.Errorw("command buffer flush skipped: no bound World", "error", serr)
		return serr
	}
	return buf.Drain(world)
}

// Run executes every system registered in the half-open phase interval
// [start, endExclusive), in ascending phase order and registration order
// within a phase, then performs the boundary bookkeeping named in §4.5:
// event queues age and sweep at the start of a TICK-initiated run, and the
// command buffer flushes after any run that touches the TICK boundary.
func (s *Scheduler) Run(start, endExclusive float64) error {
	if start == PhaseTick {
		s.ageAndSweepEvents()
	}

	for _, bucket := range s.phases.Range(start, endExclusive) {
		if err := s.runBucket(bucket); err != nil {
			return err
		}
	}

	if start == PhaseTick || endExclusive == PhaseTick {
		if err := s.flushCommands(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runBucket(bucket phaseBucket) error {
	span := s.tracer.StartSpan("ecs.phase_bucket")
	defer span.End()

	s.table.Reset()
	for _, sys := range bucket.systems {
		if err := sys.declareAccesses(s.table); err != nil {
			span.SetError(err)
			panic(err)
		}
	}

	ctx := &systemContext{store: s.resources}

	if s.pool != nil && len(bucket.systems) > 1 {
		return s.runBucketParallel(ctx, bucket)
	}
	for _, sys := range bucket.systems {
		if err := s.invokeSystem(ctx, bucket.phase, sys); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runBucketParallel(ctx *systemContext, bucket phaseBucket) error {
	background := context.Background()
	handles := make([]*jobHandle, len(bucket.systems))
	for i, sys := range bucket.systems {
		sys := sys
		handles[i] = s.pool.Submit(background, func(context.Context) jobResult {
			return jobResult{err: s.invokeSystem(ctx, bucket.phase, sys)}
		})
	}
	var first error
	for _, h := range handles {
		if err := h.Wait().Err(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *Scheduler) invokeSystem(ctx *systemContext, phase float64, sys System) error {
	started := time.Now()
	err := sys.invoke(ctx)
	s.metrics.ObserveSystemDuration(phase, sys.name(), time.Since(started).Seconds())
	if err == nil {
		return nil
	}
	if serr, ok := err.(*SchedulerError); ok && serr.Kind != ErrCommandFlushWithoutWorld {
		s.metrics.IncSystemError(phase, sys.name())
		s.logger.Errorw("system fetch failed", "system", sys.name(), "phase", phase, "error", err)
		panic(serr)
	}
	return err
}
