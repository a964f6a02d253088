package ecs_test

import (
	"testing"

	"github.com/kestrel-runtime/ecs"
)

type schedWidget struct{ n int }
type schedPing struct{ n int }

func TestSchedulerRunsSystemsInPhaseAndRegistrationOrder(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	var order []string
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem0("first", func() { order = append(order, "first") }))
	s.AddSystem(ecs.PhaseStart, ecs.NewSystem0("start", func() { order = append(order, "start") }))
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem0("second", func() { order = append(order, "second") }))

	if err := s.Run(ecs.PhaseStart, ecs.PhaseEnd); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{"start", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestAddSystemPanicsOnOutOfRangePhase(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected AddSystem to panic on an out-of-range phase")
		}
	}()
	s.AddSystem(4.0, ecs.NewSystem0("bad", func() {}))
}

func TestAddSystemPanicsOnNaNPhase(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	nan := func() float64 { var z float64; return z / z }()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected AddSystem to panic on a NaN phase")
		}
	}()
	s.AddSystem(nan, ecs.NewSystem0("bad", func() {}))
}

func TestRunPanicsOnAliasWriteWrite(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	ecs.AddResource(s, schedWidget{})
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.Write[schedWidget]]("a", func(ecs.Write[schedWidget]) {}))
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.Write[schedWidget]]("b", func(ecs.Write[schedWidget]) {}))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected two same-phase writers of the same resource to panic")
		}
	}()
	_ = s.Run(ecs.PhaseTick, ecs.PhaseEnd)
}

func TestRunAllowsReadThenReadSamePhase(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	ecs.AddResource(s, schedWidget{n: 1})
	var a, b int
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.Read[schedWidget]]("a", func(w ecs.Read[schedWidget]) { a = w.Value.n }))
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.Read[schedWidget]]("b", func(w ecs.Read[schedWidget]) { b = w.Value.n }))

	if err := s.Run(ecs.PhaseTick, ecs.PhaseEnd); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a != 1 || b != 1 {
		t.Fatalf("expected both readers to observe 1, got a=%d b=%d", a, b)
	}
}

func TestRunAllowsAliasAcrossDifferentPhases(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	ecs.AddResource(s, schedWidget{})
	s.AddSystem(ecs.PhaseStart, ecs.NewSystem1[ecs.Write[schedWidget]]("a", func(ecs.Write[schedWidget]) {}))
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.Write[schedWidget]]("b", func(ecs.Write[schedWidget]) {}))

	if err := s.Run(ecs.PhaseStart, ecs.PhaseEnd); err != nil {
		t.Fatalf("expected writes in different phases not to alias: %v", err)
	}
}

func TestEventVisibleDuringOneRunThenSweptOnNext(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()
	ecs.AddEvent[schedPing](s)

	// The writer sends only during the first run; the reader runs later in
	// the same TICK-initiated run. The second run ages and sweeps the queue
	// before its systems run, so the reader then sees nothing.
	var sent bool
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.EventWriter[schedPing]]("writer", func(w ecs.EventWriter[schedPing]) {
		if !sent {
			w.Send(schedPing{n: 1})
			sent = true
		}
	}))

	var seenFirst, seenSecond, runs int
	s.AddSystem(ecs.PhaseTick+0.1, ecs.NewSystem1[ecs.EventReader[schedPing]]("reader", func(r ecs.EventReader[schedPing]) {
		runs++
		if runs == 1 {
			seenFirst = len(r.Read())
		} else {
			seenSecond = len(r.Read())
		}
	}))

	if err := s.Run(ecs.PhaseTick, ecs.PhaseEnd); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if seenFirst != 1 {
		t.Fatalf("expected the event sent earlier in the run visible to the reader, got %d", seenFirst)
	}

	if err := s.Run(ecs.PhaseTick, ecs.PhaseEnd); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if seenSecond != 0 {
		t.Fatalf("expected the event to be swept away before the second TICK-initiated run, got %d", seenSecond)
	}
}

func TestFlushCommandsWithoutWorldReturnsRecoverableError(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	ecs.AddResource(s, *ecs.NewCommandBuffer())

	err := s.Run(ecs.PhaseTick, ecs.PhaseEnd)
	if err == nil {
		t.Fatalf("expected flushing commands without a bound World to fail")
	}
	serr, ok := err.(*ecs.SchedulerError)
	if !ok {
		t.Fatalf("expected *ecs.SchedulerError, got %T", err)
	}
	if serr.Kind != ecs.ErrCommandFlushWithoutWorld {
		t.Fatalf("expected ErrCommandFlushWithoutWorld, got %v", serr.Kind)
	}
}

type recordingLogger struct{ errorCalls int }

func (l *recordingLogger) Debugw(msg string, kv ...any) {}
func (l *recordingLogger) Infow(msg string, kv ...any)  {}
func (l *recordingLogger) Errorw(msg string, kv ...any) { l.errorCalls++ }

func TestFlushCommandsWithoutWorldLogsBeforeReturning(t *testing.T) {
	logger := &recordingLogger{}
	s := ecs.NewSchedulerBuilder().WithLogger(logger).Build()
	defer s.Close()

	ecs.AddResource(s, *ecs.NewCommandBuffer())

	if err := s.Run(ecs.PhaseTick, ecs.PhaseEnd); err == nil {
		t.Fatalf("expected an error")
	}
	if logger.errorCalls != 1 {
		t.Fatalf("expected the missing-World flush to be logged exactly once, got %d calls", logger.errorCalls)
	}
}

func TestCommandsFlushAfterTickBoundary(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	world := ecs.NewWorld()
	ecs.AddResource(s, *world)
	ecs.AddResource(s, *ecs.NewCommandBuffer())

	var spawned ecs.EntityID
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.CommandBufferParam]("spawn", func(cmds ecs.CommandBufferParam) {
		cmds.Buffer.Push(ecs.NewCreateEntityCommand(&spawned))
	}))

	if err := s.Run(ecs.PhaseTick, ecs.PhaseEnd); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !world.Registry().IsAlive(spawned) {
		t.Fatalf("expected the deferred create-entity command to have been applied after the TICK boundary")
	}
}

type schedCounter struct{ n int }

// TestSchedulerS5FloatPrecisionOrderDoublesToThirtyTwo is spec.md §8
// scenario S5: the six float keys from invariant 2, registered out of
// order, must still run in strict ascending total order. The first key
// (exactly PhaseStart, 0.0) seeds a shared counter to 1; each of the
// remaining five keys doubles it once, so a correct total order is the
// only way the run ends at 32 rather than some other power of two.
func TestSchedulerS5FloatPrecisionOrderDoublesToThirtyTwo(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()
	ecs.AddResource(s, schedCounter{})

	midpoint := 0.5000000000000001
	keys := []float64{
		0,
		rustF64MinPositiveHalf,
		0.49999999999999994,
		midpoint,
		midpoint + schedMachineEpsilon,
		midpoint + 2*schedMachineEpsilon,
	}

	seed := ecs.NewSystem1[ecs.Write[schedCounter]]("seed", func(c ecs.Write[schedCounter]) {
		c.Value.n = 1
	})
	double := func() ecs.System {
		return ecs.NewSystem1[ecs.Write[schedCounter]]("double", func(c ecs.Write[schedCounter]) {
			c.Value.n *= 2
		})
	}
	var final int
	captureLast := ecs.NewSystem1[ecs.Write[schedCounter]]("double_and_capture", func(c ecs.Write[schedCounter]) {
		c.Value.n *= 2
		final = c.Value.n
	})

	// Register deliberately out of ascending order to prove the phase map
	// sorts by key rather than relying on registration order.
	s.AddSystem(keys[3], double())
	s.AddSystem(keys[0], seed)
	s.AddSystem(keys[5], captureLast)
	s.AddSystem(keys[1], double())
	s.AddSystem(keys[4], double())
	s.AddSystem(keys[2], double())

	if err := s.Run(ecs.PhaseStart, ecs.PhaseTick); err != nil {
		t.Fatalf("run: %v", err)
	}

	if final != 32 {
		t.Fatalf("expected the doubling chain to end at 32, got %d", final)
	}
}

const rustF64MinPositiveHalf = 2.2250738585072014e-308 / 2
const schedMachineEpsilon = 2.220446049250313e-16

func TestHasResourceReflectsAddAndRemove(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	if ecs.HasResource[schedWidget](s) {
		t.Fatalf("expected no widget bound initially")
	}
	ecs.AddResource(s, schedWidget{})
	if !ecs.HasResource[schedWidget](s) {
		t.Fatalf("expected widget bound after AddResource")
	}
	ecs.RemoveResource[schedWidget](s)
	if ecs.HasResource[schedWidget](s) {
		t.Fatalf("expected widget unbound after RemoveResource")
	}
}
