package ecs_test

import (
	"testing"

	"github.com/kestrel-runtime/ecs"
)

type diagA struct{ n int }
type diagB struct{ n int }

func TestSchedulerDiagnoseReportsDeclaredAccesses(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	ecs.AddResource(s, diagA{})
	ecs.AddResource(s, diagB{})

	s.AddSystem(ecs.PhaseTick, ecs.NewSystem2[ecs.Read[diagA], ecs.Write[diagB]](
		"reader_writer",
		func(ecs.Read[diagA], ecs.Write[diagB]) {},
	))

	phases, err := s.Diagnose()
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	var found *ecs.SystemDiagnostic
	for _, phase := range phases {
		if phase.Phase != ecs.PhaseTick {
			continue
		}
		for i := range phase.Systems {
			if phase.Systems[i].Name == "reader_writer" {
				found = &phase.Systems[i]
			}
		}
	}
	if found == nil {
		t.Fatalf("expected to find reader_writer system in TICK phase diagnostics")
	}
	if len(found.Reads) != 1 || len(found.Writes) != 1 {
		t.Fatalf("expected exactly one read and one write, got %+v", found)
	}
}

func TestSchedulerDiagnoseNeverInvokesSystems(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	var invoked bool
	ecs.AddResource(s, diagA{})
	s.AddSystem(ecs.PhaseStart, ecs.NewSystem1[ecs.Read[diagA]](
		"should_not_run",
		func(ecs.Read[diagA]) { invoked = true },
	))

	if _, err := s.Diagnose(); err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if invoked {
		t.Fatalf("expected Diagnose to never call a system's invoke step")
	}
}
