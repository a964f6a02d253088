package ecs

import "testing"

type evPing struct{ n int }

func TestEventQueuePushThenAllPreservesOrder(t *testing.T) {
	q := NewEventQueue[evPing]()
	q.push(evPing{n: 1})
	q.push(evPing{n: 2})

	got := q.all()
	if len(got) != 2 || got[0].n != 1 || got[1].n != 2 {
		t.Fatalf("expected [1 2] in order, got %+v", got)
	}
	if q.len() != 2 {
		t.Fatalf("expected len 2, got %d", q.len())
	}
}

func TestEventQueueAgeAndSweepPurgesAfterOnePass(t *testing.T) {
	q := NewEventQueue[evPing]()
	q.push(evPing{n: 1})

	q.ageAndSweep()
	if q.len() != 0 {
		t.Fatalf("expected a single ageAndSweep pass to purge every entry, got len %d", q.len())
	}
}

func TestEventQueueVisibleBeforeFirstSweep(t *testing.T) {
	q := NewEventQueue[evPing]()
	q.push(evPing{n: 7})

	if got := q.all(); len(got) != 1 || got[0].n != 7 {
		t.Fatalf("expected the event visible before any sweep, got %+v", got)
	}
}

func TestEventQueueEmptySweepIsNoop(t *testing.T) {
	q := NewEventQueue[evPing]()
	q.ageAndSweep() // must not panic on an empty queue
	if q.len() != 0 {
		t.Fatalf("expected empty queue to remain empty")
	}
}

func TestEventQueueSatisfiesAgeable(t *testing.T) {
	var _ ageable = NewEventQueue[evPing]()
}
