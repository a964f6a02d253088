package ecs

import "testing"

type sysCounter struct{ n int }
type sysTotal struct{ n int }

func TestSystem0InvokesWithNoDeclaredAccess(t *testing.T) {
	var ran bool
	sys := NewSystem0("noop", func() { ran = true })

	tbl := NewAccessTable()
	if err := sys.declareAccesses(tbl); err != nil {
		t.Fatalf("declare: %v", err)
	}

	ctx := &systemContext{store: NewResourceStore()}
	if err := sys.invoke(ctx); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if !ran {
		t.Fatalf("expected fn to run")
	}
}

func TestSystem1FetchesDeclaredResource(t *testing.T) {
	store := NewResourceStore()
	insertResource(store, sysCounter{n: 4})

	var observed int
	sys := NewSystem1[Read[sysCounter]]("read_counter", func(c Read[sysCounter]) {
		observed = c.Value.n
	})

	tbl := NewAccessTable()
	if err := sys.declareAccesses(tbl); err != nil {
		t.Fatalf("declare: %v", err)
	}
	ctx := &systemContext{store: store}
	if err := sys.invoke(ctx); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if observed != 4 {
		t.Fatalf("expected 4, got %d", observed)
	}
}

func TestSystem2ComposesTwoDistinctParams(t *testing.T) {
	store := NewResourceStore()
	insertResource(store, sysCounter{n: 2})
	insertResource(store, sysTotal{n: 10})

	sys := NewSystem2[Read[sysCounter], Write[sysTotal]]("accumulate", func(c Read[sysCounter], total Write[sysTotal]) {
		total.Value.n += c.Value.n
	})

	tbl := NewAccessTable()
	if err := sys.declareAccesses(tbl); err != nil {
		t.Fatalf("declare: %v", err)
	}
	ctx := &systemContext{store: store}
	if err := sys.invoke(ctx); err != nil {
		t.Fatalf("invoke: %v", err)
	}

	total, _ := borrowResource[sysTotal](store)
	if total.n != 12 {
		t.Fatalf("expected 12, got %d", total.n)
	}
}

func TestSystemInvokeFailsWhenResourceMissing(t *testing.T) {
	sys := NewSystem1[Read[sysCounter]]("read_counter", func(Read[sysCounter]) {})

	ctx := &systemContext{store: NewResourceStore()}
	if err := sys.invoke(ctx); err == nil {
		t.Fatalf("expected invoke to fail when the resource is unbound")
	}
}

func TestSystemNameDefaultsWhenEmpty(t *testing.T) {
	sys := NewSystem0("", func() {})
	if sys.name() != "system" {
		t.Fatalf("expected default name %q, got %q", "system", sys.name())
	}
}
