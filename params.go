package ecs

// systemContext is the scoped, per-invocation handle a Param uses to
// reconstruct its typed view. It never outlives a single system call.
type systemContext struct {
	store *ResourceStore
}

// Param is the capability set every system parameter type implements:
// declare its resource access into the phase's AccessTable, then
// reconstruct a typed view from the erased store (spec §4.3). Concrete
// parameter types are constructed via NewSystem0..NewSystem10 (system.go)
// rather than directly by user code.
type Param interface {
	declare(t *AccessTable) error
	fetch(ctx *systemContext) (Param, error)
}

// Read borrows a resource of type T immutably for the duration of one
// system invocation.
type Read[T any] struct {
	Value *T
}

func (Read[T]) declare(t *AccessTable) error { return declareRead[T](t) }

func (Read[T]) fetch(ctx *systemContext) (Param, error) {
	v, err := borrowResource[T](ctx.store)
	if err != nil {
		return nil, err
	}
	return Read[T]{Value: v}, nil
}

// Write borrows a resource of type T mutably for the duration of one
// system invocation.
type Write[T any] struct {
	Value *T
}

func (Write[T]) declare(t *AccessTable) error { return declareWrite[T](t) }

func (Write[T]) fetch(ctx *systemContext) (Param, error) {
	v, err := borrowResource[T](ctx.store)
	if err != nil {
		return nil, err
	}
	return Write[T]{Value: v}, nil
}

// RefWorld borrows the World resource immutably.
type RefWorld struct {
	World *World
}

func (RefWorld) declare(t *AccessTable) error { return declareRead[World](t) }

func (RefWorld) fetch(ctx *systemContext) (Param, error) {
	w, err := borrowResource[World](ctx.store)
	if err != nil {
		return nil, err
	}
	return RefWorld{World: w}, nil
}

// MutWorld borrows the World resource mutably.
type MutWorld struct {
	World *World
}

func (MutWorld) declare(t *AccessTable) error { return declareWrite[World](t) }

func (MutWorld) fetch(ctx *systemContext) (Param, error) {
	w, err := borrowResource[World](ctx.store)
	if err != nil {
		return nil, err
	}
	return MutWorld{World: w}, nil
}

// CommandBufferParam borrows the single deferred-command log. It declares
// no access: the log is append-only and single-writer by construction at
// the scheduler level, so same-phase aliasing exempts it entirely (§4.3).
type CommandBufferParam struct {
	Buffer *CommandBuffer
}

func (CommandBufferParam) declare(t *AccessTable) error { return nil }

func (CommandBufferParam) fetch(ctx *systemContext) (Param, error) {
	buf, err := borrowResource[CommandBuffer](ctx.store)
	if err != nil {
		return nil, err
	}
	return CommandBufferParam{Buffer: buf}, nil
}

// EventReader borrows an event queue immutably and exposes its live
// payloads without consuming them.
type EventReader[E any] struct {
	queue *EventQueue[E]
}

func (EventReader[E]) declare(t *AccessTable) error { return declareRead[EventQueue[E]](t) }

func (EventReader[E]) fetch(ctx *systemContext) (Param, error) {
	q, err := borrowResource[EventQueue[E]](ctx.store)
	if err != nil {
		return nil, missingEventErr[E](err)
	}
	return EventReader[E]{queue: q}, nil
}

// Read returns the live payloads of this event type, in send order.
func (r EventReader[E]) Read() []E {
	if r.queue == nil {
		return nil
	}
	return r.queue.all()
}

// Len reports how many events are currently visible.
func (r EventReader[E]) Len() int {
	if r.queue == nil {
		return 0
	}
	return r.queue.len()
}

// EventWriter borrows an event queue mutably and exposes Send.
type EventWriter[E any] struct {
	queue *EventQueue[E]
}

func (EventWriter[E]) declare(t *AccessTable) error { return declareWrite[EventQueue[E]](t) }

func (EventWriter[E]) fetch(ctx *systemContext) (Param, error) {
	q, err := borrowResource[EventQueue[E]](ctx.store)
	if err != nil {
		return nil, missingEventErr[E](err)
	}
	return EventWriter[E]{queue: q}, nil
}

// Send enqueues a new event with age 0, visible for the remainder of the
// current tick-cycle traversal.
func (w EventWriter[E]) Send(e E) {
	w.queue.push(e)
}

func missingEventErr[E any](err error) error {
	serr, ok := err.(*SchedulerError)
	if !ok || serr.Kind != ErrMissingResource {
		return err
	}
	return newSchedulerError(ErrMissingEvent, keyOf[E]().String(), "event type not registered via AddEvent")
}
