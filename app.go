package ecs

import "fmt"

// EventLoopHandler is the external driver's handle to its own event loop
// (winit's ActiveEventLoop in the original). The scheduler never calls it
// directly; it is exposed to systems only as the EventLoopHandle resource,
// scoped to the Resume call (§9 Open Question: event-loop reference scope).
type EventLoopHandler interface {
	RequestRedraw()
	Exit()
}

// EventLoopHandle wraps the current EventLoopHandler as a resource so
// systems running during Resume (the START→TICK call) can reach it.
type EventLoopHandle struct {
	Handler EventLoopHandler
}

// App is a thin façade composing a PluginRegistry and a Scheduler and
// driving the START → TICK → END → EXIT cycle in response to an external
// event loop (§2 item 6, §4.6).
type App struct {
	scheduler *Scheduler
	plugins   *PluginRegistry
}

// NewApp constructs an App with a default Scheduler and empty PluginRegistry.
func NewApp() *App {
	return &App{
		scheduler: NewScheduler(),
		plugins:   NewPluginRegistry(),
	}
}

// NewAppWithScheduler wraps an already-configured Scheduler, e.g. one built
// via SchedulerBuilder for custom logging/tracing/metrics/parallelism.
func NewAppWithScheduler(s *Scheduler) *App {
	return &App{scheduler: s, plugins: NewPluginRegistry()}
}

// Scheduler exposes the underlying Scheduler for callers that need direct
// access (diagnostics, tests).
func (a *App) Scheduler() *Scheduler { return a.scheduler }

// AddPlugin builds p into the app's scheduler, fingerprinting its
// registration for diagnostics.
func (a *App) AddPlugin(p Plugin) error {
	_, err := a.plugins.Register(a.scheduler, p)
	return err
}

// AddPlugins registers each plugin in order, stopping at the first error.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := a.AddPlugin(p); err != nil {
			return err
		}
	}
	return nil
}

// AddSystem appends sys to phase's bucket. Panics on NaN/out-of-range phase.
func (a *App) AddSystem(phase float64, sys System) {
	a.scheduler.AddSystem(phase, sys)
}

// Resume mirrors the original's ApplicationHandler::resumed: it binds
// handler as the EventLoopHandle resource, runs the START→TICK step (where
// plugin-registered startup systems observe it), then removes the
// resource immediately, since its validity does not outlive this call.
//
// Resources and events are added/removed through the package-level generic
// functions (AddResource, RemoveResource, AddEvent, GetEventWriter) against
// a.Scheduler(), the same as any other Scheduler caller — App does not
// shadow them with its own copies.
func (a *App) Resume(handler EventLoopHandler) error {
	AddResource(a.scheduler, EventLoopHandle{Handler: handler})
	defer RemoveResource[EventLoopHandle](a.scheduler)

	if err := a.scheduler.Run(PhaseStart, PhaseTick); err != nil {
		return fmt.Errorf("ecs: app resume: %w", err)
	}
	return nil
}

// Redraw runs the TICK→END step, the per-frame gameplay/render window.
func (a *App) Redraw() error {
	if err := a.scheduler.Run(PhaseTick, PhaseEnd); err != nil {
		return fmt.Errorf("ecs: app redraw: %w", err)
	}
	return nil
}

// Close runs the END→EXIT step and releases the scheduler's worker pool,
// if any. Call once, when the external event loop is tearing down.
func (a *App) Close() error {
	err := a.scheduler.Run(PhaseEnd, PhaseExit)
	a.scheduler.Close()
	if err != nil {
		return fmt.Errorf("ecs: app close: %w", err)
	}
	return nil
}

// DispatchEvent sends e through the scheduler's registered writer for E,
// failing if E was never registered via AddEvent — mirroring the
// original's panic on "event received before creation of the event bus",
// but as a normal error since a plugin misordering init is a recoverable
// caller mistake here, not the aliasing/phase-range class of programmer
// error (errors.go).
func DispatchEvent[E any](a *App, e E) error {
	w, err := GetEventWriter[E](a.scheduler)
	if err != nil {
		return fmt.Errorf("ecs: dispatch event %T: %w", e, err)
	}
	w.Send(e)
	return nil
}
