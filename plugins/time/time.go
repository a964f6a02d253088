// Package time provides the reference Clock/TickCount plugin, grounded on
// the original's time_plugin (src/core_plugins/time_plugin/mod.rs).
package time

import (
	stdtime "time"

	"github.com/kestrel-runtime/ecs"
)

// Clock tracks wall-clock time since the plugin was built and the delta
// since the previous update.
type Clock struct {
	now   stdtime.Time
	init  stdtime.Time
	delta stdtime.Duration
}

// Now returns the clock's last-updated instant.
func (c Clock) Now() stdtime.Time { return c.now }

// Delta returns the time elapsed since the previous update.
func (c Clock) Delta() stdtime.Duration { return c.delta }

// Elapsed returns the time elapsed since the clock was created.
func (c Clock) Elapsed() stdtime.Duration { return c.now.Sub(c.init) }

// FPS returns 1/Delta, or 0 if Delta is zero (first update).
func (c Clock) FPS() float64 {
	if c.delta <= 0 {
		return 0
	}
	return 1 / c.delta.Seconds()
}

// TickCount counts scheduler ticks since the plugin was built.
type TickCount uint64

// PluginId is this plugin's stable identifier, mirroring the original's
// "slingshot_TimePlugin".
const PluginId ecs.PluginId = "kestrel_TimePlugin"

// Plugin registers Clock and TickCount resources and the system that
// updates them. It runs at phase TICK+0.001 (1.001), matching the
// original's placement just inside the [TICK, END) bucket so it runs
// before any gameplay system that depends on a fresh delta.
type Plugin struct{}

func (Plugin) ID() ecs.PluginId { return PluginId }

func (Plugin) Build(s *ecs.Scheduler) error {
	now := stdtime.Now()
	ecs.AddResource(s, Clock{now: now, init: now})
	ecs.AddResource(s, TickCount(0))

	s.AddSystem(ecs.PhaseTick+0.001, ecs.NewSystem2[ecs.Write[Clock], ecs.Write[TickCount]](
		"time.update",
		func(clock ecs.Write[Clock], ticks ecs.Write[TickCount]) {
			now := stdtime.Now()
			clock.Value.delta = now.Sub(clock.Value.now)
			clock.Value.now = now
			(*ticks.Value)++
		},
	))
	return nil
}
