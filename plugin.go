package ecs

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// PluginId is a stable identifier of a plugin, unique across everything
// registered into one Scheduler (§3, §4.6).
type PluginId string

// Plugin composes systems, resources, and event types into a Scheduler.
// Build may register systems at any phase in [0,4), add or remove
// resources, and register event types; it runs once, at registration time.
type Plugin interface {
	ID() PluginId
	Build(s *Scheduler) error
}

// PluginFunc adapts a plain function to Plugin for small, inline plugins.
type PluginFunc struct {
	Id    PluginId
	Setup func(s *Scheduler) error
}

func (p PluginFunc) ID() PluginId { return p.Id }

func (p PluginFunc) Build(s *Scheduler) error { return p.Setup(s) }

// PluginRegistry tracks which plugins have been built into a Scheduler and
// fingerprints each registration for diagnostics/log correlation. The
// fingerprint has no effect on scheduling (§4.6: collision handling between
// plugins is advisory, not a runtime mechanism).
type PluginRegistry struct {
	mu       sync.Mutex
	byID     map[PluginId]uuid.UUID
	ordinal  int
	registry []PluginId
}

// NewPluginRegistry constructs an empty registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{byID: make(map[PluginId]uuid.UUID)}
}

// Register builds p into s, assigning it a stable fingerprint derived from
// its PluginId and registration ordinal. Returns an error if p's ID was
// already registered, or if Build itself fails.
func (r *PluginRegistry) Register(s *Scheduler, p Plugin) (uuid.UUID, error) {
	r.mu.Lock()
	id := p.ID()
	if _, exists := r.byID[id]; exists {
		r.mu.Unlock()
		return uuid.UUID{}, fmt.Errorf("%w: %q", ErrPluginAlreadyRegistered, id)
	}
	ordinal := r.ordinal
	r.ordinal++
	r.mu.Unlock()

	if err := p.Build(s); err != nil {
		return uuid.UUID{}, fmt.Errorf("ecs: plugin %q build: %w", id, err)
	}

	fingerprint := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s#%d", id, ordinal)))

	r.mu.Lock()
	r.byID[id] = fingerprint
	r.registry = append(r.registry, id)
	r.mu.Unlock()

	return fingerprint, nil
}

// Fingerprint returns the stable id assigned to a previously-registered
// plugin, if any.
func (r *PluginRegistry) Fingerprint(id PluginId) (uuid.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fp, ok := r.byID[id]
	return fp, ok
}

// Registered lists plugin ids in registration order.
func (r *PluginRegistry) Registered() []PluginId {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PluginId, len(r.registry))
	copy(out, r.registry)
	return out
}

// CollisionHint suggests a decimal offset at which two plugins wanting the
// same phase key can disambiguate: phase + 1/10^magnitude. It is advisory
// metadata only; the scheduler never consults it (§4.6, §C.2).
func CollisionHint(phase float64, magnitude uint8) float64 {
	shift := 1.0
	for i := uint8(0); i < magnitude; i++ {
		shift /= 10
	}
	return phase + shift
}
