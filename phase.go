package ecs

import (
	"math"
	"sort"
)

// totalOrderKey maps a float64 onto a uint64 whose natural unsigned
// ordering matches IEEE-754's totalOrder predicate, including denormals
// and the two zeros (§9: "a sortable bit pattern"). Phase keys are
// constrained to [0,4) by AddSystem, so only the non-negative branch is
// ever exercised here, but the transform is written for the general case.
func totalOrderKey(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | (1 << 63)
}

// phaseBucket holds every system registered at one exact phase value, in
// the order AddSystem was called (§4.2: "systems within a bucket run in
// registration order").
type phaseBucket struct {
	key     uint64
	phase   float64
	systems []System
}

// PhaseMap is a sorted slice of phase buckets, binary-searched by the
// total-order transform of the phase key.
type PhaseMap struct {
	buckets []phaseBucket
}

// NewPhaseMap constructs an empty map.
func NewPhaseMap() *PhaseMap {
	return &PhaseMap{}
}

// Insert appends s to the bucket for phase, creating the bucket in sorted
// position if none yet exists.
func (m *PhaseMap) Insert(phase float64, s System) {
	key := totalOrderKey(phase)
	i := sort.Search(len(m.buckets), func(i int) bool { return m.buckets[i].key >= key })
	if i < len(m.buckets) && m.buckets[i].key == key {
		m.buckets[i].systems = append(m.buckets[i].systems, s)
		return
	}
	m.buckets = append(m.buckets, phaseBucket{})
	copy(m.buckets[i+1:], m.buckets[i:])
	m.buckets[i] = phaseBucket{key: key, phase: phase, systems: []System{s}}
}

// Range returns the buckets whose phase lies in the half-open interval
// [lo, hi), in ascending phase order, matching the original's
// `range_mut(Included(start)..Excluded(end))`.
func (m *PhaseMap) Range(lo, hi float64) []phaseBucket {
	loKey, hiKey := totalOrderKey(lo), totalOrderKey(hi)
	start := sort.Search(len(m.buckets), func(i int) bool { return m.buckets[i].key >= loKey })
	end := sort.Search(len(m.buckets), func(i int) bool { return m.buckets[i].key >= hiKey })
	if start >= end {
		return nil
	}
	return m.buckets[start:end]
}

// Len reports the total number of registered systems across all buckets.
func (m *PhaseMap) Len() int {
	n := 0
	for _, b := range m.buckets {
		n += len(b.systems)
	}
	return n
}
