package ecs

import "sort"

// SystemDiagnostic summarizes one system's declared resource accesses,
// computed by calling its declare step in isolation (never its invoke
// step) so diagnostics never runs user code with side effects.
type SystemDiagnostic struct {
	Name   string
	Reads  []string
	Writes []string
}

// PhaseDiagnostic summarizes one phase bucket's systems in registration order.
type PhaseDiagnostic struct {
	Phase   float64
	Systems []SystemDiagnostic
}

// Diagnose reports, for every registered phase bucket, each system's name
// and declared resource accesses. It never invokes a system; it exists for
// introspection tooling (cmd/ecsctl) rather than the scheduling hot path.
func (s *Scheduler) Diagnose() ([]PhaseDiagnostic, error) {
	var out []PhaseDiagnostic
	for _, bucket := range s.phases.Range(0, 4) {
		pd := PhaseDiagnostic{Phase: bucket.phase}
		for _, sys := range bucket.systems {
			t := NewAccessTable()
			if err := sys.declareAccesses(t); err != nil {
				return nil, err
			}
			sd := SystemDiagnostic{Name: sys.name()}
			for k, mode := range t.entries {
				switch mode {
				case AccessRead:
					sd.Reads = append(sd.Reads, k.String())
				case AccessWrite:
					sd.Writes = append(sd.Writes, k.String())
				}
			}
			sort.Strings(sd.Reads)
			sort.Strings(sd.Writes)
			pd.Systems = append(pd.Systems, sd)
		}
		out = append(out, pd)
	}
	return out, nil
}
