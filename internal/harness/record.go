package harness

import "time"

// Record is the outcome of one benchmark size.
type Record struct {
	Size             int
	ExactCost        float64
	ExactRuntime     time.Duration
	HeuristicCost    float64
	HeuristicRuntime time.Duration
	Iterations       int
	Restarts         int
}

// Gap returns the relative excess of the heuristic over the exact cost,
// or 0 when the exact cost is 0.
func (r Record) Gap() float64 {
	if r.ExactCost == 0 {
		return 0
	}

	return (r.HeuristicCost - r.ExactCost) / r.ExactCost
}
