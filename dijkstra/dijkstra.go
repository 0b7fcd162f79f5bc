// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/katalvlaran/cityways/citygraph"
)

// AllShortest computes shortest distances from g.Initial() together with all
// tied predecessors of every city.
//
// Returns:
//
//   - res: per-city states; res.Distance() is the minimal distance to
//     g.Destination(). nil when err != nil.
//   - err: ErrNilGraph, or ErrNoPath if the destination stays unreached.
//
// Unreachability is a normal outcome, reported through ErrNoPath; nothing
// else can fail once the graph is valid.
//
// Complexity: O(V²) time, O(V + P) space.
func AllShortest(g *citygraph.Graph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Run.
	r := &runner{
		g:       g,
		options: cfg,
		states:  make([]NodeState, g.Order()),
	}
	r.init()
	r.process()

	// 4) Report.
	target := g.Destination()
	if !r.states[target].Reached() {
		return nil, ErrNoPath
	}

	return &Result{
		Source: g.Initial(),
		Target: target,
		States: r.states,
	}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *citygraph.Graph
	options Options
	states  []NodeState // indexed by city
}

// init marks every city Unreached except the source at distance 0.
func (r *runner) init() {
	for i := range r.states {
		r.states[i] = NodeState{Distance: Unreached}
	}
	r.states[r.g.Initial()].Distance = 0
}

// process settles pivots until none is left or, with EarlyStop, the
// destination is settled.
func (r *runner) process() {
	target := r.g.Destination()
	for {
		// 1) Pick the closest unsettled city; lowest index on ties.
		pivot, ok := r.nextPivot()
		if !ok {
			return // everything settled, or the rest is unreachable
		}

		// 2) Finalize it.
		r.states[pivot].Settled = true
		r.options.Logger.Debug("pivot settled",
			"city", pivot,
			"distance", r.states[pivot].Distance,
			"predecessors", r.states[pivot].Predecessors)

		if r.options.EarlyStop && pivot == target {
			return
		}

		// 3) Relax its roads.
		r.relax(pivot)
	}
}

// nextPivot scans all cities in index order and returns the unsettled one
// with the smallest finite distance.
func (r *runner) nextPivot() (int, bool) {
	best, bestDist := -1, Unreached
	for i, s := range r.states {
		if s.Settled || !s.Reached() {
			continue
		}
		// Strict "<" keeps the first (lowest index) city among equals.
		if s.Distance < bestDist {
			best, bestDist = i, s.Distance
		}
	}

	return best, best >= 0
}

// relax offers pivot as predecessor to every unsettled city it has a road to.
//
//   - strictly shorter: distance replaced, predecessors reset to {pivot};
//   - equal: pivot appended to the predecessors (once);
//   - longer: ignored.
func (r *runner) relax(pivot int) {
	base := r.states[pivot].Distance
	for j := range r.states {
		if j == pivot || r.states[j].Settled {
			continue
		}
		w := r.weight(pivot, j)
		if w == citygraph.NoEdge {
			continue
		}

		candidate := base + w
		s := &r.states[j]
		switch {
		case candidate < s.Distance:
			s.Distance = candidate
			s.Predecessors = append(s.Predecessors[:0], pivot)
		case candidate == s.Distance:
			if !contains(s.Predecessors, pivot) {
				s.Predecessors = append(s.Predecessors, pivot)
			}
		}
	}
}

// weight reads the road used to reach to from from under the configured direction.
func (r *runner) weight(from, to int) int64 {
	if r.options.Direction == Transposed {
		return r.g.Weight(to, from)
	}

	return r.g.Weight(from, to)
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}
