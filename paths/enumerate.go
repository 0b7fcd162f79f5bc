// SPDX-License-Identifier: MIT

package paths

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cityways/dijkstra"
)

// Enumerate returns every minimal route from res.Source to res.Target.
//
// Complexity: O(V + total output size). The number of routes is bounded only
// by the topology; ties along a chain compound multiplicatively.
func Enumerate(res *dijkstra.Result) ([]Path, error) {
	if err := validate(res); err != nil {
		return nil, err
	}

	e := &enumerator{
		res:      res,
		memo:     make([][]Path, len(res.States)),
		done:     make([]bool, len(res.States)),
		visiting: make([]bool, len(res.States)),
	}

	return e.routesTo(res.Target)
}

// enumerator caches, per city, the routes from the source ending at it.
type enumerator struct {
	res      *dijkstra.Result
	memo     [][]Path
	done     []bool
	visiting []bool // on the current recursion stack; a revisit means a cycle
}

// routesTo returns the memoized routes ending at city n.
// Recursion depth is bounded by the number of cities, since predecessor
// distances strictly decrease towards the source. Hand-built results with a
// cycle are rejected with ErrBrokenChain.
func (e *enumerator) routesTo(n int) ([]Path, error) {
	if e.done[n] {
		return e.memo[n], nil
	}
	if e.visiting[n] {
		return nil, fmt.Errorf("city %d: cycle: %w", n, ErrBrokenChain)
	}
	e.visiting[n] = true
	defer func() { e.visiting[n] = false }()

	var out []Path
	if n == e.res.Source {
		out = []Path{{n}}
	} else {
		preds := e.res.States[n].Predecessors
		if len(preds) == 0 {
			return nil, fmt.Errorf("city %d: %w", n, ErrBrokenChain)
		}
		for _, p := range preds {
			if p < 0 || p >= len(e.res.States) {
				return nil, fmt.Errorf("city %d: predecessor %d: %w", n, p, ErrBrokenChain)
			}
			sub, err := e.routesTo(p)
			if err != nil {
				return nil, err
			}
			for _, route := range sub {
				// Fresh backing array: memoized prefixes are shared.
				ext := make(Path, len(route), len(route)+1)
				copy(ext, route)
				out = append(out, append(ext, n))
			}
		}
	}

	e.memo[n], e.done[n] = out, true

	return out, nil
}

// Count returns the number of minimal routes without materializing them.
// It walks the same DAG as Enumerate, so Count(res) == len(Enumerate(res)).
func Count(res *dijkstra.Result) (*big.Int, error) {
	if err := validate(res); err != nil {
		return nil, err
	}

	memo := make([]*big.Int, len(res.States))
	visiting := make([]bool, len(res.States))
	var count func(n int) (*big.Int, error)
	count = func(n int) (*big.Int, error) {
		if memo[n] != nil {
			return memo[n], nil
		}
		if visiting[n] {
			return nil, fmt.Errorf("city %d: cycle: %w", n, ErrBrokenChain)
		}
		visiting[n] = true
		defer func() { visiting[n] = false }()

		total := new(big.Int)
		if n == res.Source {
			total.SetInt64(1)
		} else {
			preds := res.States[n].Predecessors
			if len(preds) == 0 {
				return nil, fmt.Errorf("city %d: %w", n, ErrBrokenChain)
			}
			for _, p := range preds {
				if p < 0 || p >= len(res.States) {
					return nil, fmt.Errorf("city %d: predecessor %d: %w", n, p, ErrBrokenChain)
				}
				c, err := count(p)
				if err != nil {
					return nil, err
				}
				total.Add(total, c)
			}
		}
		memo[n] = total

		return total, nil
	}

	c, err := count(res.Target)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(c), nil
}

func validate(res *dijkstra.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if res.Target < 0 || res.Target >= len(res.States) || !res.States[res.Target].Reached() {
		return ErrUnreachable
	}

	return nil
}
