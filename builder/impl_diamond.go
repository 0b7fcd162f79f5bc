// SPDX-License-Identifier: MIT
// impl_diamond.go - DiamondChain(): a chain of diamonds, each doubling the
// number of equal-cost routes.
//
// Layout for n cities: junctions at 0, 3, 6, …; the diamond starting at
// junction j uses j→j+1, j→j+2, j+1→j+3, j+2→j+3. Cities left after the last
// complete diamond are appended as a path. With a constant weight and the
// default endpoints, the destination is reached by 2^⌊(n-1)/3⌋ tied routes.
//
// Determinism: diamonds emitted by increasing junction, upper arm first.

package builder

import "fmt"

const methodDiamondChain = "DiamondChain"

// DiamondChain returns a Constructor for the tie-heavy diamond chain.
func DiamondChain() Constructor {
	return func(s *sketch, cfg builderConfig) error {
		next := func(from, to int) error {
			w, err := cfg.weightFn(cfg.rng)
			if err != nil {
				return fmt.Errorf("%s: road %d→%d: %w", methodDiamondChain, from, to, err)
			}
			s.road(from, to, w, cfg)

			return nil
		}

		j := 0
		for ; j+3 < s.n; j += 3 {
			for _, r := range [][2]int{{j, j + 1}, {j + 1, j + 3}, {j, j + 2}, {j + 2, j + 3}} {
				if err := next(r[0], r[1]); err != nil {
					return err
				}
			}
		}
		for ; j+1 < s.n; j++ {
			if err := next(j, j+1); err != nil {
				return err
			}
		}

		return nil
	}
}
