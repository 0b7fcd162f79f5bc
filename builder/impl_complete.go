// SPDX-License-Identifier: MIT
// impl_complete.go - Complete(): a road between every pair of distinct cities.
//
// Determinism: pairs (i,j) with i<j in row-major order; with WithOneWay only
// i→j is emitted.

package builder

import "fmt"

const methodComplete = "Complete"

// Complete returns a Constructor connecting every pair of cities.
func Complete() Constructor {
	return func(s *sketch, cfg builderConfig) error {
		for i := 0; i < s.n; i++ {
			for j := i + 1; j < s.n; j++ {
				w, err := cfg.weightFn(cfg.rng)
				if err != nil {
					return fmt.Errorf("%s: road %d→%d: %w", methodComplete, i, j, err)
				}
				s.road(i, j, w, cfg)
			}
		}

		return nil
	}
}
