// SPDX-License-Identifier: MIT
// impl_path.go - Path(): roads i→i+1 for every consecutive pair of cities.
//
// Determinism: roads emitted by increasing i; weights drawn in that order.

package builder

import "fmt"

const methodPath = "Path"

// Path returns a Constructor linking all cities in index order.
func Path() Constructor {
	return func(s *sketch, cfg builderConfig) error {
		for i := 1; i < s.n; i++ {
			w, err := cfg.weightFn(cfg.rng)
			if err != nil {
				return fmt.Errorf("%s: road %d→%d: %w", methodPath, i-1, i, err)
			}
			s.road(i-1, i, w, cfg)
		}

		return nil
	}
}
