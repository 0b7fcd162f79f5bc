// SPDX-License-Identifier: MIT
// impl_random_sparse.go - RandomSparse(p): Erdős–Rényi-like road sampling.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (else ErrNeedRandSource).
//   - Two-way mode tries unordered pairs {i,j}, i<j; one-way mode tries all
//     ordered pairs (i,j), i≠j.
//
// Determinism: trials in row-major order; for each accepted pair the weight is
// drawn right after the Bernoulli trial, so a fixed seed fixes the graph.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that adds each admissible road with probability p.
func RandomSparse(p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < s.n; i++ {
			start := i + 1
			if cfg.oneWay {
				start = 0
			}
			for j := start; j < s.n; j++ {
				if i == j {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				w, err := cfg.weightFn(cfg.rng)
				if err != nil {
					return fmt.Errorf("%s: road %d→%d: %w", methodRandomSparse, i, j, err)
				}
				s.road(i, j, w, cfg)
			}
		}

		return nil
	}
}

// trial is a Bernoulli draw; p of exactly 0 or 1 needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
