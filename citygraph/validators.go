// SPDX-License-Identifier: MIT
// Package: citygraph
//
// validators.go holds the range checks shared by New and the text loader.
// Each validator is pure and returns a wrapped sentinel for errors.Is.

package citygraph

import "fmt"

// ValidateOrder checks that n lies within [MinCities, MaxCities].
// Complexity: O(1).
func ValidateOrder(n int) error {
	if n < MinCities || n > MaxCities {
		return fmt.Errorf("ValidateOrder: n=%d not in [%d,%d]: %w", n, MinCities, MaxCities, ErrOrderOutOfRange)
	}

	return nil
}

// ValidateCity checks that idx addresses a city of a graph with n cities.
// Complexity: O(1).
func ValidateCity(idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("ValidateCity: index=%d not in [0,%d): %w", idx, n, ErrCityOutOfRange)
	}

	return nil
}

// ValidateWeight checks a single matrix cell at (from, to).
//
// Diagonal cells must be exactly zero (ErrNonZeroDiagonal); off-diagonal cells
// must be NoEdge or lie in [MinDistance, MaxDistance] (ErrWeightOutOfRange).
// Complexity: O(1).
func ValidateWeight(from, to int, w int64) error {
	if from == to {
		if w != 0 {
			return fmt.Errorf("ValidateWeight: [%d][%d]=%d: %w", from, to, w, ErrNonZeroDiagonal)
		}

		return nil
	}
	if w == NoEdge {
		return nil
	}
	if w < MinDistance || w > MaxDistance {
		return fmt.Errorf("ValidateWeight: [%d][%d]=%d not in [%d,%d]: %w",
			from, to, w, MinDistance, MaxDistance, ErrWeightOutOfRange)
	}

	return nil
}
