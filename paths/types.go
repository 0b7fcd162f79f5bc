// SPDX-License-Identifier: MIT
// Package paths expands the predecessor DAG produced by dijkstra.AllShortest
// into the complete list of minimal-weight routes.
//
// Enumeration walks backwards from the target: the source yields the single
// route [source]; any other city n yields, for each predecessor p in order,
// every route ending at p extended by n. Routes ending at a city depend only
// on that city, so they are computed once per run and shared by all tie chains
// that pass through it.
//
// Ordering: depth-first, leftmost predecessor first, which is the order in
// which ties were discovered. No sorting, no deduplication, no truncation.
//
// Errors:
//
//	ErrNilResult   - a nil *dijkstra.Result was passed.
//	ErrUnreachable - the target has no distance, so there is nothing to expand.
//	ErrBrokenChain - a reached city other than the source has no predecessors.
package paths

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for enumeration.
var (
	// ErrNilResult indicates that a nil result was passed.
	ErrNilResult = errors.New("paths: result is nil")

	// ErrUnreachable indicates that the target city was never reached.
	ErrUnreachable = errors.New("paths: target is unreachable")

	// ErrBrokenChain indicates inconsistent predecessor data in the result.
	ErrBrokenChain = errors.New("paths: predecessor chain does not lead to the source")
)

// arrow separates cities in the textual form of a Path.
const arrow = " -> "

// Path is an ordered sequence of city indices from the source to the target.
// Paths returned by Enumerate are never modified by this package; treat them
// as read-only.
type Path []int

// String renders the path as "0 -> 1 -> 2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, arrow)
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}
