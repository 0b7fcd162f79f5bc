// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a city count below citygraph.MinCities, or a
// constructor parameter below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates a city count above citygraph.MaxCities.
var ErrTooManyVertices = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor or weight policy ran
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
