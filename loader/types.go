// SPDX-License-Identifier: MIT
// Package loader turns the strict textual city-graph format into a
// *citygraph.Graph, or rejects it with a precise sentinel error.
//
// Input format, in order:
//
//	<cities> <initial> <destination>\n     three signed decimal integers, no leading zeros
//	\n                                     exactly one blank line
//	<row 0>\n … <row cities-1>\n           cities tokens per row, single spaces;
//	                                       each token is an integer or "*" (no road)
//
// Validation is fail-fast and line by line: each line must first match its
// grammar, then its values are range-checked left to right. The first violated
// rule wins; nothing is accumulated or repaired.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrStructureMismatch        - a line does not match its grammar.
//	ErrCitiesOutOfRange         - city count outside [citygraph.MinCities, citygraph.MaxCities].
//	ErrInitialCityInvalid       - initial index outside [0, cities).
//	ErrDestinationCityInvalid   - destination index outside [0, cities).
//	ErrMatrixDimensionMismatch  - wrong token count on a row, missing rows, or extra rows.
//	ErrDistanceOutOfRange       - non-zero diagonal, or off-diagonal weight outside [1,20] and not "*".
//	ErrInternal                 - grammar construction failed; not recoverable.
//	ErrRead                     - the input could not be opened or read.
//
// Every grammar or range error carries the 1-based line number as context.
package loader

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/cityways/internal/logging"
)

// Sentinel errors returned by Load and friends.
var (
	// ErrStructureMismatch indicates that a line fails the expected grammar.
	ErrStructureMismatch = errors.New("loader: structure of the input is invalid")

	// ErrCitiesOutOfRange indicates a city count outside the accepted bounds.
	ErrCitiesOutOfRange = errors.New("loader: number of cities is out of range")

	// ErrInitialCityInvalid indicates that the initial city does not exist.
	ErrInitialCityInvalid = errors.New("loader: initial city does not exist")

	// ErrDestinationCityInvalid indicates that the destination city does not exist.
	ErrDestinationCityInvalid = errors.New("loader: destination city does not exist")

	// ErrMatrixDimensionMismatch indicates the matrix does not have cities×cities cells.
	ErrMatrixDimensionMismatch = errors.New("loader: matrix size does not suit the number of cities")

	// ErrDistanceOutOfRange indicates a matrix cell outside its allowed range.
	ErrDistanceOutOfRange = errors.New("loader: distance between cities is out of range")

	// ErrInternal indicates a failure of the loader itself (grammar compilation).
	ErrInternal = errors.New("loader: internal error")

	// ErrRead indicates that the input could not be opened or read. It is an
	// I/O failure, not a verdict on the input text.
	ErrRead = errors.New("loader: cannot read input")
)

// Options configures the loader.
type Options struct {
	// Logger receives a debug record for every accepted line. Never nil after DefaultOptions.
	Logger *slog.Logger
}

// Option represents a functional option for configuring the loader.
type Option func(*Options)

// WithLogger routes the loader's debug trace to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: logging.NewNop(),
	}
}

// line is one physical input line without its terminator.
type line struct {
	text       string
	terminated bool // true if the line ended with '\n'
}
