// SPDX-License-Identifier: MIT

package report

import (
	"errors"

	"github.com/katalvlaran/cityways/dijkstra"
	"github.com/katalvlaran/cityways/loader"
)

// Kinds outside the fixed table.
const (
	// KindInternal is the kind of any unknown error.
	KindInternal = "internal_error"

	// KindRead is the kind of an input that could not be read. Its Message is
	// the internal-error line; callers normally fail instead of reporting it.
	KindRead = "read_error"
)

const internalMessage = "Sorry, it seems like there is an error in the program"

// messageTable lists every known error with its stable kind and fixed line.
var messageTable = []struct {
	err  error
	kind string
	text string
}{
	{loader.ErrCitiesOutOfRange, "cities_out_of_range", "Number of cities is out of range"},
	{loader.ErrInitialCityInvalid, "initial_city_invalid", "Chosen initial city does not exist"},
	{loader.ErrDestinationCityInvalid, "destination_city_invalid", "Chosen destination city does not exist"},
	{loader.ErrMatrixDimensionMismatch, "matrix_dimension_mismatch", "Matrix size does not suit to the number of cities"},
	{loader.ErrDistanceOutOfRange, "distance_out_of_range", "The distance between some cities is out of range"},
	{dijkstra.ErrNoPath, "no_path", "Initial and destination cities are not connected"},
	{loader.ErrStructureMismatch, "structure_mismatch", "Structure of the input is invalid"},
	{loader.ErrInternal, KindInternal, internalMessage},
}

// Message returns the fixed line (without newline) for err.
// Unknown errors, including nil, yield the internal-error line.
func Message(err error) string {
	_, text := lookup(err)

	return text
}

// Kind returns a stable snake_case identifier for err, suitable for metric
// labels; read failures yield KindRead and unknown errors KindInternal.
func Kind(err error) string {
	kind, _ := lookup(err)

	return kind
}

func lookup(err error) (string, string) {
	if errors.Is(err, loader.ErrRead) {
		return KindRead, internalMessage
	}
	if err != nil {
		for _, m := range messageTable {
			if errors.Is(err, m.err) {
				return m.kind, m.text
			}
		}
	}

	return KindInternal, internalMessage
}

// IsDomain reports whether err is a verdict on the input (one of the fixed
// table rows other than the internal error) rather than a failure.
func IsDomain(err error) bool {
	kind := Kind(err)

	return kind != KindInternal && kind != KindRead
}
