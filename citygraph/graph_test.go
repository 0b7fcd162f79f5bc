// SPDX-License-Identifier: MIT
package citygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityways/citygraph"
)

const x = citygraph.NoEdge

// chain5 is the 5-city line 0-1-2-3-4 with unit roads in both directions.
func chain5() [][]int64 {
	return [][]int64{
		{0, 1, x, x, x},
		{1, 0, 1, x, x},
		{x, 1, 0, 1, x},
		{x, x, 1, 0, 1},
		{x, x, x, 1, 0},
	}
}

func TestNew_Valid(t *testing.T) {
	g, err := citygraph.New(0, 4, chain5())
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 0, g.Initial())
	assert.Equal(t, 4, g.Destination())
	assert.Equal(t, int64(1), g.Weight(0, 1))
	assert.Equal(t, citygraph.NoEdge, g.Weight(0, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(3, 3), "diagonal is not a road")
}

func TestNew_Errors(t *testing.T) {
	big := make([][]int64, citygraph.MaxCities+1)
	for i := range big {
		big[i] = make([]int64, len(big))
	}

	tests := []struct {
		name    string
		initial int
		dest    int
		weights [][]int64
		want    error
	}{
		{"too small", 0, 1, chain5()[:4], citygraph.ErrOrderOutOfRange},
		{"too large", 0, 1, big, citygraph.ErrOrderOutOfRange},
		{"bad initial", -1, 1, chain5(), citygraph.ErrCityOutOfRange},
		{"bad destination", 0, 5, chain5(), citygraph.ErrCityOutOfRange},
		{"short row", 0, 4, func() [][]int64 { w := chain5(); w[2] = w[2][:4]; return w }(), citygraph.ErrDimensionMismatch},
		{"diagonal", 0, 4, func() [][]int64 { w := chain5(); w[3][3] = 2; return w }(), citygraph.ErrNonZeroDiagonal},
		{"weight high", 0, 4, func() [][]int64 { w := chain5(); w[0][1] = 21; return w }(), citygraph.ErrWeightOutOfRange},
		{"weight zero", 0, 4, func() [][]int64 { w := chain5(); w[0][1] = 0; return w }(), citygraph.ErrWeightOutOfRange},
		{"weight negative", 0, 4, func() [][]int64 { w := chain5(); w[0][1] = -2; return w }(), citygraph.ErrWeightOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := citygraph.New(tc.initial, tc.dest, tc.weights)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_CopiesMatrix(t *testing.T) {
	w := chain5()
	g, err := citygraph.New(0, 4, w)
	require.NoError(t, err)

	w[0][1] = 20
	assert.Equal(t, int64(1), g.Weight(0, 1))

	row := g.Row(0)
	row[1] = 20
	assert.Equal(t, int64(1), g.Weight(0, 1))
}

func TestPathWeight(t *testing.T) {
	g, err := citygraph.New(0, 4, chain5())
	require.NoError(t, err)

	w, ok := g.PathWeight([]int{0, 1, 2, 3, 4})
	assert.True(t, ok)
	assert.Equal(t, int64(4), w)

	w, ok = g.PathWeight([]int{2})
	assert.True(t, ok)
	assert.Zero(t, w)

	_, ok = g.PathWeight([]int{0, 2})
	assert.False(t, ok, "0 and 2 are not connected")

	_, ok = g.PathWeight([]int{0, 9})
	assert.False(t, ok)

	_, ok = g.PathWeight(nil)
	assert.False(t, ok)
}

func TestValidateWeight(t *testing.T) {
	assert.NoError(t, citygraph.ValidateWeight(1, 1, 0))
	assert.NoError(t, citygraph.ValidateWeight(1, 2, citygraph.NoEdge))
	assert.NoError(t, citygraph.ValidateWeight(1, 2, citygraph.MinDistance))
	assert.NoError(t, citygraph.ValidateWeight(1, 2, citygraph.MaxDistance))
	assert.ErrorIs(t, citygraph.ValidateWeight(1, 1, citygraph.NoEdge), citygraph.ErrNonZeroDiagonal)
	assert.ErrorIs(t, citygraph.ValidateWeight(1, 2, 0), citygraph.ErrWeightOutOfRange)
}

func TestValidateOrderBounds(t *testing.T) {
	assert.NoError(t, citygraph.ValidateOrder(citygraph.MinCities))
	assert.NoError(t, citygraph.ValidateOrder(citygraph.MaxCities))
	assert.ErrorIs(t, citygraph.ValidateOrder(citygraph.MinCities-1), citygraph.ErrOrderOutOfRange)
	assert.ErrorIs(t, citygraph.ValidateOrder(citygraph.MaxCities+1), citygraph.ErrOrderOutOfRange)
}

func TestClosure(t *testing.T) {
	w := chain5()
	w[0][4] = 10 // shortcut that loses to the chain
	w[3][4] = x  // 4 now reachable from 3 only through 0→4
	g, err := citygraph.New(0, 4, w)
	require.NoError(t, err)

	d := g.Closure()
	assert.Equal(t, []int64{0, 1, 2, 3, 10}, d[0])
	assert.Equal(t, int64(13), d[3][4], "3→2→1→0→4")
	assert.Equal(t, int64(1), d[4][3])
	for i := range d {
		assert.Zero(t, d[i][i])
	}
}

func TestClosure_Unreachable(t *testing.T) {
	w := chain5()
	w[2][3], w[3][2] = x, x
	g, err := citygraph.New(0, 4, w)
	require.NoError(t, err)

	d := g.Closure()
	assert.Equal(t, citygraph.NoEdge, d[0][4])
	assert.Equal(t, int64(1), d[3][4])
	assert.Equal(t, int64(2), d[0][2])
}
