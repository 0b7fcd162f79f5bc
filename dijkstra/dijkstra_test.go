// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityways/builder"
	"github.com/katalvlaran/cityways/citygraph"
	"github.com/katalvlaran/cityways/dijkstra"
	"github.com/katalvlaran/cityways/internal/logging"
)

// mustGraph builds a graph from matrix rows written as in the input format.
func mustGraph(t testing.TB, initial, destination int, rows ...string) *citygraph.Graph {
	t.Helper()
	w := make([][]int64, len(rows))
	for i, row := range rows {
		for _, tok := range strings.Fields(row) {
			if tok == "*" {
				w[i] = append(w[i], citygraph.NoEdge)
				continue
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			require.NoError(t, err)
			w[i] = append(w[i], v)
		}
	}
	g, err := citygraph.New(initial, destination, w)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestAllShortest_NilGraph(t *testing.T) {
	res, err := dijkstra.AllShortest(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestWithDirection_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithDirection(dijkstra.Direction(7)) })
}

// ------------------------------------------------------------------------
// 2. Basic distances and predecessors
// ------------------------------------------------------------------------

func TestAllShortest_Chain(t *testing.T) {
	g := mustGraph(t, 0, 4,
		"0 1 * * *",
		"1 0 1 * *",
		"* 1 0 1 *",
		"* * 1 0 1",
		"* * * 1 0",
	)
	res, err := dijkstra.AllShortest(g)
	require.NoError(t, err)

	assert.Equal(t, int64(4), res.Distance())
	assert.Equal(t, 0, res.Source)
	assert.Equal(t, 4, res.Target)
	for i, want := range []int64{0, 1, 2, 3, 4} {
		assert.Equal(t, want, res.States[i].Distance, "city %d", i)
		assert.True(t, res.States[i].Settled, "city %d", i)
	}
	assert.Empty(t, res.States[0].Predecessors)
	assert.Equal(t, []int{0}, res.States[1].Predecessors)
	assert.Equal(t, []int{3}, res.States[4].Predecessors)
}

func TestAllShortest_ShorterRouteReplacesPredecessors(t *testing.T) {
	// 0→4 directly costs 10; 0→1→2→3→4 costs 4.
	g := mustGraph(t, 0, 4,
		"0 1 * * 10",
		"* 0 1 * *",
		"* * 0 1 *",
		"* * * 0 1",
		"* * * * 0",
	)
	res, err := dijkstra.AllShortest(g)
	require.NoError(t, err)

	assert.Equal(t, int64(4), res.Distance())
	assert.Equal(t, []int{3}, res.States[4].Predecessors)
}

// ------------------------------------------------------------------------
// 3. Ties
// ------------------------------------------------------------------------

func TestAllShortest_TieKeepsBothPredecessors(t *testing.T) {
	// Diamond 0→{1,2}→3→4, all unit weights.
	g := mustGraph(t, 0, 4,
		"0 1 1 * *",
		"* 0 * 1 *",
		"* * 0 1 *",
		"* * * 0 1",
		"* * * * 0",
	)
	res, err := dijkstra.AllShortest(g)
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Distance())
	assert.Equal(t, []int{1, 2}, res.States[3].Predecessors, "discovery order: 1 settles before 2")
	assert.Equal(t, []int{3}, res.States[4].Predecessors)
}

func TestAllShortest_TieOrderFollowsSettleOrder(t *testing.T) {
	// City 2 is closer than city 1, so 2 settles first and is recorded first.
	g := mustGraph(t, 0, 3,
		"0 2 1 * *",
		"* 0 * 1 *",
		"* * 0 2 *",
		"* * * 0 *",
		"* * * * 0",
	)
	res, err := dijkstra.AllShortest(g)
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Distance())
	assert.Equal(t, []int{2, 1}, res.States[3].Predecessors)
}

func TestAllShortest_NoDuplicatePredecessors(t *testing.T) {
	// Complete graph with unit weights: every city is a tie candidate for every other.
	rows := make([]string, 7)
	for i := range rows {
		tokens := make([]string, len(rows))
		for j := range tokens {
			tokens[j] = "1"
			if i == j {
				tokens[j] = "0"
			}
		}
		rows[i] = strings.Join(tokens, " ")
	}
	res, err := dijkstra.AllShortest(mustGraph(t, 0, 6, rows...))
	require.NoError(t, err)

	for i, s := range res.States {
		seen := map[int]bool{}
		for _, p := range s.Predecessors {
			assert.False(t, seen[p], "city %d lists predecessor %d twice", i, p)
			seen[p] = true
		}
	}
	assert.Equal(t, []int{0}, res.States[6].Predecessors)
}

// ------------------------------------------------------------------------
// 4. Reachability
// ------------------------------------------------------------------------

func TestAllShortest_Unreachable(t *testing.T) {
	g := mustGraph(t, 0, 4,
		"0 1 * * *",
		"1 0 1 * *",
		"* 1 0 * *",
		"* * * 0 1",
		"* * * 1 0",
	)
	res, err := dijkstra.AllShortest(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestAllShortest_UnreachableCityStaysUnset(t *testing.T) {
	// City 3 is isolated, the destination 4 is not.
	g := mustGraph(t, 0, 4,
		"0 1 * * *",
		"* 0 1 * *",
		"* * 0 * 1",
		"* * * 0 *",
		"* * * * 0",
	)
	res, err := dijkstra.AllShortest(g)
	require.NoError(t, err)

	assert.False(t, res.States[3].Reached())
	assert.False(t, res.States[3].Settled)
	assert.Equal(t, dijkstra.Unreached, res.States[3].Distance)
	assert.Equal(t, int64(3), res.Distance())
}

func TestAllShortest_SourceIsDestination(t *testing.T) {
	g := mustGraph(t, 2, 2,
		"0 * * * *",
		"* 0 * * *",
		"* * 0 * *",
		"* * * 0 *",
		"* * * * 0",
	)
	res, err := dijkstra.AllShortest(g)
	require.NoError(t, err)
	assert.Zero(t, res.Distance())
	assert.Empty(t, res.States[2].Predecessors)
}

// ------------------------------------------------------------------------
// 5. Options
// ------------------------------------------------------------------------

func TestAllShortest_Direction(t *testing.T) {
	// One-way roads 0→1→2→3→4 stored in rows.
	g := mustGraph(t, 0, 4,
		"0 1 * * *",
		"* 0 1 * *",
		"* * 0 1 *",
		"* * * 0 1",
		"* * * * 0",
	)

	res, err := dijkstra.AllShortest(g, dijkstra.WithDirection(dijkstra.Forward))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Distance())

	_, err = dijkstra.AllShortest(g, dijkstra.WithDirection(dijkstra.Transposed))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath, "transposed reading walks the roads backwards")

	// Reversed query succeeds only under the transposed reading.
	back := mustGraph(t, 4, 0,
		"0 1 * * *",
		"* 0 1 * *",
		"* * 0 1 *",
		"* * * 0 1",
		"* * * * 0",
	)
	res, err = dijkstra.AllShortest(back, dijkstra.WithDirection(dijkstra.Transposed))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Distance())
	assert.Equal(t, []int{1}, res.States[0].Predecessors)
}

func TestAllShortest_EarlyStop(t *testing.T) {
	g := mustGraph(t, 0, 1,
		"0 1 * * *",
		"1 0 1 * *",
		"* 1 0 1 *",
		"* * 1 0 1",
		"* * * 1 0",
	)
	res, err := dijkstra.AllShortest(g, dijkstra.WithEarlyStop())
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Distance())
	assert.True(t, res.States[1].Settled)
	assert.False(t, res.States[2].Reached(), "run ended before city 1 was relaxed")
}

func TestAllShortest_LogsPivots(t *testing.T) {
	g := mustGraph(t, 0, 4,
		"0 1 * * *",
		"1 0 1 * *",
		"* 1 0 1 *",
		"* * 1 0 1",
		"* * * 1 0",
	)
	var buf bytes.Buffer
	_, err := dijkstra.AllShortest(g, dijkstra.WithLogger(logging.NewWriter(&buf, slog.LevelDebug)))
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(buf.String(), "pivot settled"))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "forward", dijkstra.Forward.String())
	assert.Equal(t, "transposed", dijkstra.Transposed.String())
	assert.Equal(t, "unknown", dijkstra.Direction(9).String())
}

// ------------------------------------------------------------------------
// 6. Cross-check against the all-pairs closure
// ------------------------------------------------------------------------

func TestAllShortest_MatchesClosure(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := builder.BuildGraph(15, []builder.BuilderOption{
			builder.WithSeed(seed), builder.WithRandomWeights(), builder.WithOneWay(),
		}, builder.RandomSparse(0.3))
		require.NoError(t, err)
		closure := g.Closure()

		for _, dir := range []dijkstra.Direction{dijkstra.Forward, dijkstra.Transposed} {
			res, err := dijkstra.AllShortest(g, dijkstra.WithDirection(dir))
			want := closure[g.Initial()][g.Destination()]
			if dir == dijkstra.Transposed {
				want = closure[g.Destination()][g.Initial()]
			}
			if want == citygraph.NoEdge {
				assert.ErrorIs(t, err, dijkstra.ErrNoPath, "seed %d %s", seed, dir)
				continue
			}
			require.NoError(t, err, "seed %d %s", seed, dir)
			assert.Equal(t, want, res.Distance(), "seed %d %s", seed, dir)
		}
	}
}
