// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/cityways/citygraph"
)

// Encode renders g in the loader's input format: header, blank line, one
// newline-terminated row per city with "*" for missing roads.
func Encode(g *citygraph.Graph) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(g.Order()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.Initial()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.Destination()))
	b.WriteString("\n\n")

	for i := 0; i < g.Order(); i++ {
		for j, w := range g.Row(i) {
			if j > 0 {
				b.WriteByte(' ')
			}
			if w == citygraph.NoEdge {
				b.WriteByte('*')
				continue
			}
			b.WriteString(strconv.FormatInt(w, 10))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
