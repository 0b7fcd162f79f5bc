// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Write renders rep in the given format.
func Write(w io.Writer, rep Report, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, rep)
	case FormatYAML, FormatJSON:
		d := rep.Distance
		doc := document{Distance: &d, Count: len(rep.Paths), Paths: make([][]int, len(rep.Paths))}
		for i, p := range rep.Paths {
			doc.Paths[i] = []int(p)
		}

		return encode(w, doc, f)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteError renders the fixed message of err in the given format.
func WriteError(w io.Writer, err error, f Format) error {
	switch f {
	case FormatText:
		_, werr := io.WriteString(w, Message(err)+"\n")

		return werr
	case FormatYAML, FormatJSON:
		return encode(w, document{Kind: Kind(err), Error: Message(err)}, f)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func writeText(w io.Writer, rep Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "The shortest path is %d.\n", rep.Distance)
	fmt.Fprintf(bw, "The number of shortest paths is %d:\n", len(rep.Paths))
	for i, p := range rep.Paths {
		fmt.Fprintf(bw, "%d. %s\n", i+1, p)
	}

	return bw.Flush()
}

func encode(w io.Writer, doc document, f Format) error {
	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
