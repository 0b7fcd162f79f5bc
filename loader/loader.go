// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/cityways/citygraph"
)

// Grammar fragments. number forbids leading zeros but allows "-0".
const (
	numberPattern = `-?(?:0|[1-9][0-9]*)`
	tokenPattern  = `(?:` + numberPattern + `|\*)`
	absentToken   = "*"
	tokenSep      = " "
)

// Load reads the whole stream and parses it. A read failure wraps both
// ErrRead and the reader's own error.
func Load(r io.Reader, opts ...Option) (*citygraph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return parse(splitLines(string(data)), opts)
}

// LoadFile opens path and parses its content. Open and read failures wrap
// ErrRead together with the underlying *fs.PathError.
func LoadFile(path string, opts ...Option) (*citygraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// LoadLines parses already split lines. Each element is one line without its
// '\n' terminator and is treated as newline-terminated.
func LoadLines(lines []string, opts ...Option) (*citygraph.Graph, error) {
	ls := make([]line, len(lines))
	for i, s := range lines {
		ls[i] = line{text: s, terminated: true}
	}

	return parse(ls, opts)
}

// splitLines cuts s at every '\n'. A trailing fragment without terminator is
// kept as an unterminated line; an empty trailing fragment is dropped.
func splitLines(s string) []line {
	var out []line
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			out = append(out, line{text: s})
			break
		}
		out = append(out, line{text: s[:i], terminated: true})
		s = s[i+1:]
	}

	return out
}

// parser holds the state of a single load.
type parser struct {
	cfg    Options
	lines  []line
	pos    int            // index of the next unread line
	header *regexp.Regexp // first line grammar, three capture groups
	row    *regexp.Regexp // matrix row grammar, any token count

	cities      int
	initial     int
	destination int
	weights     [][]int64
}

func parse(lines []line, opts []Option) (*citygraph.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{cfg: cfg, lines: lines}

	// 1) Build the grammars; failure here is the loader's fault, not the input's.
	if err := p.compile(); err != nil {
		return nil, err
	}

	// 2) Header, separator, matrix rows, trailer, strictly in this order.
	steps := []func() error{p.readHeader, p.readSeparator, p.readRows, p.readTrailer}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	// 3) Every invariant was already checked line by line; New cannot disagree.
	g, err := citygraph.New(p.initial, p.destination, p.weights)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return g, nil
}

func (p *parser) compile() error {
	var err error
	header := `^(` + numberPattern + `) (` + numberPattern + `) (` + numberPattern + `)$`
	if p.header, err = regexp.Compile(header); err != nil {
		return fmt.Errorf("%w: header grammar: %v", ErrInternal, err)
	}
	row := `^` + tokenPattern + `(?: ` + tokenPattern + `)*$`
	if p.row, err = regexp.Compile(row); err != nil {
		return fmt.Errorf("%w: row grammar: %v", ErrInternal, err)
	}

	return nil
}

// next returns the next line and its 1-based number.
func (p *parser) next() (line, int, bool) {
	if p.pos >= len(p.lines) {
		return line{}, p.pos + 1, false
	}
	l := p.lines[p.pos]
	p.pos++

	return l, p.pos, true
}

func (p *parser) readHeader() error {
	l, no, ok := p.next()
	if !ok || !l.terminated {
		return fmt.Errorf("line %d: header must be a newline-terminated line: %w", no, ErrStructureMismatch)
	}
	m := p.header.FindStringSubmatch(l.text)
	if m == nil {
		return fmt.Errorf("line %d: header %q: %w", no, l.text, ErrStructureMismatch)
	}

	// Ranges are checked on the int64 values; narrowing to int comes after.
	cities, ok := parseInt(m[1])
	if !ok || cities < citygraph.MinCities || cities > citygraph.MaxCities {
		return fmt.Errorf("line %d: cities=%s: %w", no, m[1], ErrCitiesOutOfRange)
	}
	p.cities = int(cities)

	initial, ok := parseInt(m[2])
	if !ok || !cityIndex(initial, cities) {
		return fmt.Errorf("line %d: initial=%s: %w", no, m[2], ErrInitialCityInvalid)
	}
	p.initial = int(initial)

	destination, ok := parseInt(m[3])
	if !ok || !cityIndex(destination, cities) {
		return fmt.Errorf("line %d: destination=%s: %w", no, m[3], ErrDestinationCityInvalid)
	}
	p.destination = int(destination)

	p.cfg.Logger.Debug("header accepted",
		"cities", p.cities, "initial", p.initial, "destination", p.destination)

	return nil
}

func (p *parser) readSeparator() error {
	l, no, ok := p.next()
	if !ok || l.text != "" {
		return fmt.Errorf("line %d: expected a blank line: %w", no, ErrStructureMismatch)
	}

	return nil
}

func (p *parser) readRows() error {
	p.weights = make([][]int64, p.cities)
	for i := 0; i < p.cities; i++ {
		l, no, ok := p.next()
		if !ok {
			return fmt.Errorf("line %d: row %d missing: %w", no, i, ErrMatrixDimensionMismatch)
		}
		row, err := p.parseRow(i, l.text)
		if err != nil {
			return fmt.Errorf("line %d: %w", no, err)
		}
		p.weights[i] = row
		p.cfg.Logger.Debug("row accepted", "row", i)
	}

	return nil
}

// parseRow checks grammar, then token count, then each cell left to right.
func (p *parser) parseRow(i int, text string) ([]int64, error) {
	if !p.row.MatchString(text) {
		return nil, fmt.Errorf("row %d %q: %w", i, text, ErrStructureMismatch)
	}
	tokens := strings.Split(text, tokenSep)
	if len(tokens) != p.cities {
		return nil, fmt.Errorf("row %d has %d tokens, want %d: %w", i, len(tokens), p.cities, ErrMatrixDimensionMismatch)
	}

	row := make([]int64, p.cities)
	for j, tok := range tokens {
		w := citygraph.NoEdge
		if tok != absentToken {
			v, ok := parseInt(tok)
			if !ok {
				return nil, fmt.Errorf("cell [%d][%d]=%s: %w", i, j, tok, ErrDistanceOutOfRange)
			}
			// "-1" is a number here, not the sentinel.
			if v == citygraph.NoEdge {
				return nil, fmt.Errorf("cell [%d][%d]=%s: %w", i, j, tok, ErrDistanceOutOfRange)
			}
			w = v
		}
		if err := citygraph.ValidateWeight(i, j, w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDistanceOutOfRange, err)
		}
		row[j] = w
	}

	return row, nil
}

// readTrailer accepts only blank lines after the matrix.
func (p *parser) readTrailer() error {
	for {
		l, no, ok := p.next()
		if !ok {
			return nil
		}
		if l.text != "" {
			return fmt.Errorf("line %d: unexpected content after matrix: %w", no, ErrMatrixDimensionMismatch)
		}
	}
}

// parseInt parses a grammar-checked decimal token. ok is false on overflow,
// the only failure left once the grammar has matched.
func parseInt(tok string) (int64, bool) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func cityIndex(v, cities int64) bool {
	return v >= 0 && v < cities
}
