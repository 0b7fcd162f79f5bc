// SPDX-License-Identifier: MIT
// Package report renders the outcome of a cityways run: either the minimal
// distance with every tied route, or the fixed one-line message of an error.
//
// Text output (the canonical format):
//
//	The shortest path is <D>.
//	The number of shortest paths is <K>:
//	1. <n0> -> … -> <destination>
//	…
//	<K>. …
//
// Errors map 1:1 to a fixed line (see Message). YAML and JSON carry the same
// information for machine consumers. Every line is '\n'-terminated, and
// nothing is written for a report that fails validation.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cityways/paths"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text", "yaml"/"yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Report is a successful outcome.
type Report struct {
	Distance int64
	Paths    []paths.Path
}

// document is the YAML/JSON shape of a report or an error.
type document struct {
	Distance *int64  `yaml:"distance,omitempty" json:"distance,omitempty"`
	Count    int     `yaml:"count,omitempty" json:"count,omitempty"`
	Paths    [][]int `yaml:"paths,omitempty,flow" json:"paths,omitempty"`
	Kind     string  `yaml:"kind,omitempty" json:"kind,omitempty"`
	Error    string  `yaml:"error,omitempty" json:"error,omitempty"`
}
