// Package diff computes input/output differences for recorded calls.
//
// Two renderings are supported: a one-line summary of character-level edit
// counts, and a unified diff with three lines of context.
package diff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mode selects how (and whether) a recorded call computes a diff.
type Mode string

const (
	ModeNone    Mode = "none"
	ModeSummary Mode = "summary"
	ModeFull    Mode = "full"
)

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeNone, ModeSummary, ModeFull:
		return true
	}
	return false
}

// Summarize aligns a and b character-by-character and reports edit counts
// using a fixed sentence template.
func Summarize(a, b string) string {
	dmp := diffmatchpatch.New()
	var ins, dels, eq int
	for _, d := range dmp.DiffMain(a, b, false) {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			ins += n
		case diffmatchpatch.DiffDelete:
			dels += n
		case diffmatchpatch.DiffEqual:
			eq += n
		}
	}
	return fmt.Sprintf("Found differences: %d insertions, %d deletions, %d matches (char units)", ins, dels, eq)
}

// Unified returns a unified diff between a and b as individual lines, with
// three lines of context and fixed "input"/"output" file labels.
func Unified(a, b string) []string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "input",
		ToFile:   "output",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil || text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
