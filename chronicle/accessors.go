package chronicle

import (
	"errors"
	"fmt"
)

// ErrBadSelector is returned by Unveil for unrecognized selectors.
var ErrBadSelector = errors.New(`selector must be one of "value", "rows", "lines"`)

// Unveil projects one facet of a Chronicle:
//
//	"value"  the wrapped value, or nil if absent
//	"rows"   the structured log rows ("log_df" is accepted as an alias)
//	"lines"  the display lines ("log" is accepted as an alias)
func Unveil(c *Chronicle, selector string) (any, error) {
	switch selector {
	case "value":
		if v, ok := c.value.Get(); ok {
			return v, nil
		}
		return nil, nil
	case "rows", "log_df":
		return c.Rows(), nil
	case "lines", "log":
		return c.ReadLog(), nil
	}
	return nil, fmt.Errorf("chronicle: %w, got %q", ErrBadSelector, selector)
}

// ReadLog returns the display lines of c.
func ReadLog(c *Chronicle) []string {
	return c.ReadLog()
}

// InspectorReport is the per-row projection returned by CheckInspectors.
type InspectorReport struct {
	Ops       int
	Function  string
	Inspector any
}

// CheckInspectors returns a compact view of inspector outputs across steps.
func CheckInspectors(c *Chronicle) []InspectorReport {
	out := make([]InspectorReport, len(c.rows))
	for i, r := range c.rows {
		out[i] = InspectorReport{Ops: r.Ops, Function: r.Function, Inspector: r.Inspector}
	}
	return out
}

// DiffReport is the per-row projection returned by CheckDiffs.
type DiffReport struct {
	Ops      int
	Function string
	Diff     any
}

// CheckDiffs returns the diff renderings recorded at each step.
func CheckDiffs(c *Chronicle) []DiffReport {
	out := make([]DiffReport, len(c.rows))
	for i, r := range c.rows {
		out[i] = DiffReport{Ops: r.Ops, Function: r.Function, Diff: r.Diff}
	}
	return out
}
