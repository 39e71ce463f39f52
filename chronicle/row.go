package chronicle

import (
	"fmt"
	"time"
)

// Outcome classifies a single recorded step.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
)

func (o Outcome) String() string {
	if o == OutcomeSuccess {
		return "OK! Success"
	}
	return "NOK! Failure"
}

// Row is the structured record of one step in a chain.
type Row struct {
	Ops       int      // 1-based position in the merged chain.
	Outcome   Outcome  // Success or Failure.
	Function  string   // Display label, or a rendered call on failure.
	Message   string   // Failure reason; empty on success.
	StartTime string   // Wall-clock start, second precision.
	EndTime   string   // Wall-clock end, second precision.
	RunTime   float64  // Elapsed seconds (monotonic clock delta).
	Inspector any      // Inspector result, or nil if none ran.
	Diff      any      // Diff rendering, or nil if diffing was off.
	Prior     *Outcome // Outcome of the preceding row; nil for row 1.
}

// Timestamp renders t in the fixed second-precision layout used by rows
// and display lines.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// FormatLine renders the single human-readable line for a step.
func FormatLine(o Outcome, label, startedAt string, elapsed float64) string {
	status := "OK"
	if o != OutcomeSuccess {
		status = "NOK"
	}
	return fmt.Sprintf("%s `%s` at %s (%.3fs)", status, label, startedAt, elapsed)
}
