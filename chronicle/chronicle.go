// Package chronicle holds the result container produced by recorded calls:
// an optional value paired with the accumulated execution log, plus the
// composition law that chains recorded calls together.
package chronicle

import (
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/aponysus/cronista/internal/repr"
)

// ShortCircuitMessage is recorded for steps skipped after an earlier failure.
const ShortCircuitMessage = "Short-circuited due to Nothing"

// Invoker is the recorded-function contract Bind needs: invoking it yields
// a fresh Chronicle, and Label names it in short-circuit rows.
// record.Recorded satisfies it.
type Invoker interface {
	Invoke(args ...any) *Chronicle
	Label() string
}

// Chronicle pairs the latest optional value with the ordered log of every
// step that produced it. Chronicles are immutable: Bind returns a new one
// and never mutates its operands.
type Chronicle struct {
	value mo.Option[any]
	rows  []Row
	lines []string
}

// New builds a Chronicle from a value and parallel row/line sequences.
// The slices are copied.
func New(value mo.Option[any], rows []Row, lines []string) *Chronicle {
	c := &Chronicle{value: value}
	c.rows = append(c.rows, rows...)
	c.lines = append(c.lines, lines...)
	return c
}

// Value returns the wrapped optional value.
func (c *Chronicle) Value() mo.Option[any] { return c.value }

// IsSuccess reports whether the value is present, i.e. every step so far
// succeeded.
func (c *Chronicle) IsSuccess() bool { return c.value.IsPresent() }

// Rows returns a copy of the structured log rows in chain order.
func (c *Chronicle) Rows() []Row {
	out := make([]Row, len(c.rows))
	copy(out, c.rows)
	return out
}

// ReadLog returns a copy of the display lines, one per row.
func (c *Chronicle) ReadLog() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Bind chains another recorded function onto this Chronicle.
//
// If the current value is absent the next function is not invoked; a
// synthetic failure row explaining the short circuit is appended instead.
// Otherwise next is invoked with the current value as its first argument
// followed by extra, and the resulting Chronicle's rows are renumbered and
// merged after this one's.
func (c *Chronicle) Bind(next Invoker, extra ...any) *Chronicle {
	nextOps := len(c.rows) + 1

	if !c.IsSuccess() {
		now := Timestamp(time.Now())
		row := Row{
			Ops:       nextOps,
			Outcome:   OutcomeFailure,
			Function:  next.Label(),
			Message:   ShortCircuitMessage,
			StartTime: now,
			EndTime:   now,
			Prior:     c.lastOutcome(),
		}
		line := FormatLine(OutcomeFailure, next.Label(), now, 0)
		return &Chronicle{
			value: c.value,
			rows:  appendRows(c.rows, row),
			lines: appendLines(c.lines, line),
		}
	}

	v := c.value.MustGet()
	args := make([]any, 0, 1+len(extra))
	args = append(args, v)
	args = append(args, extra...)
	nextC := next.Invoke(args...)

	rows := make([]Row, 0, len(c.rows)+len(nextC.rows))
	rows = append(rows, c.rows...)
	prior := c.lastOutcome()
	for i, r := range nextC.rows {
		r.Ops = nextOps + i
		r.Prior = prior
		rows = append(rows, r)
		o := r.Outcome
		prior = &o
	}

	lines := make([]string, 0, len(c.lines)+len(nextC.lines))
	lines = append(lines, c.lines...)
	lines = append(lines, nextC.lines...)

	return &Chronicle{value: nextC.value, rows: rows, lines: lines}
}

func (c *Chronicle) lastOutcome() *Outcome {
	if len(c.rows) == 0 {
		return nil
	}
	o := c.rows[len(c.rows)-1].Outcome
	return &o
}

// String renders the two-part display: a success/failure header with the
// wrapped value, then the accessor hint footer.
func (c *Chronicle) String() string {
	var b strings.Builder
	if c.IsSuccess() {
		b.WriteString("Success:\n")
		b.WriteString("---------------\n")
		b.WriteString("Present(" + repr.Value(c.value.MustGet()) + ")\n")
	} else {
		b.WriteString("Failure:\n")
		b.WriteString("---------------\n")
		b.WriteString("Absent\n")
	}
	b.WriteString("\n---------------\n")
	b.WriteString("This is a Chronicle.\n")
	b.WriteString("Retrieve the value with Unveil(c, \"value\").\n")
	b.WriteString("Read the log with ReadLog(c).\n")
	return b.String()
}

func appendRows(rows []Row, extra ...Row) []Row {
	out := make([]Row, 0, len(rows)+len(extra))
	out = append(out, rows...)
	return append(out, extra...)
}

func appendLines(lines []string, extra ...string) []string {
	out := make([]string, 0, len(lines)+len(extra))
	out = append(out, lines...)
	return append(out, extra...)
}
