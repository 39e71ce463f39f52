// Package record wraps ordinary functions so each invocation yields a
// Chronicle: an optional result paired with a structured execution log
// covering timing, outcome, intercepted diagnostics and output, and the
// optional inspector and diff side channels.
package record

import (
	"reflect"
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/aponysus/cronista/capture"
	"github.com/aponysus/cronista/chronicle"
	"github.com/aponysus/cronista/diff"
	"github.com/aponysus/cronista/inspect"
	"github.com/aponysus/cronista/internal/repr"
	"github.com/aponysus/cronista/observe"
)

// Recorded is a configured wrapper around a function. It is immutable after
// construction; Invoke may be called any number of times.
type Recorded struct {
	fn        reflect.Value
	label     string
	strict    Strictness
	inspector inspect.Inspector
	diffMode  diff.Mode
	observer  observe.Observer
}

// Label returns the display name used in rows and lines.
func (r *Recorded) Label() string { return r.label }

// Invoke executes the wrapped function exactly once with the given
// arguments and returns a single-step Chronicle. Nothing escapes the call:
// errors and panics become failure rows, and anything the function writes
// to stdout or emits via capture.Warn is intercepted and recorded.
func (r *Recorded) Invoke(args ...any) *chronicle.Chronicle {
	startWall := time.Now()
	startedAt := chronicle.Timestamp(startWall)
	if r.observer != nil {
		r.observer.OnStart(observe.CallInfo{Label: r.label, StartTime: startedAt})
	}

	inputRepr := repr.Args(args)

	var (
		value    any
		callErr  error
		warnings []string
		printed  string
	)
	if scope, err := capture.Open(); err == nil {
		func() {
			defer scope.Close()
			value, callErr = r.call(args)
		}()
		warnings = scope.Warnings()
		printed = scope.Stdout()
	} else {
		// Capture unavailable; run uninstrumented rather than refuse the call.
		value, callErr = r.call(args)
	}

	outcome := chronicle.OutcomeSuccess
	message := ""
	if callErr != nil {
		outcome = chronicle.OutcomeFailure
		message = callErr.Error()
		value = nil
	}

	// Strictness demotions apply only to a provisionally successful call,
	// warnings before printed output.
	if outcome == chronicle.OutcomeSuccess && r.strict >= StrictWarnings && len(warnings) > 0 {
		outcome = chronicle.OutcomeFailure
		message = "Warning: " + warnings[0]
	}
	if outcome == chronicle.OutcomeSuccess && r.strict >= StrictMessages {
		if trimmed := strings.TrimSpace(printed); trimmed != "" {
			outcome = chronicle.OutcomeFailure
			message = "Message: " + trimmed
		}
	}

	elapsed := time.Since(startWall).Seconds()
	endedAt := chronicle.Timestamp(time.Now())

	wrapped := mo.None[any]()
	if outcome == chronicle.OutcomeSuccess {
		wrapped = mo.Some[any](value)
	}

	var inspected any
	if outcome == chronicle.OutcomeSuccess && r.inspector != nil {
		inspected = runInspector(r.inspector, value)
	}

	var diffed any
	if r.diffMode != diff.ModeNone {
		outRepr := "<no-output>"
		if outcome == chronicle.OutcomeSuccess {
			outRepr = repr.Value(value)
		}
		switch r.diffMode {
		case diff.ModeSummary:
			diffed = diff.Summarize(inputRepr, outRepr)
		case diff.ModeFull:
			diffed = diff.Unified(inputRepr, outRepr)
		}
	}

	function := r.label
	if outcome == chronicle.OutcomeFailure {
		function = r.renderCall(args)
	}

	row := chronicle.Row{
		Ops:       1,
		Outcome:   outcome,
		Function:  function,
		Message:   message,
		StartTime: startedAt,
		EndTime:   endedAt,
		RunTime:   elapsed,
		Inspector: inspected,
		Diff:      diffed,
	}
	line := chronicle.FormatLine(outcome, r.label, startedAt, elapsed)

	if r.observer != nil {
		r.observer.OnRow(r.label, row)
	}

	return chronicle.New(wrapped, []chronicle.Row{row}, []string{line})
}

// runInspector applies the inspector to a successful output. Inspector
// errors and panics never fail the step; they are rendered into the
// inspector-result field instead.
func runInspector(ins inspect.Inspector, value any) (result any) {
	defer func() {
		if p := recover(); p != nil {
			result = "<inspector error: " + recoveredError(p).Error() + ">"
		}
	}()
	res, err := ins(value)
	if err != nil {
		return "<inspector error: " + err.Error() + ">"
	}
	return res
}
