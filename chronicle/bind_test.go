package chronicle_test

import (
	"testing"

	"github.com/samber/mo"

	"github.com/aponysus/cronista/chronicle"
)

// stubInvoker returns a canned Chronicle and records what it was called with.
type stubInvoker struct {
	label string
	next  *chronicle.Chronicle
	calls int
	args  []any
}

func (s *stubInvoker) Invoke(args ...any) *chronicle.Chronicle {
	s.calls++
	s.args = args
	return s.next
}

func (s *stubInvoker) Label() string { return s.label }

func TestBind_MergesAndRenumbers(t *testing.T) {
	base := chronicle.New(
		mo.Some[any](5),
		[]chronicle.Row{successRow(1, "first")},
		[]string{"OK `first`"},
	)

	// A two-row suffix exercises renumbering beyond the single-step case.
	next := chronicle.New(
		mo.Some[any](7),
		[]chronicle.Row{
			successRow(1, "second"),
			{Ops: 2, Outcome: chronicle.OutcomeFailure, Function: "third", Message: "boom"},
		},
		[]string{"OK `second`", "NOK `third`"},
	)
	stub := &stubInvoker{label: "second", next: next}

	out := base.Bind(stub, "extra")

	if stub.calls != 1 {
		t.Fatalf("invoker calls: got %d, want 1", stub.calls)
	}
	if len(stub.args) != 2 || stub.args[0] != 5 || stub.args[1] != "extra" {
		t.Fatalf("invoker args: got %v", stub.args)
	}

	rows := out.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	for i, r := range rows {
		if r.Ops != i+1 {
			t.Fatalf("row %d ops: got %d, want %d", i, r.Ops, i+1)
		}
	}

	// Every row's Prior must equal the outcome of its predecessor in the
	// final merged order; only the very first row has none.
	if rows[0].Prior != nil {
		t.Fatalf("row 1 prior: got %v, want nil", rows[0].Prior)
	}
	if rows[1].Prior == nil || *rows[1].Prior != chronicle.OutcomeSuccess {
		t.Fatalf("row 2 prior: got %v", rows[1].Prior)
	}
	if rows[2].Prior == nil || *rows[2].Prior != chronicle.OutcomeSuccess {
		t.Fatalf("row 3 prior: got %v", rows[2].Prior)
	}

	lines := out.ReadLog()
	if len(lines) != len(rows) {
		t.Fatalf("lines/rows mismatch: %d vs %d", len(lines), len(rows))
	}

	if v, _ := chronicle.Unveil(out, "value"); v != 7 {
		t.Fatalf("value: got %v, want 7", v)
	}

	// Operands are untouched.
	if len(base.Rows()) != 1 || len(next.Rows()) != 2 {
		t.Fatal("bind mutated an operand")
	}
	if next.Rows()[0].Ops != 1 {
		t.Fatalf("next renumbered in place: %d", next.Rows()[0].Ops)
	}
}

func TestBind_ShortCircuit(t *testing.T) {
	failed := chronicle.New(
		mo.None[any](),
		[]chronicle.Row{{Ops: 1, Outcome: chronicle.OutcomeFailure, Function: "first", Message: "boom"}},
		[]string{"NOK `first`"},
	)
	stub := &stubInvoker{label: "skipped"}

	out := failed.Bind(stub)

	if stub.calls != 0 {
		t.Fatalf("short-circuited invoker was called %d times", stub.calls)
	}

	rows := out.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	last := rows[1]
	if last.Ops != 2 || last.Outcome != chronicle.OutcomeFailure {
		t.Fatalf("synthetic row: %+v", last)
	}
	if last.Message != chronicle.ShortCircuitMessage {
		t.Fatalf("message: got %q", last.Message)
	}
	if last.Function != "skipped" {
		t.Fatalf("function: got %q", last.Function)
	}
	if last.RunTime != 0 || last.StartTime != last.EndTime {
		t.Fatalf("timing: %+v", last)
	}
	if last.Prior == nil || *last.Prior != chronicle.OutcomeFailure {
		t.Fatalf("prior: got %v", last.Prior)
	}
	if last.Inspector != nil || last.Diff != nil {
		t.Fatalf("side channels must be empty: %+v", last)
	}

	if out.IsSuccess() {
		t.Fatal("value must remain absent")
	}
	if len(out.ReadLog()) != 2 {
		t.Fatalf("lines: got %d", len(out.ReadLog()))
	}
}

func TestBind_ShortCircuitOnEmptyChronicle(t *testing.T) {
	empty := chronicle.New(mo.None[any](), nil, nil)
	stub := &stubInvoker{label: "skipped"}

	out := empty.Bind(stub)

	rows := out.Rows()
	if len(rows) != 1 || rows[0].Ops != 1 {
		t.Fatalf("rows: %+v", rows)
	}
	if rows[0].Prior != nil {
		t.Fatalf("prior on first overall row must be nil, got %v", rows[0].Prior)
	}
}

func TestBind_ChainedShortCircuits(t *testing.T) {
	failed := chronicle.New(
		mo.None[any](),
		[]chronicle.Row{{Ops: 1, Outcome: chronicle.OutcomeFailure, Function: "first"}},
		[]string{"NOK `first`"},
	)
	a := &stubInvoker{label: "a"}
	b := &stubInvoker{label: "b"}

	out := failed.Bind(a).Bind(b)

	rows := out.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows: got %d", len(rows))
	}
	for i, r := range rows {
		if r.Ops != i+1 {
			t.Fatalf("ops not contiguous: %+v", rows)
		}
	}
	if a.calls+b.calls != 0 {
		t.Fatal("short-circuited invokers must never run")
	}
	if rows[2].Prior == nil || *rows[2].Prior != chronicle.OutcomeFailure {
		t.Fatalf("prior: %v", rows[2].Prior)
	}
}
