package observe_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aponysus/cronista/chronicle"
	"github.com/aponysus/cronista/observe"
)

type countingObserver struct {
	starts int
	rows   int
}

func (c *countingObserver) OnStart(observe.CallInfo) { c.starts++ }

func (c *countingObserver) OnRow(string, chronicle.Row) { c.rows++ }

func TestMultiObserver_FansOut(t *testing.T) {
	obsA := &countingObserver{}
	obsB := &countingObserver{}
	multi := observe.MultiObserver{Observers: []observe.Observer{obsA, nil, obsB}}

	multi.OnStart(observe.CallInfo{Label: "f"})
	multi.OnRow("f", chronicle.Row{Ops: 1})

	for _, obs := range []*countingObserver{obsA, obsB} {
		if obs.starts != 1 {
			t.Fatalf("starts: expected 1, got %d", obs.starts)
		}
		if obs.rows != 1 {
			t.Fatalf("rows: expected 1, got %d", obs.rows)
		}
	}
}

func TestLoggingObserver_Success(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	obs := observe.NewLoggingObserver(zap.New(core))

	obs.OnStart(observe.CallInfo{Label: "sqrt", StartTime: "2026-08-23 10:00:00"})
	obs.OnRow("sqrt", chronicle.Row{
		Ops:      1,
		Outcome:  chronicle.OutcomeSuccess,
		Function: "sqrt",
		RunTime:  0.002,
	})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].Message != "recorded call starting" {
		t.Fatalf("start message: %q", entries[0].Message)
	}
	if entries[1].Message != "recorded call succeeded" {
		t.Fatalf("row message: %q", entries[1].Message)
	}
	if entries[1].Level != zap.InfoLevel {
		t.Fatalf("row level: %v", entries[1].Level)
	}
}

func TestLoggingObserver_Failure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := observe.NewLoggingObserver(zap.New(core))

	obs.OnRow("boom", chronicle.Row{
		Ops:      2,
		Outcome:  chronicle.OutcomeFailure,
		Function: "boom(0)",
		Message:  "runtime error: integer divide by zero",
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Fatalf("level: %v", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["message"] != "runtime error: integer divide by zero" {
		t.Fatalf("message field: %v", fields["message"])
	}
	if fields["outcome"] != "NOK! Failure" {
		t.Fatalf("outcome field: %v", fields["outcome"])
	}
}

func TestLoggingObserver_NilLogger(t *testing.T) {
	obs := observe.NewLoggingObserver(nil)
	// Must be a no-op, not a panic.
	obs.OnStart(observe.CallInfo{Label: "f"})
	obs.OnRow("f", chronicle.Row{Ops: 1})
}
