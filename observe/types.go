// Package observe defines lifecycle callbacks for recorded calls.
//
// Observers receive the same structured rows that end up in a Chronicle.
// They are strictly side-channel: an observer cannot alter a step's outcome,
// and short-circuited steps never reach one (their callable is never run).
package observe

import (
	"github.com/aponysus/cronista/chronicle"
)

// CallInfo describes a recorded call as it starts.
type CallInfo struct {
	Label     string // Display label of the recorded function.
	StartTime string // Wall-clock start, second precision.
}

// Observer receives lifecycle callbacks for a single recorded call.
type Observer interface {
	OnStart(info CallInfo)
	OnRow(label string, row chronicle.Row)
}

// MultiObserver fans callbacks out to several observers. Nil entries are
// skipped.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnStart(info CallInfo) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnStart(info)
		}
	}
}

func (m MultiObserver) OnRow(label string, row chronicle.Row) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnRow(label, row)
		}
	}
}
