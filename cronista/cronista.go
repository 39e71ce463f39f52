// Package cronista is the facade package that re-exports the common entry
// points for recording function executions.
//
// A typical chain:
//
//	addOne := cronista.MustRecord(func(x int) int { return x + 1 })
//	double := cronista.MustRecord(func(x int) int { return x * 2 })
//	c := addOne.Invoke(5).Bind(double)
//	v, _ := cronista.Unveil(c, "value") // 12
//	for _, line := range cronista.ReadLog(c) {
//		fmt.Println(line)
//	}
package cronista

import (
	"github.com/aponysus/cronista/chronicle"
	"github.com/aponysus/cronista/record"
)

// Record wraps fn as a recorded function. See record.New for the options
// and failure modes.
func Record(fn any, opts ...record.Option) (*record.Recorded, error) {
	return record.New(fn, opts...)
}

// MustRecord wraps fn and panics on configuration errors.
func MustRecord(fn any, opts ...record.Option) *record.Recorded {
	return record.MustNew(fn, opts...)
}

// Unveil projects one facet of a Chronicle ("value", "rows", "lines").
func Unveil(c *chronicle.Chronicle, selector string) (any, error) {
	return chronicle.Unveil(c, selector)
}

// ReadLog returns the display lines of c.
func ReadLog(c *chronicle.Chronicle) []string {
	return chronicle.ReadLog(c)
}

// CheckInspectors returns the inspector outputs recorded at each step.
func CheckInspectors(c *chronicle.Chronicle) []chronicle.InspectorReport {
	return chronicle.CheckInspectors(c)
}

// CheckDiffs returns the diff renderings recorded at each step.
func CheckDiffs(c *chronicle.Chronicle) []chronicle.DiffReport {
	return chronicle.CheckDiffs(c)
}
