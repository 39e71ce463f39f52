// Package capture provides scoped interception of standard-output writes
// and warning diagnostics for the duration of a single recorded call.
//
// A Scope swaps the process-level os.Stdout for a pipe and installs itself
// as the active warning sink; Close restores both unconditionally. Scopes
// are process-global state: recorded calls are strictly sequential, and
// opening overlapping scopes from multiple goroutines is not supported.
package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	active *Scope
)

// Scope holds the redirected stdout pipe and collected diagnostics.
type Scope struct {
	prevStdout *os.File
	prevActive *Scope
	pipeW      *os.File

	done chan struct{}
	buf  bytes.Buffer

	warnMu   sync.Mutex
	warnings []string

	closed bool
}

// Open redirects os.Stdout into the scope and makes it the active warning
// sink. The caller must Close the scope, typically via defer.
func Open() (*Scope, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("capture: open pipe: %w", err)
	}

	s := &Scope{pipeW: w, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		io.Copy(&s.buf, r) //nolint:errcheck // a broken pipe just ends capture
		r.Close()
	}()

	mu.Lock()
	s.prevStdout = os.Stdout
	s.prevActive = active
	os.Stdout = w
	active = s
	mu.Unlock()
	return s, nil
}

// Close restores os.Stdout and the previous warning sink, then drains the
// pipe. Safe to call more than once.
func (s *Scope) Close() {
	mu.Lock()
	if s.closed {
		mu.Unlock()
		return
	}
	s.closed = true
	os.Stdout = s.prevStdout
	active = s.prevActive
	mu.Unlock()

	s.pipeW.Close()
	<-s.done
}

// Stdout returns everything the call wrote to the standard output stream.
// Valid only after Close.
func (s *Scope) Stdout() string {
	return s.buf.String()
}

// Warnings returns the diagnostics recorded in this scope, in emission order.
func (s *Scope) Warnings() []string {
	s.warnMu.Lock()
	defer s.warnMu.Unlock()
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func (s *Scope) record(msg string) {
	s.warnMu.Lock()
	s.warnings = append(s.warnings, msg)
	s.warnMu.Unlock()
}

// Warn emits a warning diagnostic. Inside a recorded call it is intercepted
// by the active scope; outside one it falls through to stderr.
func Warn(format string, args ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))

	mu.Lock()
	s := active
	mu.Unlock()

	if s != nil {
		s.record(msg)
		return
	}
	fmt.Fprintln(os.Stderr, "warning: "+msg)
}
