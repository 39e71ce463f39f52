package record

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aponysus/cronista/diff"
	"github.com/aponysus/cronista/inspect"
	"github.com/aponysus/cronista/observe"
)

// Strictness controls which intercepted signals demote a successful call
// to a failure.
type Strictness int

const (
	StrictErrors   Strictness = 1 // errors only
	StrictWarnings Strictness = 2 // errors + warning diagnostics
	StrictMessages Strictness = 3 // errors + warnings + printed output
)

// clamp keeps out-of-range levels usable instead of failing construction.
func (s Strictness) clamp() Strictness {
	if s < StrictErrors {
		return StrictErrors
	}
	if s > StrictMessages {
		return StrictMessages
	}
	return s
}

// Construction-time errors.
var (
	ErrNotAFunction     = errors.New("fn must be a function")
	ErrInvalidDiffMode  = errors.New(`diff mode must be one of "none", "summary", "full"`)
	ErrUnknownInspector = errors.New("inspector not found in registry")
)

type config struct {
	strict        Strictness
	inspector     inspect.Inspector
	inspectorName string
	diffMode      diff.Mode
	label         string
	observer      observe.Observer
}

// Option configures a Recorded function.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*config)

// Strict sets the strictness level (default StrictErrors).
func Strict(s Strictness) Option {
	return func(c *config) {
		c.strict = s
	}
}

// WithInspector sets the inspector applied to successful outputs.
func WithInspector(ins inspect.Inspector) Option {
	return func(c *config) {
		c.inspector = ins
		c.inspectorName = ""
	}
}

// InspectorNamed resolves the inspector from inspect.Default at construction.
func InspectorNamed(name string) Option {
	return func(c *config) {
		c.inspectorName = name
		c.inspector = nil
	}
}

// DiffMode sets the input/output diff mode (default diff.ModeNone).
func DiffMode(m diff.Mode) Option {
	return func(c *config) {
		c.diffMode = m
	}
}

// Label overrides the display name derived from the function itself.
func Label(name string) Option {
	return func(c *config) {
		c.label = name
	}
}

// WithObserver attaches an observer notified of call starts and rows.
func WithObserver(o observe.Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// New wraps fn as a Recorded function. It fails if fn is not a function,
// the diff mode is unrecognized, or a named inspector cannot be resolved.
func New(fn any, opts ...Option) (*Recorded, error) {
	if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		return nil, fmt.Errorf("record: %w, got %T", ErrNotAFunction, fn)
	}

	cfg := config{strict: StrictErrors, diffMode: diff.ModeNone}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.diffMode.Valid() {
		return nil, fmt.Errorf("record: %w, got %q", ErrInvalidDiffMode, cfg.diffMode)
	}
	if cfg.inspectorName != "" {
		ins, ok := inspect.Default.Get(cfg.inspectorName)
		if !ok {
			return nil, fmt.Errorf("record: %w: %q", ErrUnknownInspector, cfg.inspectorName)
		}
		cfg.inspector = ins
	}
	if cfg.label == "" {
		cfg.label = funcName(fn)
	}

	return &Recorded{
		fn:        reflect.ValueOf(fn),
		label:     cfg.label,
		strict:    cfg.strict.clamp(),
		inspector: cfg.inspector,
		diffMode:  cfg.diffMode,
		observer:  cfg.observer,
	}, nil
}

// MustNew wraps fn and panics on configuration errors.
func MustNew(fn any, opts ...Option) *Recorded {
	r, err := New(fn, opts...)
	if err != nil {
		panic("record.MustNew: " + err.Error())
	}
	return r
}

// Wrap returns a factory holding the given configuration, awaiting the
// function to record. Useful when the same policy applies to many functions.
func Wrap(opts ...Option) func(fn any) (*Recorded, error) {
	return func(fn any) (*Recorded, error) {
		return New(fn, opts...)
	}
}
