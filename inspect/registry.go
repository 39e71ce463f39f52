// Package inspect defines output inspectors: side-channel functions applied
// to a successful result and recorded in the log without ever affecting the
// step's outcome. A registry lets configurations refer to inspectors by name.
package inspect

import (
	"errors"
	"strings"
	"sync"

	"github.com/aponysus/cronista/internal/repr"
)

// Inspector observes a successful output value. Errors (and panics) are
// contained by the recorder and logged in the inspector-result field.
type Inspector func(v any) (any, error)

// Registry is a thread-safe name → Inspector map.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Inspector
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[string]Inspector)}
}

// RegisterE registers an inspector with validation.
// It returns an error if the name is empty, the inspector is nil, or the
// registry is nil.
func (r *Registry) RegisterE(name string, ins Inspector) error {
	if r == nil {
		return errors.New("registry is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("inspector name cannot be empty")
	}
	if repr.IsTypedNil(ins) {
		return errors.New("inspector cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.m == nil {
		r.m = make(map[string]Inspector)
	}
	r.m[name] = ins
	return nil
}

// MustRegister registers an inspector and panics on error.
func (r *Registry) MustRegister(name string, ins Inspector) {
	if err := r.RegisterE(name, ins); err != nil {
		panic("inspect.Registry.MustRegister: " + err.Error())
	}
}

func (r *Registry) Get(name string) (Inspector, bool) {
	if r == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	ins, ok := r.m[name]
	r.mu.RUnlock()
	return ins, ok && ins != nil
}

// Default is the process-wide registry holding the builtin inspectors.
var Default = NewRegistry()
