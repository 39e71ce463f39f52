package record

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/aponysus/cronista/internal/repr"
)

const anonymousLabel = "<anonymous>"

var errType = reflect.TypeOf((*error)(nil)).Elem()

// call invokes the wrapped function reflectively. Panics are contained and
// returned as errors; a non-nil trailing error result is the failure.
func (r *Recorded) call(args []any) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			value = nil
			err = recoveredError(p)
		}
	}()

	in, err := bindArgs(r.fn.Type(), args)
	if err != nil {
		return nil, err
	}
	return mapResults(r.fn.Type(), r.fn.Call(in))
}

// recoveredError shapes a recovered panic value as an error. runtime errors
// already carry their kind in the text; other values get a "panic:" prefix.
func recoveredError(p any) error {
	if e, ok := p.(error); ok {
		return e
	}
	return fmt.Errorf("panic: %v", p)
}

// bindArgs matches positional arguments against the function's parameters,
// converting between numeric kinds where assignment alone cannot.
func bindArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("expected at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("expected %d arguments, got %d", numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var want reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			want = ft.In(numIn - 1).Elem()
		} else {
			want = ft.In(i)
		}
		v, err := conform(a, want, i)
		if err != nil {
			return nil, err
		}
		in[i] = v
	}
	return in, nil
}

func conform(a any, want reflect.Type, idx int) (reflect.Value, error) {
	if a == nil {
		switch want.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("argument %d: cannot pass nil as %s", idx, want)
	}

	av := reflect.ValueOf(a)
	if av.Type().AssignableTo(want) {
		return av, nil
	}
	if numericKind(av.Kind()) && numericKind(want.Kind()) && av.Type().ConvertibleTo(want) {
		return av.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("argument %d: cannot use %T as %s", idx, a, want)
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// mapResults flattens the function's return values: a trailing error result
// signals failure; zero remaining results map to nil, one to itself, and
// several to a []any.
func mapResults(ft reflect.Type, outs []reflect.Value) (any, error) {
	n := ft.NumOut()
	vals := outs
	if n > 0 {
		last := ft.Out(n - 1)
		if last.Kind() == reflect.Interface && last.Implements(errType) {
			if e := outs[n-1]; !e.IsNil() {
				return nil, e.Interface().(error)
			}
			vals = outs[:n-1]
		}
	}

	switch len(vals) {
	case 0:
		return nil, nil
	case 1:
		return vals[0].Interface(), nil
	default:
		many := make([]any, len(vals))
		for i, v := range vals {
			many[i] = v.Interface()
		}
		return many, nil
	}
}

// renderCall is the best-effort rendering of a failed call: the label
// followed by the bound argument list.
func (r *Recorded) renderCall(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = repr.Clip(repr.Value(a), 120)
	}
	return r.label + "(" + strings.Join(parts, ", ") + ")"
}

// funcName derives a display label from the function's symbol, falling back
// to a placeholder for closures and method values.
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return anonymousLabel
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || strings.Contains(name, ".func") {
		return anonymousLabel
	}
	return name
}
