package inspect

import (
	"fmt"
	"reflect"

	"github.com/aponysus/cronista/internal/repr"
)

// Builtin inspector names registered in Default.
const (
	NameLen  = "len"
	NameType = "type"
	NameRepr = "repr"
)

func init() {
	Default.MustRegister(NameLen, Len)
	Default.MustRegister(NameType, Type)
	Default.MustRegister(NameRepr, Repr)
}

// Len reports the element count of strings, slices, arrays, maps, and
// channels; for anything else it falls back to the length of the rendering.
func Len(v any) (any, error) {
	if v == nil {
		return 0, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	}
	return len(repr.Value(v)), nil
}

// Type reports the dynamic type of the value.
func Type(v any) (any, error) {
	return fmt.Sprintf("%T", v), nil
}

// Repr reports the bounded rendering of the value.
func Repr(v any) (any, error) {
	return repr.Value(v), nil
}
