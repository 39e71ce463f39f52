// Package repr renders arbitrary values as bounded, deterministic strings
// for use in log rows and diffs.
package repr

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Limit is the maximum length of a rendered representation.
const Limit = 2000

// Marker is appended to representations cut at the length limit.
const Marker = " ... [truncated]"

// cfg keeps renderings single-line friendly and deterministic. SortKeys
// matters: map iteration order would otherwise leak into diff output.
var cfg = spew.ConfigState{
	Indent:   " ",
	SortKeys: true,
	SpewKeys: true,
	MaxDepth: 8,
}

// Value renders v, clipped to Limit.
func Value(v any) string {
	return Clip(render(v), Limit)
}

// Args renders a positional argument list as "(a, b, ...)", clipped to Limit.
func Args(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}
	return Clip("("+strings.Join(parts, ", ")+")", Limit)
}

// Clip truncates s to limit characters, appending Marker when cut.
func Clip(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + Marker
}

func render(v any) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return strings.TrimRight(cfg.Sprintf("%v", v), "\n")
}

// IsTypedNil returns true if x is nil or a typed nil interface value.
func IsTypedNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
