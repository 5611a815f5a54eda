package jfield

import (
	"github.com/jfield/jfield/debug"
	"github.com/jfield/jfield/ir"
)

// kindNote flags the suspicious case where a field is numeric but of a
// different subkind than requested. That usually means the caller picked
// the wrong type argument (or let an untyped default pick it), not that
// the data is bad, so it is a stderr note and never a failure.
func kindNote[T Scalar](key string, v *ir.Node) {
	if !debug.Kind() || !v.IsNumber() || !numericTag[T]() {
		return
	}
	var want T
	debug.Logf("jfield: field %q holds a %s number, not %T; wrong type argument?\n",
		key, subkind(v), want)
}

func numericTag[T Scalar]() bool {
	var want T
	switch any(want).(type) {
	case bool, string:
		return false
	}
	return true
}

func subkind(v *ir.Node) string {
	switch {
	case v.Float64 != nil:
		return "float64"
	case v.Uint64 != nil:
		return "uint64"
	default:
		return "int64"
	}
}
