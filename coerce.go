package jfield

import (
	"github.com/jfield/jfield/debug"
	"github.com/jfield/jfield/ir"
	"github.com/jfield/jfield/numlit"
)

// Numeric is the subset of Scalar for which string coercion is defined.
// There is no text-to-bool coercion, and plain string reads are Extract's
// job, so both are excluded at compile time.
type Numeric interface {
	int32 | uint32 | int64 | uint64 | int | uint | float32 | float64
}

// ExtractNumeric reads field key as a T like Extract, but also accepts a
// field stored as a string, parsing a base-10 numeric prefix of it.
// Trailing non-numeric text after a valid prefix is ignored ("42px" reads
// as 42). A prefix that overflows T, or a string with no numeric prefix at
// all, falls back to def.
func ExtractNumeric[T Numeric](obj *ir.Node, key string, def T) T {
	v := ir.Get(obj, key)
	if v == nil {
		return def
	}
	if v.IsNumber() {
		out, ok := fromNode[T](v)
		if !ok {
			kindNote[T](key, v)
			return def
		}
		return out
	}
	if v.Type != ir.StringType {
		return def
	}
	out, ok := fromLit[T](key, v.String)
	if !ok {
		return def
	}
	return out
}

func fromLit[T Numeric](key, s string) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *int32:
		i, n, over := numlit.Int(s, 32)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = int32(i)
	case *uint32:
		u, n, over := numlit.Uint(s, 32)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = uint32(u)
	case *int64:
		i, n, over := numlit.Int(s, 64)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = i
	case *int:
		i, n, over := numlit.Int(s, 64)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = int(i)
	case *uint64:
		u, n, over := numlit.Uint(s, 64)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = u
	case *uint:
		u, n, over := numlit.Uint(s, 64)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = uint(u)
	case *float32:
		f, n, over := numlit.Float(s, 32)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = float32(f)
	case *float64:
		f, n, over := numlit.Float(s, 64)
		if !litOK[T](key, s, n, over) {
			return out, false
		}
		*p = f
	}
	return out, true
}

func litOK[T Numeric](key, s string, n int, over bool) bool {
	if over {
		if debug.Range() {
			var want T
			debug.Logf("jfield: field %q value %q overflows %T\n", key, s, want)
		}
		return false
	}
	return n > 0
}
