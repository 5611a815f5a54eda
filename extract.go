package jfield

import "github.com/jfield/jfield/ir"

// Extract reads field key from obj as a T, returning def when the field is
// absent or the stored kind does not match. A float32 request narrows a
// stored float64, accepting precision loss; integer-stored numbers do not
// satisfy float requests, and vice versa.
//
// The type parameter normally comes from def, so an untyped constant
// default selects its Go default type: Extract(obj, "n", 0) reads through
// the int (signed 64-bit) arm. Instantiate explicitly for narrower widths.
func Extract[T Scalar](obj *ir.Node, key string, def T) T {
	v := ir.Get(obj, key)
	if v == nil {
		return def
	}
	out, ok := fromNode[T](v)
	if !ok {
		kindNote[T](key, v)
		return def
	}
	return out
}

// fromNode is the dispatch matrix: one arm per type in the closed set,
// each pairing its kind check with its read.
func fromNode[T Scalar](v *ir.Node) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *int32:
		if v.IsInt32() {
			*p = int32(*v.Int64)
			return out, true
		}
	case *uint32:
		if v.IsUint32() {
			*p = uint32(*v.Int64)
			return out, true
		}
	case *int64:
		if v.IsInt64() {
			*p = *v.Int64
			return out, true
		}
	case *int:
		if v.IsInt64() {
			*p = int(*v.Int64)
			return out, true
		}
	case *uint64:
		if v.IsUint64() {
			*p = v.AsUint64()
			return out, true
		}
	case *uint:
		if v.IsUint64() {
			*p = uint(v.AsUint64())
			return out, true
		}
	case *bool:
		if v.Type == ir.BoolType {
			*p = v.Bool
			return out, true
		}
	case *float32:
		if v.IsFloat() {
			*p = float32(*v.Float64)
			return out, true
		}
	case *float64:
		if v.IsFloat() {
			*p = *v.Float64
			return out, true
		}
	case *string:
		if v.Type == ir.StringType {
			*p = v.String
			return out, true
		}
	}
	return out, false
}
