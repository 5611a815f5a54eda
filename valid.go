package jfield

import "github.com/jfield/jfield/ir"

// Scalar is the closed set of types a field accessor can be asked for.
// Requesting anything else fails to compile. int and uint alias the 64-bit
// arms of the type matrix.
type Scalar interface {
	int32 | uint32 | int64 | uint64 | int | uint | bool | float32 | float64 | string
}

// Valid reports whether obj has field key and the stored value matches T:
// exact-width integer tags require an integer-stored number in range, bool
// and string require those kinds, and float tags require a float-stored
// number of any width.
func Valid[T Scalar](obj *ir.Node, key string) bool {
	v := ir.Get(obj, key)
	if v == nil {
		return false
	}
	var want T
	switch any(want).(type) {
	case int32:
		return v.IsInt32()
	case uint32:
		return v.IsUint32()
	case int64, int:
		return v.IsInt64()
	case uint64, uint:
		return v.IsUint64()
	case bool:
		return v.Type == ir.BoolType
	case float32, float64:
		return v.IsFloat()
	case string:
		return v.Type == ir.StringType
	}
	return false
}

// ValidArray reports whether obj has field key holding an array.
func ValidArray(obj *ir.Node, key string) bool {
	v := ir.Get(obj, key)
	return v != nil && v.Type == ir.ArrayType
}

// ValidObject reports whether obj has field key holding an object.
func ValidObject(obj *ir.Node, key string) bool {
	v := ir.Get(obj, key)
	return v != nil && v.Type == ir.ObjectType
}
