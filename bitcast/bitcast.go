// Package bitcast reinterprets fixed-width values as other types of the
// same width, keeping the bit pattern intact.
//
// The typical use is carrying entropy across APIs with mismatched
// signedness: a framework that only hands out random int32 values can seed
// a generator that wants the full uint32 range without losing bits to a
// value-preserving conversion.
package bitcast

import (
	"fmt"
	"unsafe"
)

// Word is the closed set of fixed-width types Cast reinterprets between.
type Word interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Cast reinterprets v's bits as a To. The two types must have the same
// width; Cast panics otherwise. A cross-width reinterpret is a programming
// error, not a data condition, and Go generics cannot relate the widths of
// two type parameters statically.
func Cast[To, From Word](v From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(v) {
		panic(fmt.Sprintf("bitcast: %T and %T differ in width", v, to))
	}
	*(*From)(unsafe.Pointer(&to)) = v
	return to
}
