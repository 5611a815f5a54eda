package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Node is a single value in a document tree. A node has exactly one type
// at a time; which of the value fields below are populated follows Type.
//
// For ObjectType, Fields[i] is the key node for the value at Values[i], so
// there are always as many fields as values. Keys are StringType nodes.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Bool   bool

	// Numbers keep the source lexeme in Num (when known) and exactly one
	// decoded form. Uint64 is populated only for integral values above
	// math.MaxInt64, so the full unsigned 64-bit range stays exact.
	Num     string
	Int64   *int64
	Uint64  *uint64
	Float64 *float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromUint normalizes to the Int64 form when v fits, keeping the invariant
// that Uint64 is only set past math.MaxInt64.
func FromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	return &Node{
		Type:   NumberType,
		Uint64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		y := m[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Get returns the value of field in y, or nil when y is not an object or
// has no such field. Objects here are small, so a linear scan wins over
// building a map.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// IsNumber reports whether y holds a number of any subkind.
func (y *Node) IsNumber() bool {
	return y != nil && y.Type == NumberType
}

// IsInt32 reports an integer-stored number representable in signed 32 bits.
func (y *Node) IsInt32() bool {
	if !y.IsNumber() || y.Int64 == nil {
		return false
	}
	return *y.Int64 >= math.MinInt32 && *y.Int64 <= math.MaxInt32
}

// IsUint32 reports an integer-stored number representable in unsigned 32 bits.
func (y *Node) IsUint32() bool {
	if !y.IsNumber() || y.Int64 == nil {
		return false
	}
	return *y.Int64 >= 0 && *y.Int64 <= math.MaxUint32
}

// IsInt64 reports an integer-stored number representable in signed 64 bits.
// Values above math.MaxInt64 live under Uint64 and do not qualify.
func (y *Node) IsInt64() bool {
	return y.IsNumber() && y.Int64 != nil
}

// IsUint64 reports an integer-stored number representable in unsigned 64 bits.
func (y *Node) IsUint64() bool {
	if !y.IsNumber() {
		return false
	}
	if y.Uint64 != nil {
		return true
	}
	return y.Int64 != nil && *y.Int64 >= 0
}

// IsFloat reports a float-stored number. Integer-stored numbers do not
// qualify; callers wanting either should check IsNumber.
func (y *Node) IsFloat() bool {
	return y.IsNumber() && y.Float64 != nil
}

// AsUint64 reads an integer-stored number as uint64. Only meaningful when
// IsUint64 holds.
func (y *Node) AsUint64() uint64 {
	if y.Uint64 != nil {
		return *y.Uint64
	}
	return uint64(*y.Int64)
}

// Path returns a JSONPath-style path from the root to y, e.g. "$.a.b[0]".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	p := y.Parent.Path()
	if y.Parent.Type == ArrayType {
		return fmt.Sprintf("%s[%d]", p, y.ParentIndex)
	}
	return p + "." + y.ParentField
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks y pre- and post-order. The callback's first return controls
// whether children are visited.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
