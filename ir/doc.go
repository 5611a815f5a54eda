// Package ir provides the in-memory representation for structured
// documents: a tree of nodes, each of exactly one kind.
//
// # Overview
//
// All documents (whether decoded from JSON, decoded from YAML, or built
// programmatically) are represented as ir.Node trees. The IR is a simple
// recursive tagged-union structure carrying no position information from
// the input, making it purely semantic. Consumers such as the accessor
// layer only ever read it.
//
// # Node Types
//
// The Type field indicates the node's kind:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, uint64 or float64 subkind)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Keys are string typed and
// appear at most once.
//
// # Numbers
//
// Number values are placed under exactly one of:
//
//   - Int64: integral values representable in 64-bit signed
//   - Uint64: integral values above math.MaxInt64
//   - Float64: floating point values
//
// The split is the number's subkind; the accessor layer's type matrix is
// defined in terms of it (see the Is* predicates). Num optionally retains
// the source lexeme.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField), and Path() renders a JSONPath-style location:
//
//	path := node.Path() // e.g., "$.foo.bar[0]"
//
// Field lookup is by Get:
//
//	v := ir.Get(obj, "name") // nil when absent or obj is not an object
//
// # Thread Safety
//
// Node structures are not synchronized. Concurrent readers are safe as
// long as nothing mutates the tree during the reads.
package ir
