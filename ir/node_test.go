package ir

import (
	"math"
	"testing"
)

func TestGet(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromInt(1),
		"b": FromString("x"),
	})
	if v := Get(obj, "a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("a: got %v", v)
	}
	if v := Get(obj, "missing"); v != nil {
		t.Errorf("missing: got %v, want nil", v)
	}
	if v := Get(FromInt(3), "a"); v != nil {
		t.Errorf("non-object: got %v, want nil", v)
	}
	if v := Get(nil, "a"); v != nil {
		t.Errorf("nil: got %v, want nil", v)
	}
}

func TestNumberSubkinds(t *testing.T) {
	i := FromInt(5)
	if !i.IsInt32() || !i.IsUint32() || !i.IsInt64() || !i.IsUint64() {
		t.Errorf("FromInt(5): subkind checks failed")
	}
	if i.IsFloat() {
		t.Errorf("FromInt(5): IsFloat")
	}

	n := FromInt(-7)
	if !n.IsInt32() || !n.IsInt64() {
		t.Errorf("FromInt(-7): signed checks failed")
	}
	if n.IsUint32() || n.IsUint64() {
		t.Errorf("FromInt(-7): unsigned checks passed")
	}

	f := FromFloat(2.5)
	if !f.IsFloat() || !f.IsNumber() {
		t.Errorf("FromFloat: float checks failed")
	}
	if f.IsInt32() || f.IsInt64() || f.IsUint64() {
		t.Errorf("FromFloat: integer checks passed")
	}

	s := FromString("5")
	if s.IsNumber() || s.IsInt32() {
		t.Errorf("FromString: numeric checks passed")
	}
}

func TestFromUintNormalizes(t *testing.T) {
	small := FromUint(5)
	if small.Int64 == nil || *small.Int64 != 5 || small.Uint64 != nil {
		t.Errorf("FromUint(5): not normalized to Int64")
	}
	big := FromUint(math.MaxUint64)
	if big.Uint64 == nil || *big.Uint64 != math.MaxUint64 || big.Int64 != nil {
		t.Errorf("FromUint(MaxUint64): not stored under Uint64")
	}
	if big.IsInt64() {
		t.Errorf("FromUint(MaxUint64): IsInt64")
	}
	if !big.IsUint64() || big.AsUint64() != math.MaxUint64 {
		t.Errorf("FromUint(MaxUint64): uint64 read failed")
	}
}

func TestRangeEdges(t *testing.T) {
	cases := []struct {
		v   int64
		i32 bool
		u32 bool
	}{
		{math.MaxInt32, true, true},
		{math.MaxInt32 + 1, false, true},
		{math.MinInt32, true, false},
		{math.MinInt32 - 1, false, false},
		{math.MaxUint32, false, true},
		{math.MaxUint32 + 1, false, false},
	}
	for _, c := range cases {
		y := FromInt(c.v)
		if got := y.IsInt32(); got != c.i32 {
			t.Errorf("IsInt32(%d): got %t, want %t", c.v, got, c.i32)
		}
		if got := y.IsUint32(); got != c.u32 {
			t.Errorf("IsUint32(%d): got %t, want %t", c.v, got, c.u32)
		}
	}
}

func TestToMap(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromInt(1),
		"b": FromBool(true),
	})
	m := ToMap(obj)
	if len(m) != 2 || m["a"] == nil || m["b"] == nil {
		t.Errorf("ToMap: got %v", m)
	}
	if ToMap(FromInt(1)) != nil {
		t.Errorf("ToMap of non-object: want nil")
	}
}

func TestPath(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{
			FromMap(map[string]*Node{
				"b": FromInt(1),
			}),
		}),
	})
	y := Get(Get(doc, "a").Values[0], "b")
	if got := y.Path(); got != "$.a[0].b" {
		t.Errorf("Path: got %q, want %q", got, "$.a[0].b")
	}
	if got := y.Root(); got != doc {
		t.Errorf("Root: got %v", got)
	}
}

func TestVisit(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"a": FromInt(1),
		"b": FromSlice([]*Node{FromInt(2), FromInt(3)}),
	})
	count := 0
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	// root + a + b + 2 array elements
	if count != 5 {
		t.Errorf("Visit: counted %d nodes, want 5", count)
	}
}
