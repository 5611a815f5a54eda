package jfield_test

import (
	"math"
	"testing"

	"github.com/jfield/jfield"
	"github.com/jfield/jfield/ir"
)

func coerceDoc() *ir.Node {
	return ir.FromMap(map[string]*ir.Node{
		"n":      ir.FromInt(12),
		"f":      ir.FromFloat(1.5),
		"s":      ir.FromString("42"),
		"px":     ir.FromString("42px"),
		"neg":    ir.FromString("-19"),
		"spaced": ir.FromString("  77"),
		"fs":     ir.FromString("2.5e2"),
		"big":    ir.FromString("99999999999999"),
		"huge":   ir.FromString("18446744073709551615"),
		"negu":   ir.FromString("-1"),
		"bad":    ir.FromString("abc"),
		"empty":  ir.FromString(""),
		"flag":   ir.FromBool(true),
		"list":   ir.FromSlice(nil),
	})
}

func TestExtractNumericFromNumber(t *testing.T) {
	doc := coerceDoc()
	if got := jfield.ExtractNumeric(doc, "n", int32(0)); got != 12 {
		t.Errorf("n int32: got %d, want 12", got)
	}
	if got := jfield.ExtractNumeric(doc, "f", float64(0)); got != 1.5 {
		t.Errorf("f float64: got %v, want 1.5", got)
	}
	// number-stored fields go through the same subkind matrix as Extract:
	// an integer-stored number does not satisfy a float request
	if got := jfield.ExtractNumeric(doc, "n", float64(-1)); got != -1 {
		t.Errorf("n float64: got %v, want -1", got)
	}
	if got := jfield.ExtractNumeric(doc, "f", int32(-1)); got != -1 {
		t.Errorf("f int32: got %d, want -1", got)
	}
}

func TestExtractNumericFromString(t *testing.T) {
	doc := coerceDoc()
	if got := jfield.ExtractNumeric(doc, "s", int32(0)); got != 42 {
		t.Errorf("s: got %d, want 42", got)
	}
	if got := jfield.ExtractNumeric(doc, "s", uint64(0)); got != 42 {
		t.Errorf("s uint64: got %d, want 42", got)
	}
	if got := jfield.ExtractNumeric(doc, "neg", int32(0)); got != -19 {
		t.Errorf("neg: got %d, want -19", got)
	}
	if got := jfield.ExtractNumeric(doc, "spaced", int32(0)); got != 77 {
		t.Errorf("spaced: got %d, want 77", got)
	}
	if got := jfield.ExtractNumeric(doc, "fs", float64(0)); got != 250 {
		t.Errorf("fs: got %v, want 250", got)
	}
	if got := jfield.ExtractNumeric(doc, "fs", float32(0)); got != 250 {
		t.Errorf("fs float32: got %v, want 250", got)
	}
}

func TestExtractNumericTrailingGarbage(t *testing.T) {
	doc := coerceDoc()
	// trailing text after a valid prefix is ignored, strtol-style
	if got := jfield.ExtractNumeric(doc, "px", int32(0)); got != 42 {
		t.Errorf("px: got %d, want 42", got)
	}
	// and an integer request stops at the '.': "2.5e2" reads as 2
	if got := jfield.ExtractNumeric(doc, "fs", int32(0)); got != 2 {
		t.Errorf("fs int32: got %d, want 2", got)
	}
}

func TestExtractNumericOverflow(t *testing.T) {
	doc := coerceDoc()
	if got := jfield.ExtractNumeric(doc, "big", int32(-5)); got != -5 {
		t.Errorf("big int32: got %d, want -5 (not a truncated value)", got)
	}
	if got := jfield.ExtractNumeric(doc, "big", int64(0)); got != 99999999999999 {
		t.Errorf("big int64: got %d, want 99999999999999", got)
	}
	if got := jfield.ExtractNumeric(doc, "huge", uint64(0)); got != math.MaxUint64 {
		t.Errorf("huge uint64: got %d, want %d", got, uint64(math.MaxUint64))
	}
	if got := jfield.ExtractNumeric(doc, "huge", int64(-5)); got != -5 {
		t.Errorf("huge int64: got %d, want -5", got)
	}
	if got := jfield.ExtractNumeric(doc, "negu", uint32(3)); got != 3 {
		t.Errorf("negu uint32: got %d, want 3", got)
	}
}

func TestExtractNumericMalformed(t *testing.T) {
	doc := coerceDoc()
	if got := jfield.ExtractNumeric(doc, "bad", int32(-1)); got != -1 {
		t.Errorf("bad: got %d, want -1", got)
	}
	if got := jfield.ExtractNumeric(doc, "bad", float64(-1)); got != -1 {
		t.Errorf("bad float64: got %v, want -1", got)
	}
	if got := jfield.ExtractNumeric(doc, "empty", int32(-1)); got != -1 {
		t.Errorf("empty: got %d, want -1", got)
	}
}

func TestExtractNumericOtherKinds(t *testing.T) {
	doc := coerceDoc()
	if got := jfield.ExtractNumeric(doc, "flag", int32(-1)); got != -1 {
		t.Errorf("flag: got %d, want -1", got)
	}
	if got := jfield.ExtractNumeric(doc, "list", int32(-1)); got != -1 {
		t.Errorf("list: got %d, want -1", got)
	}
	if got := jfield.ExtractNumeric(doc, "missing", int32(-1)); got != -1 {
		t.Errorf("missing: got %d, want -1", got)
	}
}
