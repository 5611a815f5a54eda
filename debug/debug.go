// Package debug gates soft accessor diagnostics behind environment
// variables. Diagnostics never alter a returned value; they only note
// probable caller mistakes on stderr when enabled.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Kind  bool
	Range bool
}

var d *debug

func init() {
	d = &debug{}
	d.Kind = boolEnv("JFIELD_DEBUG_KIND")
	d.Range = boolEnv("JFIELD_DEBUG_RANGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Kind reports whether numeric-subkind mismatch notes are enabled
// (JFIELD_DEBUG_KIND).
func Kind() bool {
	return d.Kind
}

// Range reports whether coercion overflow notes are enabled
// (JFIELD_DEBUG_RANGE).
func Range() bool {
	return d.Range
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
