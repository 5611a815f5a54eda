// Package numlit parses base-10 numeric literals permissively, the way the
// C strtol family does: leading blanks and a sign are allowed, parsing
// stops at the first character that cannot extend the number, and trailing
// text is not an error. Results are structured (value, consumed length,
// overflow flag) rather than signaled through a global error code, so
// calls are pure and safe under concurrency.
package numlit

import (
	"errors"
	"strconv"
)

// Int parses a signed integer prefix of s at the given bit width (32 or
// 64). n is the consumed length; n == 0 means s has no numeric prefix.
// overflow reports a prefix whose magnitude exceeds the width, in which
// case v is zero rather than a truncated value.
func Int(s string, bits int) (v int64, n int, overflow bool) {
	n = ScanInt(s)
	if n == 0 {
		return 0, 0, false
	}
	lit := s[blanks(s):n]
	v, err := strconv.ParseInt(lit, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, n, true
		}
		return 0, 0, false
	}
	return v, n, false
}

// Uint is Int for unsigned widths. A minus sign makes the prefix
// malformed rather than wrapping around.
func Uint(s string, bits int) (v uint64, n int, overflow bool) {
	n = ScanInt(s)
	if n == 0 {
		return 0, 0, false
	}
	lit := s[blanks(s):n]
	switch lit[0] {
	case '-':
		return 0, 0, false
	case '+':
		lit = lit[1:]
	}
	v, err := strconv.ParseUint(lit, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, n, true
		}
		return 0, 0, false
	}
	return v, n, false
}

// Float parses a floating prefix of s at the given bit width (32 or 64).
// overflow reports magnitudes outside the width's finite range, mirroring
// ERANGE from strtof/strtod.
func Float(s string, bits int) (v float64, n int, overflow bool) {
	n = ScanFloat(s)
	if n == 0 {
		return 0, 0, false
	}
	lit := s[blanks(s):n]
	v, err := strconv.ParseFloat(lit, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, n, true
		}
		return 0, 0, false
	}
	return v, n, false
}
