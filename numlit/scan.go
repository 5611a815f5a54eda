package numlit

// ScanInt returns the length of the longest prefix of s that reads as a
// base-10 integer: optional blanks, an optional sign, one or more digits.
// It returns 0 when no digits occur there.
func ScanInt(s string) int {
	i := blanks(s)
	j := sign(s[i:])
	n := asciiDigits(s[i+j:])
	if n == 0 {
		return 0
	}
	return i + j + n
}

// ScanFloat is ScanInt extended with an optional fraction and exponent.
// A bare fraction such as ".5" qualifies.
func ScanFloat(s string) int {
	i := blanks(s)
	j := sign(s[i:])
	d := asciiDigits(s[i+j:])
	f := fract(s[i+j+d:])
	if d+f == 0 {
		return 0
	}
	e := exp(s[i+j+d+f:])
	return i + j + d + f + e
}

func blanks(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func sign(s string) int {
	if len(s) == 0 {
		return 0
	}
	switch s[0] {
	case '+', '-':
		return 1
	default:
		return 0
	}
}

func asciiDigits(s string) int {
	i := 0
	for i < len(s) {
		if !asciiDigit(s[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(s string) int {
	if len(s) < 2 {
		return 0
	}
	if s[0] != '.' {
		return 0
	}
	n := asciiDigits(s[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return 1 + n
}

func exp(s string) int {
	if len(s) < 2 {
		return 0
	}
	switch s[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch s[1] {
	case '+', '-':
		i++
	default:
	}
	n := asciiDigits(s[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
