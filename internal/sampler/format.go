package sampler

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f as the shortest decimal that parses back to f.
// Integral values keep a ".0" suffix and very small or very large magnitudes
// switch to exponent notation (1e-05, 1e+16).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// FormatInt16 renders a PCM sample.
func FormatInt16(v int16) string {
	return strconv.Itoa(int(v))
}
