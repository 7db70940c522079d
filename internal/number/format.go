package number

import (
	"fmt"
	"strconv"
)

// unit is a named power of ten used by the word and compact formatters.
type unit struct {
	word     string
	letter   string
	exponent int
}

// Units ordered largest first so formatters pick the biggest fit.
var units = []unit{
	{"trillion", "T", 12},
	{"billion", "B", 9},
	{"million", "M", 6},
	{"thousand", "K", 3},
}

// Words renders a number in word notation, e.g. "8.34 million". The output is
// the exact left-inverse of the parser's unit-suffix grammar: parsing the
// returned string recovers the original number within floating-point
// tolerance. Values outside the named-unit range fall back to notations the
// parser also accepts (plain decimal below one thousand, scientific at one
// quadrillion and above).
func Words(n Number) string {
	if n.Exponent >= 15 || n.Exponent < 0 {
		return Scientific(n)
	}
	for _, u := range units {
		if n.Exponent >= u.exponent {
			scaled := scaleTo(n, u.exponent)
			return strconv.FormatFloat(scaled, 'g', -1, 64) + " " + u.word
		}
	}
	return strconv.FormatFloat(n.Value(), 'g', -1, 64)
}

// Compact renders a number with a letter suffix, e.g. "400B" or "8.34M",
// matching the answer display of the magnitude buttons. Precision shrinks as
// the scaled value grows, mirroring how the buttons step in coarse factors.
func Compact(n Number) string {
	if n.Exponent >= 15 || n.Exponent < 0 {
		return Scientific(n)
	}
	for _, u := range units {
		if n.Exponent >= u.exponent {
			scaled := scaleTo(n, u.exponent)
			switch {
			case scaled >= 100:
				return fmt.Sprintf("%.0f%s", scaled, u.letter)
			case scaled >= 10:
				return fmt.Sprintf("%.1f%s", scaled, u.letter)
			default:
				return fmt.Sprintf("%.2f%s", scaled, u.letter)
			}
		}
	}
	return fmt.Sprintf("%.0f", n.Value())
}

// Scientific renders a number in e-notation, e.g. "4e11".
func Scientific(n Number) string {
	return strconv.FormatFloat(n.Mantissa, 'g', -1, 64) + "e" + strconv.Itoa(n.Exponent)
}

// scaleTo returns the value expressed relative to 10^exponent, computed from
// the canonical fields to avoid an overflow-prone round trip through Value.
func scaleTo(n Number, exponent int) float64 {
	scaled := n.Mantissa
	for e := n.Exponent; e > exponent; e-- {
		scaled *= 10
	}
	return scaled
}
