// Package number implements the canonical (mantissa, exponent) representation
// shared by problem generation, answer parsing, and scoring.
package number

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNonPositive = errors.New("value must be positive")
	ErrNotFinite   = errors.New("value must be finite")
)

// Number represents value = Mantissa × 10^Exponent in normalized scientific
// form. The mantissa is always in [1.0, 10.0); the exponent may be negative.
type Number struct {
	Mantissa float64 `json:"mantissa"`
	Exponent int     `json:"exponent"`
}

// New builds a Number from an arbitrary positive mantissa and exponent,
// carrying into the exponent until the mantissa is back in [1.0, 10.0).
// Non-positive or non-finite mantissas yield the zero Number; use FromFloat
// when the input needs validation.
func New(mantissa float64, exponent int) Number {
	if mantissa <= 0 || math.IsNaN(mantissa) || math.IsInf(mantissa, 0) {
		return Number{}
	}
	for mantissa >= 10.0 {
		mantissa /= 10.0
		exponent++
	}
	for mantissa < 1.0 {
		mantissa *= 10.0
		exponent--
	}
	return Number{Mantissa: mantissa, Exponent: exponent}
}

// FromFloat converts a raw float into canonical form.
func FromFloat(v float64) (Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, ErrNotFinite
	}
	if v <= 0 {
		return Number{}, ErrNonPositive
	}

	exponent := int(math.Floor(math.Log10(v)))
	mantissa := v / math.Pow(10, float64(exponent))
	return New(mantissa, exponent), nil
}

// Value returns the represented float value. Large exponents may overflow to
// +Inf; the generator's exponent ranges keep values well inside float64 range.
func (n Number) Value() float64 {
	return n.Mantissa * math.Pow(10, float64(n.Exponent))
}

// Log10 returns log10 of the represented value. Well-defined for every
// canonical Number since the mantissa is positive.
func (n Number) Log10() float64 {
	return float64(n.Exponent) + math.Log10(n.Mantissa)
}

// ApproxEqual reports whether two numbers are within tol of each other in
// log-space. Comparing logs avoids overflow for large exponents.
func (n Number) ApproxEqual(other Number, tol float64) bool {
	return math.Abs(n.Log10()-other.Log10()) <= tol
}

func (n Number) String() string {
	return fmt.Sprintf("%ge%d", n.Mantissa, n.Exponent)
}

// Operation is an arithmetic operation applied to two operands.
type Operation string

const (
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Symbol returns the display glyph for the operation.
func (op Operation) Symbol() string {
	if op == Divide {
		return "/"
	}
	return "x"
}

// Apply combines two canonical numbers and renormalizes the result. The
// product of two mantissas in [1,10) lands in [1,100) and the quotient in
// (0.1,10), so New carries at most one step either way.
func (op Operation) Apply(left, right Number) Number {
	if op == Divide {
		return New(left.Mantissa/right.Mantissa, left.Exponent-right.Exponent)
	}
	return New(left.Mantissa*right.Mantissa, left.Exponent+right.Exponent)
}
