// Package parser converts free-form textual answers into canonical numbers.
//
// Four grammars are tried in priority order: scientific notation ("4e11",
// "4 × 10^11"), unit suffixes ("8.3 million", "400B"), bare exponent
// shorthand ("11", "10^11"), and plain decimals ("400,000,000,000"). The
// first grammar that matches wins; failures are typed, never panics.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/todmy/oom-trainer/internal/number"
)

// Options controls the permissive grammars.
type Options struct {
	// BareExponent interprets a lone small integer as a power of ten
	// ("11" means 10^11). When false, "11" means eleven.
	BareExponent bool
}

// DefaultOptions enables the bare-exponent convenience grammar.
func DefaultOptions() Options {
	return Options{BareExponent: true}
}

// bareExponentLimit bounds which lone integers read as exponents. Anything
// with two or more digits of magnitude past it is taken literally, so
// "400000000000" stays a plain decimal.
const bareExponentLimit = 100

var (
	// Mantissa then "e" or "x 10 ^", then whatever claims to be an exponent.
	scientificRe = regexp.MustCompile(`^([+-]?[\d.,]+)\s*(?:e\s*|x\s*10\s*\^\s*)(\S*)$`)
	// Optional mantissa followed by a unit word or letter.
	unitRe = regexp.MustCompile(`^([+-]?[\d.,]*)\s*([a-z]+)$`)
	// Explicit power of ten with no mantissa.
	caretRe = regexp.MustCompile(`^10\s*\^\s*(\S+)$`)
	// A well-formed signed integer, for exponent tokens and bare integers.
	integerRe = regexp.MustCompile(`^[+-]?\d+$`)
)

// glyphs folds multiplication sign variants into "x" before matching.
var glyphs = strings.NewReplacer("×", "x", "*", "x")

// unitExponents maps suffix tokens (already lowercased) to powers of ten.
var unitExponents = map[string]int{
	"thousand": 3, "k": 3,
	"million": 6, "m": 6,
	"billion": 9, "b": 9,
	"trillion": 12, "t": 12,
}

// Parse converts text with the default options.
func Parse(text string) (number.Number, error) {
	return ParseWithOptions(text, DefaultOptions())
}

// ParseWithOptions converts text into a canonical number, or returns a
// *ParseError naming the specific failure.
func ParseWithOptions(text string, opts Options) (number.Number, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return fail(text, ErrEmptyInput)
	}
	s = glyphs.Replace(s)

	// Grammar 1: scientific notation.
	if m := scientificRe.FindStringSubmatch(s); m != nil {
		if !integerRe.MatchString(m[2]) {
			return fail(text, ErrMalformedExponent)
		}
		exp, err := strconv.Atoi(m[2])
		if err != nil {
			return fail(text, ErrMalformedExponent)
		}
		return withExponent(text, m[1], exp)
	}

	// Grammar 2: unit suffix, word or letter.
	if m := unitRe.FindStringSubmatch(s); m != nil {
		exp, ok := unitExponents[m[2]]
		if !ok {
			return fail(text, ErrUnrecognizedUnit)
		}
		if m[1] == "" {
			return number.Number{Mantissa: 1, Exponent: exp}, nil
		}
		return withExponent(text, m[1], exp)
	}

	// Grammar 3: bare exponent shorthand. The explicit caret form is always
	// recognized; lone integers only when the option is on and the value is a
	// plausible exponent.
	if m := caretRe.FindStringSubmatch(s); m != nil {
		exp, err := strconv.Atoi(m[1])
		if err != nil {
			return fail(text, ErrMalformedExponent)
		}
		return number.Number{Mantissa: 1, Exponent: exp}, nil
	}
	if opts.BareExponent && integerRe.MatchString(s) {
		if exp, err := strconv.Atoi(s); err == nil && exp > -bareExponentLimit && exp < bareExponentLimit {
			return number.Number{Mantissa: 1, Exponent: exp}, nil
		}
	}

	// Grammar 4: plain decimal, separators stripped.
	cleaned := strings.NewReplacer(",", "", " ", "", "_", "").Replace(s)
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return fromValue(text, v)
	}

	return fail(text, ErrNoGrammarMatched)
}

// withExponent parses a mantissa token and shifts it by exp, renormalizing.
func withExponent(input, mantissaToken string, exp int) (number.Number, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(mantissaToken, ",", ""), 64)
	if err != nil {
		return fail(input, ErrMalformedMantissa)
	}
	n, err := fromValue(input, v)
	if err != nil {
		return number.Number{}, err
	}
	n.Exponent += exp
	return n, nil
}

func fromValue(input string, v float64) (number.Number, error) {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fail(input, ErrMalformedMantissa)
	}
	n, err := number.FromFloat(v)
	if err != nil {
		return fail(input, ErrMalformedMantissa)
	}
	return n, nil
}

func fail(input string, reason error) (number.Number, error) {
	return number.Number{}, &ParseError{Input: input, Err: reason}
}
