// Package scoring grades estimates against true values in log-space.
package scoring

import (
	"errors"
	"math"

	"github.com/todmy/oom-trainer/internal/number"
)

var ErrInvalidThresholds = errors.New("thresholds must be positive and exact must not exceed close")

// Tier buckets an estimate by how many orders of magnitude it missed by.
type Tier string

const (
	TierExact Tier = "exact"
	TierClose Tier = "close"
	TierFar   Tier = "far"
)

// Points returns the score awarded for a tier.
func (t Tier) Points() int {
	switch t {
	case TierExact:
		return 100
	case TierClose:
		return 50
	default:
		return 0
	}
}

// Label returns the display string for a tier.
func (t Tier) Label() string {
	switch t {
	case TierExact:
		return "Exact!"
	case TierClose:
		return "Close!"
	default:
		return "Off"
	}
}

// Direction tells which side of the true value an estimate landed on.
type Direction string

const (
	DirectionHigh Direction = "high"
	DirectionLow  Direction = "low"
	DirectionNone Direction = ""
)

// Config holds the tier thresholds in orders of magnitude.
type Config struct {
	ExactThreshold float64
	CloseThreshold float64
}

// DefaultConfig returns the standard thresholds: within half an order of
// magnitude is exact, within one and a half is close.
func DefaultConfig() Config {
	return Config{
		ExactThreshold: 0.5,
		CloseThreshold: 1.5,
	}
}

// Validate reports threshold configurations that cannot tier consistently.
func (c Config) Validate() error {
	if c.ExactThreshold <= 0 || c.CloseThreshold <= 0 || c.ExactThreshold > c.CloseThreshold {
		return ErrInvalidThresholds
	}
	return nil
}

// Result is the grade for a single submission.
type Result struct {
	OOMDistance float64 `json:"oom_distance"`
	Tier        Tier    `json:"tier"`
	// MantissaError is the relative mantissa error, only meaningful (and only
	// set) when the tier is exact.
	MantissaError *float64  `json:"mantissa_error,omitempty"`
	Direction     Direction `json:"direction,omitempty"`
	Points        int       `json:"points"`
}

// Score grades a user estimate against the true value. Pure function:
// identical inputs always produce bit-identical results.
func Score(trueVal, userVal number.Number, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	trueLog := trueVal.Log10()
	userLog := userVal.Log10()
	distance := math.Abs(trueLog - userLog)

	tier := TierFar
	switch {
	case distance < cfg.ExactThreshold:
		tier = TierExact
	case distance < cfg.CloseThreshold:
		tier = TierClose
	}

	result := Result{
		OOMDistance: distance,
		Tier:        tier,
		Points:      tier.Points(),
	}

	switch {
	case userLog > trueLog:
		result.Direction = DirectionHigh
	case userLog < trueLog:
		result.Direction = DirectionLow
	}

	if tier == TierExact {
		me := math.Abs(trueVal.Mantissa-userVal.Mantissa) / trueVal.Mantissa
		result.MantissaError = &me
	}

	return result, nil
}
