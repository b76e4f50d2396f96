package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"dtc/tokens"
)

const precision = 1000

// round keeps 3 decimals and normalizes negative zero.
func round(v float64) float64 {
	r := math.Round(v*precision) / precision
	if r == 0 {
		return 0
	}
	return r
}

// parseFloat accepts finite numbers only.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var (
	sizePattern = regexp.MustCompile(`^([-+\d.]+)(px|rem)$`)
	timePattern = regexp.MustCompile(`^([-+\d.]+)(ms|s)$`)
)

// Size converts CSS length to dimension. Only px and rem are representable,
// other units (em, %, vh...) are rejected. Unitless zero is 0px.
func Size(raw string) (tokens.Dimension, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := parseFloat(s); ok {
		if v != 0 {
			return tokens.Dimension{}, fail(tokens.KindDimension, raw, "unitless length")
		}
		return tokens.Dimension{Value: 0, Unit: tokens.UnitPx}, nil
	}
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return tokens.Dimension{}, fail(tokens.KindDimension, raw, "expected number with px or rem unit")
	}
	v, ok := parseFloat(m[1])
	if !ok {
		return tokens.Dimension{}, fail(tokens.KindDimension, raw, "malformed number %q", m[1])
	}
	return tokens.Dimension{Value: round(v), Unit: m[2]}, nil
}

// Time converts CSS time to duration. Unitless zero is 0ms.
func Time(raw string) (tokens.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := parseFloat(s); ok {
		if v != 0 {
			return tokens.Duration{}, fail(tokens.KindDuration, raw, "unitless time")
		}
		return tokens.Duration{Value: 0, Unit: tokens.UnitMs}, nil
	}
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return tokens.Duration{}, fail(tokens.KindDuration, raw, "expected number with ms or s unit")
	}
	v, ok := parseFloat(m[1])
	if !ok {
		return tokens.Duration{}, fail(tokens.KindDuration, raw, "malformed number %q", m[1])
	}
	return tokens.Duration{Value: round(v), Unit: m[2]}, nil
}

// Number converts plain finite number.
func Number(raw string) (tokens.Number, error) {
	v, ok := parseFloat(strings.TrimSpace(raw))
	if !ok {
		return 0, fail(tokens.KindNumber, raw, "not a finite number")
	}
	return tokens.Number(round(v)), nil
}
