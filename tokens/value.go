package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
)

// Value is implemented by every token value. The set of implementations is
// closed, consumers switch on the concrete type or on Kind().
type Value interface {
	// Kind returns discriminator of the value.
	Kind() Kind
	// Validate checks required fields and numeric ranges.
	Validate() error
}

// Units accepted by dimension and duration values.
const (
	UnitPx  = "px"
	UnitRem = "rem"
	UnitMs  = "ms"
	UnitS   = "s"
)

// DefaultColorSpace is used when no color space is requested.
const DefaultColorSpace = "srgb"

// ErrInvalidValue is wrapped by all Validate errors.
var ErrInvalidValue = errors.New("invalid token value")

func invalid(kind Kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidValue, kind, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func unit(v float64) bool {
	return finite(v) && v >= 0 && v <= 1
}

// Color value.
type Color struct {
	ColorSpace string     `json:"colorSpace"`
	Components [3]float64 `json:"components"`
	Alpha      *float64   `json:"alpha,omitempty"`
	Hex        string     `json:"hex,omitempty"`
}

var (
	colorSpaces = []string{
		"srgb", "srgb-linear", "hsl", "hwb", "lab", "lch", "oklab", "oklch",
		"display-p3", "a98-rgb", "prophoto-rgb", "rec2020", "xyz-d65", "xyz-d50",
	}
	hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)
)

func (Color) Kind() Kind { return KindColor }

func (c Color) Validate() error {
	if !slices.Contains(colorSpaces, c.ColorSpace) {
		return invalid(KindColor, "unknown color space %q", c.ColorSpace)
	}
	for i, v := range c.Components {
		if !unit(v) {
			return invalid(KindColor, "component %d (%v) is out of [0,1]", i, v)
		}
	}
	if c.Alpha != nil && !unit(*c.Alpha) {
		return invalid(KindColor, "alpha %v is out of [0,1]", *c.Alpha)
	}
	if c.Hex != "" && !hexPattern.MatchString(c.Hex) {
		return invalid(KindColor, "malformed hex %q", c.Hex)
	}
	return nil
}

// Dimension value, unit is either px or rem.
type Dimension struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (Dimension) Kind() Kind { return KindDimension }

func (d Dimension) Validate() error {
	if !finite(d.Value) {
		return invalid(KindDimension, "value is not finite")
	}
	if d.Unit != UnitPx && d.Unit != UnitRem {
		return invalid(KindDimension, "unit %q is not px or rem", d.Unit)
	}
	return nil
}

// Duration value, unit is either ms or s.
type Duration struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (Duration) Kind() Kind { return KindDuration }

func (d Duration) Validate() error {
	if !finite(d.Value) {
		return invalid(KindDuration, "value is not finite")
	}
	if d.Unit != UnitMs && d.Unit != UnitS {
		return invalid(KindDuration, "unit %q is not ms or s", d.Unit)
	}
	return nil
}

// CubicBezier holds control points [P1x, P1y, P2x, P2y].
type CubicBezier [4]float64

func (CubicBezier) Kind() Kind { return KindCubicBezier }

// Y coordinates are unrestricted to allow overshooting curves.
func (b CubicBezier) Validate() error {
	for i, v := range b {
		if !finite(v) {
			return invalid(KindCubicBezier, "point %d is not finite", i)
		}
	}
	if !unit(b[0]) || !unit(b[2]) {
		return invalid(KindCubicBezier, "x coordinates (%v, %v) must be in [0,1]", b[0], b[2])
	}
	return nil
}

// FontFamily is a single family or an ordered list of fallbacks.
type FontFamily struct {
	Families []string
}

func (FontFamily) Kind() Kind { return KindFontFamily }

func (f FontFamily) Validate() error {
	if len(f.Families) == 0 {
		return invalid(KindFontFamily, "no families")
	}
	for i, name := range f.Families {
		if name == "" {
			return invalid(KindFontFamily, "family %d is empty", i)
		}
	}
	return nil
}

// MarshalJSON encodes a lone family as plain string.
func (f FontFamily) MarshalJSON() ([]byte, error) {
	if len(f.Families) == 1 {
		return json.Marshal(f.Families[0])
	}
	return json.Marshal(f.Families)
}

// FontWeightPresets are the named weights allowed in place of a number.
var FontWeightPresets = []string{
	"thin", "hairline",
	"extra-light", "ultra-light",
	"light",
	"normal", "regular", "book",
	"medium",
	"semi-bold", "demi-bold",
	"bold",
	"extra-bold", "ultra-bold",
	"black", "heavy",
	"extra-black", "ultra-black",
}

// IsFontWeightPreset reports whether name is one of FontWeightPresets.
func IsFontWeightPreset(name string) bool {
	return slices.Contains(FontWeightPresets, name)
}

// FontWeight is either numeric weight or preset name, never both.
type FontWeight struct {
	Number int
	Preset string
}

func (FontWeight) Kind() Kind { return KindFontWeight }

func (w FontWeight) Validate() error {
	switch {
	case w.Preset != "" && w.Number != 0:
		return invalid(KindFontWeight, "both number %d and preset %q are set", w.Number, w.Preset)
	case w.Preset != "":
		if !IsFontWeightPreset(w.Preset) {
			return invalid(KindFontWeight, "unknown preset %q", w.Preset)
		}
	case w.Number < 1 || w.Number > 1000:
		return invalid(KindFontWeight, "weight %d is out of [1,1000]", w.Number)
	}
	return nil
}

func (w FontWeight) MarshalJSON() ([]byte, error) {
	if w.Preset != "" {
		return json.Marshal(w.Preset)
	}
	return json.Marshal(w.Number)
}

// Number is a plain finite number (line heights, ratios, z-indexes).
type Number float64

func (Number) Kind() Kind { return KindNumber }

func (n Number) Validate() error {
	if !finite(float64(n)) {
		return invalid(KindNumber, "value is not finite")
	}
	return nil
}
