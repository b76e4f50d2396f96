package convert

import (
	"math"
	"strconv"
	"strings"

	"dtc/css"
	"dtc/tokens"
)

// FontFamily converts font-family list. Quotes are stripped, a single
// family stays a single family.
func FontFamily(raw string) (tokens.FontFamily, error) {
	var families []string
	for _, part := range css.SplitCommas(raw) {
		name := strings.TrimSpace(css.Unquote(part))
		if name != "" {
			families = append(families, name)
		}
	}
	if len(families) == 0 {
		return tokens.FontFamily{}, fail(tokens.KindFontFamily, raw, "no font families")
	}
	return tokens.FontFamily{Families: families}, nil
}

// relative and legacy weight keywords, checked before presets
var weightKeywords = map[string]int{
	"normal":  400,
	"bold":    700,
	"lighter": 300,
	"bolder":  700,
}

// FontWeight converts font-weight value: integer in [1,1000], CSS keyword
// or one of the named presets. Fractional and exponent forms are rejected.
func FontWeight(raw string) (tokens.FontWeight, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return tokens.FontWeight{}, fail(tokens.KindFontWeight, raw, "empty weight")
	}
	if v, err := strconv.Atoi(s); err == nil {
		return weightNumber(float64(v), raw)
	}
	if n, ok := weightKeywords[s]; ok {
		return tokens.FontWeight{Number: n}, nil
	}
	if tokens.IsFontWeightPreset(s) {
		return tokens.FontWeight{Preset: s}, nil
	}
	return tokens.FontWeight{}, fail(tokens.KindFontWeight, raw, "unknown weight")
}

// FontWeightNumber converts numeric weight.
func FontWeightNumber(n float64) (tokens.FontWeight, error) {
	return weightNumber(n, strconv.FormatFloat(n, 'g', -1, 64))
}

func weightNumber(n float64, raw string) (tokens.FontWeight, error) {
	if n != math.Trunc(n) {
		return tokens.FontWeight{}, fail(tokens.KindFontWeight, raw, "weight must be an integer")
	}
	if n < 1 || n > 1000 {
		return tokens.FontWeight{}, fail(tokens.KindFontWeight, raw, "weight must be in [1,1000]")
	}
	return tokens.FontWeight{Number: int(n)}, nil
}
