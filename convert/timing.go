package convert

import (
	"strings"

	"dtc/css"
	"dtc/tokens"
)

// easing keywords
var timingPresets = map[string]tokens.CubicBezier{
	"linear":      {0, 0, 1, 1},
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

// TimingFunction converts easing keyword or cubic-bezier() to control
// points. X coordinates must be in [0,1], y may overshoot.
func TimingFunction(raw string) (tokens.CubicBezier, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if b, ok := timingPresets[s]; ok {
		return b, nil
	}

	comps := css.Components(s)
	if len(comps) != 1 || !comps[0].IsFunction() || !strings.HasSuffix(comps[0].Text, ")") {
		return tokens.CubicBezier{}, fail(tokens.KindCubicBezier, raw, "expected easing keyword or cubic-bezier()")
	}
	if comps[0].Name != "cubic-bezier" {
		return tokens.CubicBezier{}, unsupported(tokens.KindCubicBezier, raw, comps[0].Name+"() easing")
	}

	var (
		b      tokens.CubicBezier
		n      int
		commas int
	)
	for _, a := range comps[0].Arguments() {
		if a.IsComma() {
			commas++
			continue
		}
		v, unit, ok := a.Number()
		if !ok || unit != "" {
			return tokens.CubicBezier{}, fail(tokens.KindCubicBezier, raw, "argument %q is not a number", a.Text)
		}
		if n == len(b) {
			return tokens.CubicBezier{}, fail(tokens.KindCubicBezier, raw, "too many arguments")
		}
		b[n] = round(v)
		n++
	}
	if n != len(b) || commas != len(b)-1 {
		return tokens.CubicBezier{}, fail(tokens.KindCubicBezier, raw, "expected 4 comma separated numbers")
	}
	if b[0] < 0 || b[0] > 1 || b[2] < 0 || b[2] > 1 {
		return tokens.CubicBezier{}, fail(tokens.KindCubicBezier, raw, "x coordinates must be in [0,1]")
	}
	return b, nil
}
