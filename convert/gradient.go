package convert

import (
	"strings"

	"dtc/css"
	"dtc/tokens"
)

var angleUnits = map[string]bool{"deg": true, "rad": true, "grad": true, "turn": true}

// LinearGradient converts linear-gradient() color stops. Direction is
// dropped, stop positions must be percentages; missing positions are spread
// evenly between known neighbours as CSS does.
func LinearGradient(raw string) (tokens.Gradient, error) {
	comps := css.Components(strings.TrimSpace(raw))
	if len(comps) != 1 || !comps[0].IsFunction() || !strings.HasSuffix(comps[0].Text, ")") {
		return nil, fail(tokens.KindGradient, raw, "expected linear-gradient()")
	}
	switch comps[0].Name {
	case "linear-gradient":
	case "repeating-linear-gradient", "radial-gradient", "repeating-radial-gradient", "conic-gradient", "repeating-conic-gradient":
		return nil, unsupported(tokens.KindGradient, raw, comps[0].Name+"()")
	default:
		return nil, fail(tokens.KindGradient, raw, "expected linear-gradient()")
	}

	args := css.SplitCommas(comps[0].Args)
	if len(args) > 0 && isDirection(args[0]) {
		args = args[1:]
	}

	var (
		stops     tokens.Gradient
		positions []*float64
	)
	for _, arg := range args {
		parts := css.Components(arg)
		switch {
		case len(parts) == 0:
			return nil, fail(tokens.KindGradient, raw, "empty color stop")
		case len(parts) == 1 && parts[0].IsNumeric():
			return nil, unsupported(tokens.KindGradient, raw, "color hint")
		case len(parts) > 2:
			return nil, unsupported(tokens.KindGradient, raw, "color stop with two positions")
		}

		col, err := Color(parts[0].Text, "")
		if err != nil {
			return nil, wrap(tokens.KindGradient, raw, err, "stop %d", len(stops)+1)
		}
		var pos *float64
		if len(parts) == 2 {
			v, unit, _ := parts[1].Number()
			if unit != "%" {
				return nil, fail(tokens.KindGradient, raw, "stop position %q must be a percentage", parts[1].Text)
			}
			v /= 100
			pos = &v
		}
		stops = append(stops, tokens.GradientStop{Color: col})
		positions = append(positions, pos)
	}

	if len(stops) < 2 {
		return nil, fail(tokens.KindGradient, raw, "at least 2 color stops required")
	}
	for i, p := range fixupPositions(positions) {
		stops[i].Position = round(p)
	}
	return checked(stops, raw)
}

// isDirection detects "to <side>" and angle arguments.
func isDirection(arg string) bool {
	parts := css.Components(arg)
	if len(parts) == 0 {
		return false
	}
	if parts[0].Keyword() == "to" {
		return true
	}
	_, unit, ok := parts[0].Number()
	return ok && len(parts) == 1 && angleUnits[unit]
}

// fixupPositions resolves missing stop positions: first defaults to 0, last
// to 1, runs of missing ones are interpolated. Positions never decrease and
// are clamped to [0,1].
func fixupPositions(in []*float64) []float64 {
	out := make([]float64, len(in))
	known := make([]bool, len(in))
	for i, p := range in {
		if p != nil {
			out[i], known[i] = *p, true
		}
	}
	if !known[0] {
		out[0], known[0] = 0, true
	}
	if last := len(in) - 1; !known[last] {
		out[last], known[last] = 1, true
	}

	prev := out[0]
	for i := 1; i < len(out); i++ {
		if known[i] {
			out[i] = max(out[i], prev)
			prev = out[i]
		}
	}

	for i := 1; i < len(out); {
		if known[i] {
			i++
			continue
		}
		j := i
		for !known[j] {
			j++
		}
		start, end := out[i-1], out[j]
		step := (end - start) / float64(j-i+1)
		for k := i; k < j; k++ {
			out[k] = start + step*float64(k-i+1)
		}
		i = j
	}

	for i := range out {
		out[i] = min(max(out[i], 0), 1)
	}
	return out
}
