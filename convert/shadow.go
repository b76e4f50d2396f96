package convert

import (
	"strings"

	"dtc/css"
	"dtc/tokens"
)

// BoxShadow converts a single outer box-shadow. Color may come first or
// last, 2 to 4 lengths give offsetX, offsetY, blur and spread; missing blur
// and spread are 0px. Multiple shadows, inset and none are rejected.
func BoxShadow(raw string) (tokens.Shadow, error) {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return tokens.Shadow{}, fail(tokens.KindShadow, raw, "empty shadow")
	case strings.EqualFold(s, "none"):
		return tokens.Shadow{}, unsupported(tokens.KindShadow, raw, "none")
	case len(css.SplitCommas(s)) > 1:
		return tokens.Shadow{}, unsupported(tokens.KindShadow, raw, "multiple shadows")
	}

	comps := css.Components(s)
	if len(comps) == 0 {
		return tokens.Shadow{}, fail(tokens.KindShadow, raw, "empty shadow")
	}
	for _, c := range comps {
		if c.Keyword() == "inset" {
			return tokens.Shadow{}, unsupported(tokens.KindShadow, raw, "inset shadow")
		}
	}

	var lengths, color []css.Component
	if IsColorLike(comps[0]) {
		color, lengths = comps[:1], comps[1:]
	} else {
		i := 0
		for i < len(comps) && !IsColorLike(comps[i]) {
			i++
		}
		lengths, color = comps[:i], comps[i:]
	}

	switch {
	case len(color) == 0:
		return tokens.Shadow{}, fail(tokens.KindShadow, raw, "missing color")
	case len(color) > 1:
		return tokens.Shadow{}, fail(tokens.KindShadow, raw, "unexpected %q after color", color[1].Text)
	case len(lengths) < 2 || len(lengths) > 4:
		return tokens.Shadow{}, fail(tokens.KindShadow, raw, "expected 2 to 4 lengths, got %d", len(lengths))
	}

	zero := tokens.Dimension{Value: 0, Unit: tokens.UnitPx}
	dims := [4]tokens.Dimension{zero, zero, zero, zero}
	for i, c := range lengths {
		d, err := Size(c.Text)
		if err != nil {
			return tokens.Shadow{}, wrap(tokens.KindShadow, raw, err, "length %d", i+1)
		}
		dims[i] = d
	}

	col, err := Color(color[0].Text, "")
	if err != nil {
		return tokens.Shadow{}, wrap(tokens.KindShadow, raw, err, "color")
	}

	return checked(tokens.Shadow{
		Color:   col,
		OffsetX: dims[0],
		OffsetY: dims[1],
		Blur:    dims[2],
		Spread:  dims[3],
	}, raw)
}
