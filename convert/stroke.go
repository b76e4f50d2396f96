package convert

import (
	"strings"
	"unicode"

	"dtc/tokens"
)

// StrokeStyle converts SVG stroke-dasharray and stroke-linecap values.
// Unitless dash lengths are pixels, empty line cap means butt.
func StrokeStyle(dashArray, lineCap string) (tokens.StrokeStyle, error) {
	raw := strings.TrimSpace(dashArray + " / " + lineCap)

	fields := strings.FieldsFunc(dashArray, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 || strings.EqualFold(fields[0], "none") {
		return tokens.StrokeStyle{}, fail(tokens.KindStrokeStyle, raw, "no dashes")
	}

	var s tokens.StrokeStyle
	for _, f := range fields {
		var (
			d   tokens.Dimension
			err error
		)
		if v, ok := parseFloat(f); ok {
			d = tokens.Dimension{Value: round(v), Unit: tokens.UnitPx}
		} else if d, err = Size(f); err != nil {
			return tokens.StrokeStyle{}, wrap(tokens.KindStrokeStyle, raw, err, "dash %q", f)
		}
		if d.Value < 0 {
			return tokens.StrokeStyle{}, fail(tokens.KindStrokeStyle, raw, "negative dash %q", f)
		}
		s.DashArray = append(s.DashArray, d)
	}

	s.LineCap = tokens.LineCapButt
	if lc := strings.TrimSpace(lineCap); lc != "" {
		v, err := tokens.ParseLineCap(strings.ToLower(lc))
		if err != nil {
			return tokens.StrokeStyle{}, wrap(tokens.KindStrokeStyle, raw, err, "line cap")
		}
		s.LineCap = v
	}
	return checked(s, raw)
}
