package convert

import (
	"dtc/css"
	"dtc/tokens"
)

var borderWidthKeywords = map[string]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// Border converts border shorthand. Width, style and color may appear in any
// order but each exactly once.
func Border(raw string) (tokens.Border, error) {
	var (
		width, color *css.Component
		style        *tokens.BorderStyle
	)

	comps := css.Components(raw)
	for i := range comps {
		c := &comps[i]
		_, isWidthKeyword := borderWidthKeywords[c.Keyword()]
		switch {
		case c.IsNumeric() || isWidthKeyword:
			if width != nil {
				return tokens.Border{}, fail(tokens.KindBorder, raw, "more than one width")
			}
			width = c
		case c.IsIdent() && isBorderStyle(c.Keyword()):
			if style != nil {
				return tokens.Border{}, fail(tokens.KindBorder, raw, "more than one style")
			}
			bs, _ := tokens.ParseBorderStyle(c.Keyword())
			style = &bs
		default:
			if color != nil {
				return tokens.Border{}, fail(tokens.KindBorder, raw, "unexpected %q", c.Text)
			}
			color = c
		}
	}

	switch {
	case width == nil:
		return tokens.Border{}, fail(tokens.KindBorder, raw, "missing width")
	case style == nil:
		return tokens.Border{}, fail(tokens.KindBorder, raw, "missing style")
	case color == nil:
		return tokens.Border{}, fail(tokens.KindBorder, raw, "missing color")
	}

	var w tokens.Dimension
	if px, ok := borderWidthKeywords[width.Keyword()]; ok {
		w = tokens.Dimension{Value: px, Unit: tokens.UnitPx}
	} else {
		var err error
		if w, err = Size(width.Text); err != nil {
			return tokens.Border{}, wrap(tokens.KindBorder, raw, err, "width")
		}
	}

	col, err := Color(color.Text, "")
	if err != nil {
		return tokens.Border{}, wrap(tokens.KindBorder, raw, err, "color")
	}
	return checked(tokens.Border{Color: col, Width: w, Style: *style}, raw)
}

func isBorderStyle(keyword string) bool {
	_, err := tokens.ParseBorderStyle(keyword)
	return err == nil
}
