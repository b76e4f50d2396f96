package convert

import (
	"strings"

	"dtc/tokens"
)

// Value converts raw CSS string to value of the requested kind. Stroke style
// is written as "<dasharray> [/ <linecap>]". Typography needs several
// properties and has to be converted with Typography.
func Value(kind tokens.Kind, raw string) (tokens.Value, error) {
	switch kind {
	case tokens.KindColor:
		return Color(raw, "")
	case tokens.KindDimension:
		return Size(raw)
	case tokens.KindDuration:
		return Time(raw)
	case tokens.KindCubicBezier:
		return TimingFunction(raw)
	case tokens.KindFontFamily:
		return FontFamily(raw)
	case tokens.KindFontWeight:
		return FontWeight(raw)
	case tokens.KindNumber:
		return Number(raw)
	case tokens.KindBorder:
		return Border(raw)
	case tokens.KindShadow:
		return BoxShadow(raw)
	case tokens.KindTransition:
		return Transition(raw)
	case tokens.KindGradient:
		return LinearGradient(raw)
	case tokens.KindStrokeStyle:
		dashes, lineCap, _ := strings.Cut(raw, "/")
		return StrokeStyle(dashes, lineCap)
	case tokens.KindTypography:
		return nil, unsupported(kind, raw, "typography is built from separate properties")
	}
	return nil, fail(kind, raw, "unknown kind")
}
