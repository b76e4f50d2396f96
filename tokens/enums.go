package tokens

// Kind of a token value, string form is the `$type` of the token.
// ENUM(color, dimension, duration, cubicBezier, fontFamily, fontWeight, number, border, shadow, transition, strokeStyle, gradient, typography)
type Kind int

// Ptr returns pointer to a copy of k, handy for optional `$type` fields.
func (x Kind) Ptr() *Kind {
	return &x
}

// IsComposite is true for values built from other values.
func (x Kind) IsComposite() bool {
	switch x {
	case KindBorder, KindShadow, KindTransition, KindStrokeStyle, KindGradient, KindTypography:
		return true
	default:
		return false
	}
}

// Border line style.
// ENUM(solid, dashed, dotted, double, groove, ridge, outset, inset)
type BorderStyle int

// Stroke line cap.
// ENUM(round, butt, square)
type LineCap int
