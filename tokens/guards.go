package tokens

// Guards narrow an arbitrary value before serialization. Each one checks the
// concrete type and then required fields and ranges via Validate.

func is[T Value](v any) bool {
	t, ok := v.(T)
	return ok && t.Validate() == nil
}

func IsColorValue(v any) bool       { return is[Color](v) }
func IsDimensionValue(v any) bool   { return is[Dimension](v) }
func IsDurationValue(v any) bool    { return is[Duration](v) }
func IsCubicBezierValue(v any) bool { return is[CubicBezier](v) }
func IsFontFamilyValue(v any) bool  { return is[FontFamily](v) }
func IsFontWeightValue(v any) bool  { return is[FontWeight](v) }
func IsNumberValue(v any) bool      { return is[Number](v) }
func IsBorderValue(v any) bool      { return is[Border](v) }
func IsShadowValue(v any) bool      { return is[Shadow](v) }
func IsTransitionValue(v any) bool  { return is[Transition](v) }
func IsStrokeStyleValue(v any) bool { return is[StrokeStyle](v) }
func IsGradientValue(v any) bool    { return is[Gradient](v) }
func IsTypographyValue(v any) bool  { return is[Typography](v) }
func IsReferenceValue(v any) bool   { return is[Reference](v) }

// IsPrimitiveValue reports whether v is a valid primitive value.
func IsPrimitiveValue(v any) bool {
	val, ok := v.(Value)
	return ok && !val.Kind().IsComposite() && !IsReferenceValue(v) && val.Validate() == nil
}
