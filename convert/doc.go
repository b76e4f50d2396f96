// Package convert turns raw CSS values into token values.
//
// Every converter is a pure function that maps exactly one CSS
// representation to exactly one tokens.Value or fails with *ParseError
// naming the offending input. Nothing is clamped or defaulted silently:
// out-of-range numbers, unknown units and ambiguous shorthands are rejected.
// All numbers in results are rounded to 3 decimal places.
//
// # Converters
//
//   - Color: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb()/rgba(), hsl()/hsla(),
//     named colors and transparent
//   - Size: px and rem lengths, unitless 0
//   - Time: ms and s durations, unitless 0
//   - TimingFunction: easing keywords and cubic-bezier()
//   - FontFamily, FontWeight
//   - BoxShadow: single non-inset shadow, color first or last
//   - Border: width, style and color in any order
//   - Typography: font properties combined into one composite
//   - Transition, LinearGradient, StrokeStyle, Number
//
// Value dispatches on tokens.Kind for callers that only know the kind of a
// raw string.
package convert
