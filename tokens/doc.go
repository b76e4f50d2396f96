// Package tokens defines the design token value model and document tree.
//
// Values form a closed sum type: every concrete value implements [Value] and
// reports its [Kind], whose string form is the `$type` name used in the
// output document. Primitive values:
//
//   - Color: sRGB components in [0,1], optional alpha, hex convenience field
//   - Dimension: px or rem
//   - Duration: ms or s
//   - CubicBezier: [P1x, P1y, P2x, P2y], x coordinates in [0,1]
//   - FontFamily: single name or ordered fallback list
//   - FontWeight: integer in [1,1000] or one of 18 named presets
//   - Number: any finite number
//
// Composite values (Border, Shadow, Transition, StrokeStyle, Gradient and
// Typography) are built from primitives. A [Reference] aliases another token.
//
// The document tree is made of [Group] and [Token] nodes. Children keep
// insertion order, so encoding the same tree twice yields identical bytes.
package tokens
