package extract

import "dtc/tokens"

// Category of extracted token, decides top level group of the document.
// ENUM(color, spacing, typography, border, animation, shadow)
type TokenType int

// TokenTypes lists token types in document order.
func TokenTypes() []TokenType {
	return []TokenType{
		TokenTypeColor,
		TokenTypeSpacing,
		TokenTypeTypography,
		TokenTypeBorder,
		TokenTypeAnimation,
		TokenTypeShadow,
	}
}

// Kind returns value kind tokens of this type normally have. Animation
// tokens may also carry cubicBezier or transition values.
func (x TokenType) Kind() tokens.Kind {
	switch x {
	case TokenTypeColor:
		return tokens.KindColor
	case TokenTypeSpacing:
		return tokens.KindDimension
	case TokenTypeTypography:
		return tokens.KindTypography
	case TokenTypeBorder:
		return tokens.KindBorder
	case TokenTypeAnimation:
		return tokens.KindDuration
	case TokenTypeShadow:
		return tokens.KindShadow
	default:
		// this should never happen
		panic("unsupported token type")
	}
}

// GroupName is the document key of the group holding tokens of this type.
func (x TokenType) GroupName() string {
	switch x {
	case TokenTypeColor:
		return "colors"
	case TokenTypeSpacing:
		return "spacing"
	case TokenTypeTypography:
		return "typography"
	case TokenTypeBorder:
		return "borders"
	case TokenTypeAnimation:
		return "animations"
	case TokenTypeShadow:
		return "shadows"
	default:
		panic("unsupported token type")
	}
}

// Description of the type group.
func (x TokenType) Description() string {
	switch x {
	case TokenTypeColor:
		return "Color tokens"
	case TokenTypeSpacing:
		return "Spacing and sizing tokens"
	case TokenTypeTypography:
		return "Typography tokens"
	case TokenTypeBorder:
		return "Border tokens"
	case TokenTypeAnimation:
		return "Animation timing tokens"
	case TokenTypeShadow:
		return "Shadow tokens"
	default:
		panic("unsupported token type")
	}
}

// TokenTypeFor picks token type for a value kind, used when extractor does
// not say where the value belongs.
func TokenTypeFor(kind tokens.Kind) (TokenType, bool) {
	switch kind {
	case tokens.KindColor, tokens.KindGradient:
		return TokenTypeColor, true
	case tokens.KindDimension, tokens.KindNumber:
		return TokenTypeSpacing, true
	case tokens.KindTypography, tokens.KindFontFamily, tokens.KindFontWeight:
		return TokenTypeTypography, true
	case tokens.KindBorder, tokens.KindStrokeStyle:
		return TokenTypeBorder, true
	case tokens.KindDuration, tokens.KindCubicBezier, tokens.KindTransition:
		return TokenTypeAnimation, true
	case tokens.KindShadow:
		return TokenTypeShadow, true
	}
	return 0, false
}
