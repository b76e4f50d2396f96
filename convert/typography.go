package convert

import (
	"regexp"
	"strings"

	"dtc/tokens"
)

// TypographyProperties are raw values of the font properties of one element.
type TypographyProperties struct {
	FontFamily    string `yaml:"font-family" json:"fontFamily"`
	FontSize      string `yaml:"font-size" json:"fontSize"`
	FontWeight    string `yaml:"font-weight" json:"fontWeight"`
	LineHeight    string `yaml:"line-height" json:"lineHeight"`
	LetterSpacing string `yaml:"letter-spacing" json:"letterSpacing"`
}

// Get returns raw value by CSS property name.
func (p TypographyProperties) Get(property string) (string, bool) {
	switch property {
	case "font-family":
		return p.FontFamily, true
	case "font-size":
		return p.FontSize, true
	case "font-weight":
		return p.FontWeight, true
	case "line-height":
		return p.LineHeight, true
	case "letter-spacing":
		return p.LetterSpacing, true
	}
	return "", false
}

// Set stores raw value by CSS property name, unknown properties are ignored.
func (p *TypographyProperties) Set(property, value string) bool {
	switch property {
	case "font-family":
		p.FontFamily = value
	case "font-size":
		p.FontSize = value
	case "font-weight":
		p.FontWeight = value
	case "line-height":
		p.LineHeight = value
	case "letter-spacing":
		p.LetterSpacing = value
	default:
		return false
	}
	return true
}

// normal line height multiplier used by most user agents
const normalLineHeight = 1.2

var lineHeightPattern = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:e[-+]?\d+)?)([a-z%]*)$`)

// Typography combines font properties into typography composite.
// letter-spacing "normal" (or empty) is left out, line-height is always a
// unitless multiplier: percentages are divided by 100 and other units
// are dropped.
func Typography(p TypographyProperties) (tokens.Typography, error) {
	raw := p.String()

	family, err := FontFamily(p.FontFamily)
	if err != nil {
		return tokens.Typography{}, wrap(tokens.KindTypography, raw, err, "font-family")
	}
	size, err := Size(p.FontSize)
	if err != nil {
		return tokens.Typography{}, wrap(tokens.KindTypography, raw, err, "font-size")
	}
	weight, err := FontWeight(p.FontWeight)
	if err != nil {
		return tokens.Typography{}, wrap(tokens.KindTypography, raw, err, "font-weight")
	}
	lh, err := lineHeight(p.LineHeight)
	if err != nil {
		return tokens.Typography{}, wrap(tokens.KindTypography, raw, err, "line-height")
	}

	t := tokens.Typography{
		FontFamily: family,
		FontSize:   size,
		FontWeight: weight,
		LineHeight: lh,
	}

	ls := strings.ToLower(strings.TrimSpace(p.LetterSpacing))
	if ls != "" && ls != "normal" {
		d, err := Size(ls)
		if err != nil {
			return tokens.Typography{}, wrap(tokens.KindTypography, raw, err, "letter-spacing")
		}
		t.LetterSpacing = &d
	}
	return checked(t, raw)
}

func lineHeight(raw string) (tokens.Number, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "normal" {
		return normalLineHeight, nil
	}
	m := lineHeightPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fail(tokens.KindNumber, raw, "expected number")
	}
	v, ok := parseFloat(m[1])
	if !ok {
		return 0, fail(tokens.KindNumber, raw, "malformed number %q", m[1])
	}
	if m[2] == "%" {
		v /= 100
	}
	return tokens.Number(round(v)), nil
}

// String renders properties as declaration list for messages.
func (p TypographyProperties) String() string {
	var parts []string
	for _, name := range []string{"font-family", "font-size", "font-weight", "line-height", "letter-spacing"} {
		if v, _ := p.Get(name); v != "" {
			parts = append(parts, name+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}
