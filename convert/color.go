package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"dtc/css"
	"dtc/tokens"
)

// Color converts CSS color to color value in the requested color space
// (srgb when empty). Hex form sets alpha only when the input has one,
// functional forms always set it.
func Color(raw, colorSpace string) (tokens.Color, error) {
	if colorSpace == "" {
		colorSpace = tokens.DefaultColorSpace
	}
	s := strings.ToLower(strings.TrimSpace(raw))

	var (
		c   tokens.Color
		err error
	)
	switch {
	case s == "":
		return tokens.Color{}, fail(tokens.KindColor, raw, "empty color")
	case strings.HasPrefix(s, "#"):
		c, err = hexColor(raw, s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		c, err = rgbColor(raw, s)
	case strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla("):
		c, err = hslColor(raw, s)
	default:
		hex, ok := namedColors[s]
		if !ok {
			return tokens.Color{}, fail(tokens.KindColor, raw, "unrecognized color")
		}
		c, err = hexColor(raw, hex[1:])
	}
	if err != nil {
		return tokens.Color{}, err
	}
	c.ColorSpace = colorSpace
	return checked(c, raw)
}

// IsColorLike reports whether CSS component looks like a color without
// fully parsing it.
func IsColorLike(c css.Component) bool {
	switch {
	case c.IsHash():
		return true
	case c.IsFunction():
		switch c.Name {
		case "rgb", "rgba", "hsl", "hsla":
			return true
		}
	case c.IsIdent():
		_, ok := namedColors[c.Keyword()]
		return ok
	}
	return false
}

func hexColor(raw, digits string) (tokens.Color, error) {
	switch len(digits) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		digits = sb.String()
	case 6, 8:
	default:
		return tokens.Color{}, fail(tokens.KindColor, raw, "hex color must have 3, 4, 6 or 8 digits, got %d", len(digits))
	}

	var channels [4]uint8
	for i := 0; i < len(digits)/2; i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return tokens.Color{}, fail(tokens.KindColor, raw, "invalid hex digits %q", digits[i*2:i*2+2])
		}
		channels[i] = uint8(v)
	}

	c := tokens.Color{
		Components: [3]float64{
			round(float64(channels[0]) / 255),
			round(float64(channels[1]) / 255),
			round(float64(channels[2]) / 255),
		},
		Hex: fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]),
	}
	if len(digits) == 8 {
		a := round(float64(channels[3]) / 255)
		c.Alpha = &a
	}
	return c, nil
}

// colorArgs returns 3 or 4 numeric arguments of color function. Both legacy
// comma syntax and space syntax with "/ alpha" are accepted, not mixed.
func colorArgs(raw, s string) ([]css.Component, error) {
	comps := css.Components(s)
	if len(comps) != 1 || !comps[0].IsFunction() || !strings.HasSuffix(comps[0].Text, ")") {
		return nil, fail(tokens.KindColor, raw, "malformed color function")
	}

	var (
		vals   []css.Component
		commas int
		slash  = -1
	)
	for _, a := range comps[0].Arguments() {
		switch {
		case a.IsComma():
			commas++
		case a.IsDelim('/'):
			if slash >= 0 {
				return nil, fail(tokens.KindColor, raw, "repeated '/'")
			}
			slash = len(vals)
		case a.IsNumeric():
			vals = append(vals, a)
		default:
			return nil, fail(tokens.KindColor, raw, "unexpected argument %q", a.Text)
		}
	}

	switch {
	case commas > 0 && slash >= 0:
		return nil, fail(tokens.KindColor, raw, "mixed comma and slash syntax")
	case len(vals) != 3 && len(vals) != 4:
		return nil, fail(tokens.KindColor, raw, "expected 3 or 4 arguments, got %d", len(vals))
	case commas > 0 && commas != len(vals)-1:
		return nil, fail(tokens.KindColor, raw, "malformed argument list")
	case commas == 0 && len(vals) == 4 && slash != 3:
		return nil, fail(tokens.KindColor, raw, "alpha must follow '/'")
	case slash >= 0 && len(vals) != 4:
		return nil, fail(tokens.KindColor, raw, "missing alpha after '/'")
	}
	return vals, nil
}

func alphaArg(raw string, vals []css.Component) (float64, error) {
	if len(vals) < 4 {
		return 1, nil
	}
	v, unit, _ := vals[3].Number()
	switch unit {
	case "":
	case "%":
		v /= 100
	default:
		return 0, fail(tokens.KindColor, raw, "alpha %q has unit", vals[3].Text)
	}
	if v < 0 || v > 1 {
		return 0, fail(tokens.KindColor, raw, "alpha %v is out of [0,1]", v)
	}
	return round(v), nil
}

func rgbColor(raw, s string) (tokens.Color, error) {
	vals, err := colorArgs(raw, s)
	if err != nil {
		return tokens.Color{}, err
	}

	var channels [3]float64
	for i := range channels {
		v, unit, _ := vals[i].Number()
		switch unit {
		case "":
		case "%":
			if v < 0 || v > 100 {
				return tokens.Color{}, fail(tokens.KindColor, raw, "channel %q is out of [0%%,100%%]", vals[i].Text)
			}
			v = v * 255 / 100
		default:
			return tokens.Color{}, fail(tokens.KindColor, raw, "channel %q has unit", vals[i].Text)
		}
		if v < 0 || v > 255 {
			return tokens.Color{}, fail(tokens.KindColor, raw, "channel %q is out of [0,255]", vals[i].Text)
		}
		channels[i] = v / 255
	}

	a, err := alphaArg(raw, vals)
	if err != nil {
		return tokens.Color{}, err
	}
	return rgbToColor(channels, a), nil
}

func hslColor(raw, s string) (tokens.Color, error) {
	vals, err := colorArgs(raw, s)
	if err != nil {
		return tokens.Color{}, err
	}

	h, unit, _ := vals[0].Number()
	switch unit {
	case "", "deg":
	case "turn":
		h *= 360
	case "rad":
		h = h * 180 / math.Pi
	case "grad":
		h = h * 0.9
	default:
		return tokens.Color{}, fail(tokens.KindColor, raw, "hue %q has unsupported unit", vals[0].Text)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	var sl [2]float64
	for i := range sl {
		v, unit, _ := vals[i+1].Number()
		if unit != "" && unit != "%" {
			return tokens.Color{}, fail(tokens.KindColor, raw, "%q must be a percentage", vals[i+1].Text)
		}
		if v < 0 || v > 100 {
			return tokens.Color{}, fail(tokens.KindColor, raw, "%q is out of [0%%,100%%]", vals[i+1].Text)
		}
		sl[i] = v / 100
	}

	a, err := alphaArg(raw, vals)
	if err != nil {
		return tokens.Color{}, err
	}
	return rgbToColor(hslToRGB(h/360, sl[0], sl[1]), a), nil
}

// rgbToColor builds color from channels in [0,1], hex is derived from 8-bit
// channels.
func rgbToColor(rgb [3]float64, alpha float64) tokens.Color {
	var (
		c      tokens.Color
		octets [3]uint8
	)
	for i, v := range rgb {
		c.Components[i] = round(v)
		octets[i] = uint8(math.Round(v * 255))
	}
	c.Alpha = &alpha
	c.Hex = fmt.Sprintf("#%02x%02x%02x", octets[0], octets[1], octets[2])
	return c
}

// hslToRGB expects all arguments in [0,1].
func hslToRGB(h, s, l float64) [3]float64 {
	if s == 0 {
		return [3]float64{l, l, l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return [3]float64{
		hueToRGB(p, q, h+1.0/3),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
