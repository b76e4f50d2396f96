package convert_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"dtc/convert"
	"dtc/tokens"
)

func px(v float64) tokens.Dimension { return tokens.Dimension{Value: v, Unit: tokens.UnitPx} }
func ms(v float64) tokens.Duration  { return tokens.Duration{Value: v, Unit: tokens.UnitMs} }

func TestSize(t *testing.T) {
	tests := []struct {
		input string
		want  tokens.Dimension
		ok    bool
	}{
		{"16px", px(16), true},
		{"1.5rem", tokens.Dimension{Value: 1.5, Unit: tokens.UnitRem}, true},
		{"0", px(0), true},
		{"-4px", px(-4), true},
		{"0.1234px", px(0.123), true},
		{" 8PX ", px(8), true},
		{"1em", tokens.Dimension{}, false},
		{"10%", tokens.Dimension{}, false},
		{"100vh", tokens.Dimension{}, false},
		{"12", tokens.Dimension{}, false},
		{"px", tokens.Dimension{}, false},
		{"1.2.3px", tokens.Dimension{}, false},
		{"", tokens.Dimension{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.Size(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("Size(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		input string
		want  tokens.Duration
		ok    bool
	}{
		{"200ms", ms(200), true},
		{"0.3s", tokens.Duration{Value: 0.3, Unit: tokens.UnitS}, true},
		{"0", ms(0), true},
		{"1h", tokens.Duration{}, false},
		{"10", tokens.Duration{}, false},
		{"fast", tokens.Duration{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.Time(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("Time(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	if n, err := convert.Number("0.12345"); err != nil || n != 0.123 {
		t.Errorf("Number = %v, %v", n, err)
	}
	n, err := convert.Number("-0.0001")
	if err != nil || n != 0 || math.Signbit(float64(n)) {
		t.Errorf("expected positive zero, got %v, %v", n, err)
	}
	for _, in := range []string{"abc", "NaN", "Inf", ""} {
		if _, err := convert.Number(in); err == nil {
			t.Errorf("Number(%q) expected error", in)
		}
	}
}

func TestTimingFunction(t *testing.T) {
	tests := []struct {
		input string
		want  tokens.CubicBezier
		ok    bool
	}{
		{"ease-in-out", tokens.CubicBezier{0.42, 0, 0.58, 1}, true},
		{"linear", tokens.CubicBezier{0, 0, 1, 1}, true},
		{"ease", tokens.CubicBezier{0.25, 0.1, 0.25, 1}, true},
		{"ease-in", tokens.CubicBezier{0.42, 0, 1, 1}, true},
		{"EASE-OUT", tokens.CubicBezier{0, 0, 0.58, 1}, true},
		{"cubic-bezier(0.68, -0.55, 0.265, 1.55)", tokens.CubicBezier{0.68, -0.55, 0.265, 1.55}, true},
		{"cubic-bezier(.4,0,.2,1)", tokens.CubicBezier{0.4, 0, 0.2, 1}, true},
		{"cubic-bezier(1.2, 0, 0.5, 1)", tokens.CubicBezier{}, false},
		{"cubic-bezier(0.5, 0, -0.1, 1)", tokens.CubicBezier{}, false},
		{"cubic-bezier(0, 0, 1)", tokens.CubicBezier{}, false},
		{"cubic-bezier(0 0 1 1)", tokens.CubicBezier{}, false},
		{"cubic-bezier(0, 0, 1, 1, 1)", tokens.CubicBezier{}, false},
		{"bounce", tokens.CubicBezier{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.TimingFunction(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if !tt.ok {
				return
			}
			if got != tt.want {
				t.Errorf("TimingFunction(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got[0] < 0 || got[0] > 1 || got[2] < 0 || got[2] > 1 {
				t.Errorf("x coordinates out of range: %v", got)
			}
		})
	}

	_, err := convert.TimingFunction("steps(4, end)")
	if !errors.Is(err, convert.ErrUnsupported) {
		t.Errorf("steps() error = %v, want ErrUnsupported", err)
	}
}

func TestFontFamily(t *testing.T) {
	tests := []struct {
		input string
		want  []string
		ok    bool
	}{
		{`"Helvetica Neue", Arial, sans-serif`, []string{"Helvetica Neue", "Arial", "sans-serif"}, true},
		{`'Inter'`, []string{"Inter"}, true},
		{`Georgia , serif,`, []string{"Georgia", "serif"}, true},
		{`"Font, with comma", serif`, []string{"Font, with comma", "serif"}, true},
		{` , `, nil, false},
		{``, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.FontFamily(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && !reflect.DeepEqual(got.Families, tt.want) {
				t.Errorf("FontFamily(%q) = %q, want %q", tt.input, got.Families, tt.want)
			}
		})
	}
}

func TestFontWeight(t *testing.T) {
	tests := []struct {
		input string
		want  tokens.FontWeight
		ok    bool
	}{
		{"400", tokens.FontWeight{Number: 400}, true},
		{"1", tokens.FontWeight{Number: 1}, true},
		{"1000", tokens.FontWeight{Number: 1000}, true},
		{"bold", tokens.FontWeight{Number: 700}, true},
		{"BOLD", tokens.FontWeight{Number: 700}, true},
		{"normal", tokens.FontWeight{Number: 400}, true},
		{"lighter", tokens.FontWeight{Number: 300}, true},
		{"bolder", tokens.FontWeight{Number: 700}, true},
		{"semi-bold", tokens.FontWeight{Preset: "semi-bold"}, true},
		{"heavy", tokens.FontWeight{Preset: "heavy"}, true},
		{"0", tokens.FontWeight{}, false},
		{"1001", tokens.FontWeight{}, false},
		{"400.5", tokens.FontWeight{}, false},
		{"400.0", tokens.FontWeight{}, false},
		{"1e2", tokens.FontWeight{}, false},
		{" 700 ", tokens.FontWeight{Number: 700}, true},
		{"extra", tokens.FontWeight{}, false},
		{"", tokens.FontWeight{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.FontWeight(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if !tt.ok {
				return
			}
			if got != tt.want {
				t.Errorf("FontWeight(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if !tokens.IsFontWeightValue(got) {
				t.Errorf("FontWeight(%q) produced invalid value %+v", tt.input, got)
			}
		})
	}
}

func TestFontWeightNumber(t *testing.T) {
	if w, err := convert.FontWeightNumber(700); err != nil || w.Number != 700 {
		t.Errorf("FontWeightNumber(700) = %+v, %v", w, err)
	}
	for _, n := range []float64{0, 0.5, 1000.5, 2000, -100} {
		if _, err := convert.FontWeightNumber(n); err == nil {
			t.Errorf("FontWeightNumber(%v) expected error", n)
		}
	}
}

func TestBoxShadow(t *testing.T) {
	want := tokens.Shadow{
		Color:   tokens.Color{ColorSpace: "srgb", Alpha: ptr(0.05), Hex: "#000000"},
		OffsetX: px(0),
		OffsetY: px(1),
		Blur:    px(2),
		Spread:  px(0),
	}

	for _, in := range []string{
		"0px 1px 2px 0px rgba(0,0,0,0.05)",
		"rgba(0,0,0,0.05) 0px 1px 2px 0px",
		"rgba(0, 0, 0, .05) 0 1px 2px",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := convert.BoxShadow(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("BoxShadow(%q) = %+v, want %+v", in, got, want)
			}
		})
	}

	got, err := convert.BoxShadow("#000 0 4px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OffsetY != px(4) || got.Blur != px(0) || got.Spread != px(0) || got.Color.Alpha != nil {
		t.Errorf("unexpected defaults %+v", got)
	}
}

func TestBoxShadowErrors(t *testing.T) {
	tests := []struct {
		input       string
		unsupported bool
	}{
		{"none", true},
		{"0 1px red, 0 2px blue", true},
		{"inset 0 1px 2px red", true},
		{"0 1px 2px red inset", true},
		{"0 1px", false},
		{"1px red", false},
		{"0 1px 2px 3px 4px red", false},
		{"0 1px red blue", false},
		{"0 1em red", false},
		{"0 1px -2px red", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := convert.BoxShadow(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *convert.ParseError
			if !errors.As(err, &pe) || pe.Kind != tokens.KindShadow {
				t.Fatalf("expected shadow ParseError, got %v", err)
			}
			if errors.Is(err, convert.ErrUnsupported) != tt.unsupported {
				t.Errorf("unsupported = %v, want %v (%v)", !tt.unsupported, tt.unsupported, err)
			}
		})
	}
}

func TestBorder(t *testing.T) {
	black := tokens.Color{ColorSpace: "srgb", Hex: "#000000"}
	tests := []struct {
		input string
		want  tokens.Border
	}{
		{"1px solid #000", tokens.Border{Color: black, Width: px(1), Style: tokens.BorderStyleSolid}},
		{"#000 dashed 2px", tokens.Border{Color: black, Width: px(2), Style: tokens.BorderStyleDashed}},
		{"double black 0.25rem", tokens.Border{Color: black, Width: tokens.Dimension{Value: 0.25, Unit: tokens.UnitRem}, Style: tokens.BorderStyleDouble}},
		{"thin dotted #000", tokens.Border{Color: black, Width: px(1), Style: tokens.BorderStyleDotted}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.Border(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Border(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	for _, in := range []string{"1px #000", "1px solid", "solid red", "1px 2px solid red", "1px solid dashed red", "1px solid red blue", "1em solid red", "none", ""} {
		t.Run("error "+in, func(t *testing.T) {
			if _, err := convert.Border(in); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTypography(t *testing.T) {
	props := convert.TypographyProperties{
		FontFamily:    "Inter, sans-serif",
		FontSize:      "16px",
		FontWeight:    "600",
		LineHeight:    "1.5",
		LetterSpacing: "normal",
	}
	got, err := convert.Typography(props)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := tokens.Typography{
		FontFamily: tokens.FontFamily{Families: []string{"Inter", "sans-serif"}},
		FontSize:   px(16),
		FontWeight: tokens.FontWeight{Number: 600},
		LineHeight: 1.5,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Typography = %+v, want %+v", got, want)
	}
	if got.LetterSpacing != nil {
		t.Error("letter-spacing normal must be omitted")
	}

	props.LetterSpacing = "0.5px"
	got, err = convert.Typography(props)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LetterSpacing == nil || *got.LetterSpacing != px(0.5) {
		t.Errorf("letter spacing = %v", got.LetterSpacing)
	}
}

func TestTypographyLineHeight(t *testing.T) {
	tests := []struct {
		input string
		want  tokens.Number
		ok    bool
	}{
		{"1.5", 1.5, true},
		{"150%", 1.5, true},
		{"24px", 24, true},
		{"1.25em", 1.25, true},
		{"normal", 1.2, true},
		{"", 1.2, true},
		{"tall", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.Typography(convert.TypographyProperties{
				FontFamily: "serif",
				FontSize:   "1rem",
				FontWeight: "normal",
				LineHeight: tt.input,
			})
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && got.LineHeight != tt.want {
				t.Errorf("line height = %v, want %v", got.LineHeight, tt.want)
			}
		})
	}
}

func TestTypographyErrors(t *testing.T) {
	base := convert.TypographyProperties{FontFamily: "serif", FontSize: "16px", FontWeight: "400"}

	tests := []struct {
		property, value string
	}{
		{"font-family", ""},
		{"font-size", "1em"},
		{"font-weight", "fat"},
		{"letter-spacing", "0.1em"},
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			p := base
			if !p.Set(tt.property, tt.value) {
				t.Fatalf("property %s not settable", tt.property)
			}
			_, err := convert.Typography(p)
			var pe *convert.ParseError
			if !errors.As(err, &pe) || pe.Kind != tokens.KindTypography {
				t.Errorf("expected typography ParseError, got %v", err)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		input string
		want  tokens.Transition
	}{
		{"opacity 200ms ease-in 50ms", tokens.Transition{Duration: ms(200), Delay: ms(50), TimingFunction: tokens.CubicBezier{0.42, 0, 1, 1}}},
		{"300ms", tokens.Transition{Duration: ms(300), Delay: ms(0), TimingFunction: tokens.CubicBezier{0.25, 0.1, 0.25, 1}}},
		{"all 0.3s cubic-bezier(0.4, 0, 0.2, 1)", tokens.Transition{
			Duration:       tokens.Duration{Value: 0.3, Unit: tokens.UnitS},
			Delay:          ms(0),
			TimingFunction: tokens.CubicBezier{0.4, 0, 0.2, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.Transition(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Transition(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := convert.Transition("opacity 1s, color 2s"); !errors.Is(err, convert.ErrUnsupported) {
		t.Errorf("multiple transitions error = %v", err)
	}
	for _, in := range []string{"ease", "1s 2s 3s", "opacity width 1s", "1s ease linear", "1px"} {
		if _, err := convert.Transition(in); err == nil {
			t.Errorf("Transition(%q) expected error", in)
		}
	}
}

func TestLinearGradient(t *testing.T) {
	tests := []struct {
		input     string
		positions []float64
		hexes     []string
	}{
		{"linear-gradient(to right, #fff, #000)", []float64{0, 1}, []string{"#ffffff", "#000000"}},
		{"linear-gradient(45deg, red 0%, blue 50%, green)", []float64{0, 0.5, 1}, []string{"#ff0000", "#0000ff", "#008000"}},
		{"linear-gradient(red, blue, green)", []float64{0, 0.5, 1}, []string{"#ff0000", "#0000ff", "#008000"}},
		{"linear-gradient(red, green 40%, blue, white)", []float64{0, 0.4, 0.7, 1}, []string{"#ff0000", "#008000", "#0000ff", "#ffffff"}},
		{"linear-gradient(red 50%, blue 20%)", []float64{0.5, 0.5}, []string{"#ff0000", "#0000ff"}},
		{"linear-gradient(rgba(0, 0, 0, 0.5) 10%, transparent)", []float64{0.1, 1}, []string{"#000000", "#000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.LinearGradient(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.positions) {
				t.Fatalf("got %d stops, want %d", len(got), len(tt.positions))
			}
			for i, s := range got {
				if s.Position != tt.positions[i] || s.Color.Hex != tt.hexes[i] {
					t.Errorf("stop %d = %v %s, want %v %s", i, s.Position, s.Color.Hex, tt.positions[i], tt.hexes[i])
				}
			}
		})
	}

	if _, err := convert.LinearGradient("radial-gradient(red, blue)"); !errors.Is(err, convert.ErrUnsupported) {
		t.Errorf("radial gradient error = %v", err)
	}
	if _, err := convert.LinearGradient("linear-gradient(red, 50%, blue)"); !errors.Is(err, convert.ErrUnsupported) {
		t.Errorf("color hint error = %v", err)
	}
	for _, in := range []string{"linear-gradient(red)", "linear-gradient(red 10px, blue)", "linear-gradient(nope, blue)", "red", "linear-gradient(red, blue"} {
		if _, err := convert.LinearGradient(in); err == nil {
			t.Errorf("LinearGradient(%q) expected error", in)
		}
	}
}

func TestStrokeStyle(t *testing.T) {
	got, err := convert.StrokeStyle("4 2", "round")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := tokens.StrokeStyle{DashArray: []tokens.Dimension{px(4), px(2)}, LineCap: tokens.LineCapRound}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StrokeStyle = %+v, want %+v", got, want)
	}

	got, err = convert.StrokeStyle("4px, 0.5rem", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LineCap != tokens.LineCapButt || got.DashArray[1] != (tokens.Dimension{Value: 0.5, Unit: tokens.UnitRem}) {
		t.Errorf("unexpected stroke style %+v", got)
	}

	for _, in := range [][2]string{{"none", ""}, {"", ""}, {"-1", ""}, {"4", "diagonal"}, {"1em", ""}} {
		if _, err := convert.StrokeStyle(in[0], in[1]); err == nil {
			t.Errorf("StrokeStyle(%q, %q) expected error", in[0], in[1])
		}
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		kind  tokens.Kind
		input string
	}{
		{tokens.KindColor, "#fff"},
		{tokens.KindDimension, "4px"},
		{tokens.KindDuration, "1s"},
		{tokens.KindCubicBezier, "ease"},
		{tokens.KindFontFamily, "serif"},
		{tokens.KindFontWeight, "bold"},
		{tokens.KindNumber, "2"},
		{tokens.KindBorder, "1px solid red"},
		{tokens.KindShadow, "0 1px red"},
		{tokens.KindTransition, "1s"},
		{tokens.KindGradient, "linear-gradient(red, blue)"},
		{tokens.KindStrokeStyle, "4 2 / round"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v, err := convert.Value(tt.kind, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", v.Kind(), tt.kind)
			}
			if err := v.Validate(); err != nil {
				t.Errorf("converted value does not validate: %v", err)
			}
		})
	}

	if _, err := convert.Value(tokens.KindTypography, "16px Inter"); !errors.Is(err, convert.ErrUnsupported) {
		t.Errorf("typography error = %v", err)
	}
	if _, err := convert.Value(tokens.Kind(100), "x"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
