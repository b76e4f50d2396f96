package tokens

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Border composite.
type Border struct {
	Color Color       `json:"color"`
	Width Dimension   `json:"width"`
	Style BorderStyle `json:"style"`
}

func (Border) Kind() Kind { return KindBorder }

func (b Border) Validate() error {
	if err := b.Color.Validate(); err != nil {
		return fmt.Errorf("border color: %w", err)
	}
	if err := b.Width.Validate(); err != nil {
		return fmt.Errorf("border width: %w", err)
	}
	if !b.Style.IsValid() {
		return invalid(KindBorder, "unknown style %d", b.Style)
	}
	return nil
}

// Shadow composite, single non-inset shadow.
type Shadow struct {
	Color   Color     `json:"color"`
	OffsetX Dimension `json:"offsetX"`
	OffsetY Dimension `json:"offsetY"`
	Blur    Dimension `json:"blur"`
	Spread  Dimension `json:"spread"`
}

func (Shadow) Kind() Kind { return KindShadow }

func (s Shadow) Validate() error {
	if err := s.Color.Validate(); err != nil {
		return fmt.Errorf("shadow color: %w", err)
	}
	names := [...]string{"offsetX", "offsetY", "blur", "spread"}
	for i, d := range [...]Dimension{s.OffsetX, s.OffsetY, s.Blur, s.Spread} {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("shadow %s: %w", names[i], err)
		}
	}
	if s.Blur.Value < 0 {
		return invalid(KindShadow, "negative blur %v", s.Blur.Value)
	}
	return nil
}

// Transition composite.
type Transition struct {
	Duration       Duration    `json:"duration"`
	Delay          Duration    `json:"delay"`
	TimingFunction CubicBezier `json:"timingFunction"`
}

func (Transition) Kind() Kind { return KindTransition }

func (t Transition) Validate() error {
	if err := t.Duration.Validate(); err != nil {
		return fmt.Errorf("transition duration: %w", err)
	}
	if err := t.Delay.Validate(); err != nil {
		return fmt.Errorf("transition delay: %w", err)
	}
	if err := t.TimingFunction.Validate(); err != nil {
		return fmt.Errorf("transition timing function: %w", err)
	}
	return nil
}

// StrokeStyle composite with explicit dash pattern.
type StrokeStyle struct {
	DashArray []Dimension `json:"dashArray"`
	LineCap   LineCap     `json:"lineCap"`
}

func (StrokeStyle) Kind() Kind { return KindStrokeStyle }

func (s StrokeStyle) Validate() error {
	if len(s.DashArray) == 0 {
		return invalid(KindStrokeStyle, "empty dash array")
	}
	for i, d := range s.DashArray {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("stroke dash %d: %w", i, err)
		}
	}
	if !s.LineCap.IsValid() {
		return invalid(KindStrokeStyle, "unknown line cap %d", s.LineCap)
	}
	return nil
}

// GradientStop is a color at relative position in [0,1].
type GradientStop struct {
	Color    Color   `json:"color"`
	Position float64 `json:"position"`
}

// Gradient composite, at least two stops.
type Gradient []GradientStop

func (Gradient) Kind() Kind { return KindGradient }

func (g Gradient) Validate() error {
	if len(g) < 2 {
		return invalid(KindGradient, "%d stops, at least 2 required", len(g))
	}
	for i, s := range g {
		if err := s.Color.Validate(); err != nil {
			return fmt.Errorf("gradient stop %d: %w", i, err)
		}
		if !unit(s.Position) {
			return invalid(KindGradient, "stop %d position %v is out of [0,1]", i, s.Position)
		}
	}
	return nil
}

// Typography composite. LetterSpacing is nil when not specified.
type Typography struct {
	FontFamily    FontFamily `json:"fontFamily"`
	FontSize      Dimension  `json:"fontSize"`
	FontWeight    FontWeight `json:"fontWeight"`
	LetterSpacing *Dimension `json:"letterSpacing,omitempty"`
	LineHeight    Number     `json:"lineHeight"`
}

func (Typography) Kind() Kind { return KindTypography }

func (t Typography) Validate() error {
	if err := t.FontFamily.Validate(); err != nil {
		return fmt.Errorf("typography font family: %w", err)
	}
	if err := t.FontSize.Validate(); err != nil {
		return fmt.Errorf("typography font size: %w", err)
	}
	if err := t.FontWeight.Validate(); err != nil {
		return fmt.Errorf("typography font weight: %w", err)
	}
	if err := t.LineHeight.Validate(); err != nil {
		return fmt.Errorf("typography line height: %w", err)
	}
	if t.LetterSpacing != nil {
		if err := t.LetterSpacing.Validate(); err != nil {
			return fmt.Errorf("typography letter spacing: %w", err)
		}
	}
	return nil
}

// Reference aliases another token by its path in the document. Of is kind
// of the referenced token so that `$type` can be inherited or emitted.
type Reference struct {
	Path []string
	Of   Kind
}

func (r Reference) Kind() Kind { return r.Of }

func (r Reference) Validate() error {
	if len(r.Path) == 0 {
		return invalid(r.Of, "empty reference")
	}
	for _, name := range r.Path {
		if res := ValidateTokenName(name); !res.Valid {
			return invalid(r.Of, "reference segment %q: %s", name, res.Error)
		}
	}
	return nil
}

// String returns alias notation, e.g. {colors.brand.primary}.
func (r Reference) String() string {
	return "{" + strings.Join(r.Path, ".") + "}"
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
