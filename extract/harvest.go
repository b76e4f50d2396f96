package extract

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dtc/convert"
	"dtc/css"
	"dtc/tokens"
)

// Harvester collects token candidates from stylesheets. Custom properties
// become named tokens, values of regular declarations are counted and the
// ones used at least MinUsage times become anonymous tokens named
// "<type>-<n>" in order of decreasing usage.
type Harvester struct {
	MinUsage int
	// Inspect, when set, receives every parsed stylesheet with its origin.
	Inspect func(origin string, sheet *css.Stylesheet)

	log    *zap.Logger
	parser *css.Parser

	custom    []*candidate
	byName    map[string]*candidate
	anonymous []*candidate
	byValue   map[string]*candidate
	refs      map[string]int
}

type candidate struct {
	typ      TokenType
	name     string
	category string
	value    tokens.Value
	raw      string
	count    int
	sources  []string
	urls     []string
}

func (c *candidate) seen(source, url string) {
	c.count++
	if source != "" && !slices.Contains(c.sources, source) {
		c.sources = append(c.sources, source)
	}
	if url != "" && !slices.Contains(c.urls, url) {
		c.urls = append(c.urls, url)
	}
}

// NewHarvester returns empty harvester.
func NewHarvester(minUsage int, log *zap.Logger) *Harvester {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("harvester")
	return &Harvester{
		MinUsage: max(minUsage, 1),
		log:      log,
		parser:   css.NewParser(log),
		byName:   make(map[string]*candidate),
		byValue:  make(map[string]*candidate),
		refs:     make(map[string]int),
	}
}

// HarvestFiles parses every file and returns accumulated tokens. Unreadable
// files are skipped and reported in returned error.
func (h *Harvester) HarvestFiles(ctx context.Context, paths []string) ([]ExtractedToken, error) {
	var errs error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read stylesheet: %w", err))
			continue
		}
		h.Harvest(data, fileURL(path))
	}
	return h.Tokens(), errs
}

// Harvest adds stylesheet content to the collection, origin is recorded in
// token source urls.
func (h *Harvester) Harvest(data []byte, origin string) {
	sheet := h.parser.Parse(data, origin)
	for _, w := range sheet.Warnings {
		h.log.Debug("Stylesheet warning", zap.String("origin", origin), zap.String("warning", w))
	}
	if h.Inspect != nil {
		h.Inspect(origin, sheet)
	}

	for _, rule := range sheet.Rules {
		source := rule.Selector()
		for _, decl := range rule.Declarations {
			h.countReferences(decl.Value)
			if decl.Custom {
				h.customProperty(decl, source, origin)
				continue
			}
			h.declaration(decl, source, origin)
		}
		h.typography(rule, source, origin)
		h.strokeStyle(rule, source, origin)
	}
}

var varPattern = regexp.MustCompile(`var\(\s*(--[^\s,)]+)`)

func (h *Harvester) countReferences(value string) {
	for _, m := range varPattern.FindAllStringSubmatch(value, -1) {
		h.refs[m[1]]++
	}
}

// customProperty classifies custom property by its value. Only the first
// definition is kept, redefinitions (themes, media queries) only add source.
func (h *Harvester) customProperty(decl css.Declaration, source, origin string) {
	if c, ok := h.byName[decl.Property]; ok {
		c.seen(source, origin)
		return
	}
	typ, v, ok := classify(decl.Value)
	if !ok {
		h.log.Debug("Custom property skipped", zap.String("property", decl.Property), zap.String("value", decl.Value))
		return
	}
	c := &candidate{
		typ:   typ,
		name:  strings.TrimPrefix(decl.Property, "--"),
		value: v,
		raw:   decl.Value,
	}
	c.seen(source, origin)
	h.byName[decl.Property] = c
	h.custom = append(h.custom, c)
}

// classify tries converters from the most to the least specific.
func classify(raw string) (TokenType, tokens.Value, bool) {
	comps := css.Components(raw)
	if len(comps) == 1 {
		c := comps[0]
		switch {
		case convert.IsColorLike(c):
			if v, err := convert.Color(raw, ""); err == nil {
				return TokenTypeColor, v, true
			}
		case c.IsFunction() && c.Name == "linear-gradient":
			if v, err := convert.LinearGradient(raw); err == nil {
				return TokenTypeColor, v, true
			}
		case c.IsNumeric():
			if v, err := convert.Size(raw); err == nil {
				return TokenTypeSpacing, v, true
			}
			if v, err := convert.Time(raw); err == nil {
				return TokenTypeAnimation, v, true
			}
		}
		if v, err := convert.TimingFunction(raw); err == nil {
			return TokenTypeAnimation, v, true
		}
		return 0, nil, false
	}
	if v, err := convert.BoxShadow(raw); err == nil {
		return TokenTypeShadow, v, true
	}
	if v, err := convert.Border(raw); err == nil {
		return TokenTypeBorder, v, true
	}
	if v, err := convert.Transition(raw); err == nil {
		return TokenTypeAnimation, v, true
	}
	if v, err := convert.FontFamily(raw); err == nil && len(v.Families) > 1 {
		return TokenTypeTypography, v, true
	}
	return 0, nil, false
}

// declaration harvests values of regular properties. Values referencing
// custom properties are skipped, those are counted as references instead.
func (h *Harvester) declaration(decl css.Declaration, source, origin string) {
	if strings.Contains(decl.Value, "var(") {
		return
	}
	prop := decl.Property
	category := categoryOf(prop)

	switch {
	case colorProperties[prop] || strings.HasSuffix(prop, "-color") || prop == "background":
		for _, c := range css.Components(decl.Value) {
			switch {
			case convert.IsColorLike(c):
				h.add(TokenTypeColor, category, c.Text, source, origin, func(s string) (tokens.Value, error) { return convert.Color(s, "") })
			case c.IsFunction() && c.Name == "linear-gradient":
				h.add(TokenTypeColor, category, c.Text, source, origin, func(s string) (tokens.Value, error) { return convert.LinearGradient(s) })
			}
		}
	case isSpacing(prop):
		for _, c := range css.Components(decl.Value) {
			if v, _, ok := c.Number(); ok && v != 0 {
				h.add(TokenTypeSpacing, category, c.Text, source, origin, func(s string) (tokens.Value, error) { return convert.Size(s) })
			}
		}
	case borderProperties[prop]:
		h.add(TokenTypeBorder, "", decl.Value, source, origin, func(s string) (tokens.Value, error) { return convert.Border(s) })
	case prop == "box-shadow":
		h.add(TokenTypeShadow, "", decl.Value, source, origin, func(s string) (tokens.Value, error) { return convert.BoxShadow(s) })
	case prop == "transition":
		h.add(TokenTypeAnimation, "transition", decl.Value, source, origin, func(s string) (tokens.Value, error) { return convert.Transition(s) })
	case prop == "transition-duration" || prop == "animation-duration":
		for _, part := range css.SplitCommas(decl.Value) {
			h.add(TokenTypeAnimation, "duration", part, source, origin, func(s string) (tokens.Value, error) { return convert.Time(s) })
		}
	case prop == "transition-timing-function" || prop == "animation-timing-function":
		for _, part := range css.SplitCommas(decl.Value) {
			h.add(TokenTypeAnimation, "easing", part, source, origin, func(s string) (tokens.Value, error) { return convert.TimingFunction(s) })
		}
	}
}

// typography combines font properties of a rule, family and size are
// required, weight defaults to normal.
func (h *Harvester) typography(rule css.Rule, source, origin string) {
	var props convert.TypographyProperties
	for _, name := range []string{"font-family", "font-size", "font-weight", "line-height", "letter-spacing"} {
		if d, ok := rule.GetProperty(name); ok {
			props.Set(name, d.Value)
		}
	}
	if props.FontFamily == "" || props.FontSize == "" {
		return
	}
	if props.FontWeight == "" {
		props.FontWeight = "normal"
	}
	if strings.Contains(props.String(), "var(") {
		return
	}
	h.add(TokenTypeTypography, "", props.String(), source, origin, func(string) (tokens.Value, error) { return convert.Typography(props) })
}

func (h *Harvester) strokeStyle(rule css.Rule, source, origin string) {
	dashes, ok := rule.GetProperty("stroke-dasharray")
	if !ok || strings.EqualFold(dashes.Value, "none") {
		return
	}
	lineCap, _ := rule.GetProperty("stroke-linecap")
	raw := dashes.Value
	if lineCap.Value != "" {
		raw += " / " + lineCap.Value
	}
	h.add(TokenTypeBorder, "stroke", raw, source, origin, func(s string) (tokens.Value, error) {
		return convert.StrokeStyle(dashes.Value, lineCap.Value)
	})
}

// add converts raw value and counts it. Values equal after conversion are
// the same candidate, first raw spelling is kept.
func (h *Harvester) add(typ TokenType, category, raw, source, origin string, conv func(string) (tokens.Value, error)) {
	v, err := conv(raw)
	if err != nil {
		h.log.Debug("Value skipped", zap.Stringer("type", typ), zap.Error(err))
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.log.Debug("Value skipped", zap.Stringer("type", typ), zap.Error(err))
		return
	}
	key := typ.String() + "|" + category + "|" + string(data)

	c, ok := h.byValue[key]
	if !ok {
		c = &candidate{typ: typ, category: category, value: v, raw: raw}
		h.byValue[key] = c
		h.anonymous = append(h.anonymous, c)
	}
	c.seen(source, origin)
}

// Tokens returns harvested tokens: custom properties in declaration order
// followed by anonymous values grouped by type.
func (h *Harvester) Tokens() []ExtractedToken {
	out := make([]ExtractedToken, 0, len(h.custom)+len(h.anonymous))
	for _, c := range h.custom {
		t := c.token(c.name)
		t.UsageCount = h.refs["--"+c.name]
		out = append(out, t)
	}

	anonymous := slices.Clone(h.anonymous)
	slices.SortStableFunc(anonymous, func(a, b *candidate) int {
		if r := cmp.Compare(a.typ, b.typ); r != 0 {
			return r
		}
		if r := cmp.Compare(b.count, a.count); r != 0 {
			return r
		}
		switch {
		case natural.Less(a.raw, b.raw):
			return -1
		case natural.Less(b.raw, a.raw):
			return 1
		}
		return 0
	})

	var (
		counters = make(map[TokenType]int)
		skipped  int
	)
	for _, c := range anonymous {
		if c.count < h.MinUsage {
			skipped++
			continue
		}
		counters[c.typ]++
		t := c.token(fmt.Sprintf("%s-%d", c.typ, counters[c.typ]))
		t.UsageCount = c.count
		out = append(out, t)
	}

	h.log.Debug("Harvest complete",
		zap.Int("custom", len(h.custom)),
		zap.Int("values", len(h.anonymous)),
		zap.Int("below min usage", skipped))
	return out
}

func (c *candidate) token(name string) ExtractedToken {
	t := ExtractedToken{
		Type:          c.typ,
		Name:          name,
		Value:         c.value,
		Category:      c.category,
		SourceURLs:    slices.Clone(c.urls),
		OriginalValue: c.raw,
	}
	if len(c.sources) > 0 {
		t.Source = c.sources[0]
	}
	return t
}

var colorProperties = map[string]bool{
	"color":            true,
	"background-color": true,
	"fill":             true,
	"stroke":           true,
	"background-image": true,
}

var borderProperties = map[string]bool{
	"border":        true,
	"border-top":    true,
	"border-right":  true,
	"border-bottom": true,
	"border-left":   true,
	"outline":       true,
}

func isSpacing(prop string) bool {
	for _, prefix := range []string{"margin", "padding", "gap", "row-gap", "column-gap", "border-radius"} {
		if prop == prefix || strings.HasPrefix(prop, prefix+"-") {
			return true
		}
	}
	return strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-radius")
}

// categoryOf names sub-group for anonymous values of the property.
func categoryOf(prop string) string {
	switch {
	case prop == "color":
		return "text"
	case prop == "fill" || prop == "stroke":
		return "svg"
	case strings.HasSuffix(prop, "-radius"):
		return "radius"
	case strings.HasSuffix(prop, "gap"):
		return "gap"
	}
	family, _, _ := strings.Cut(prop, "-")
	return family
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
