package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dtc/convert"
	"dtc/tokens"
)

// Payload is a list of raw tokens serialized by an external extractor. YAML
// and JSON encodings are both accepted.
type Payload struct {
	Tokens []RawToken `yaml:"tokens"`
}

// RawToken carries raw CSS text which still has to be converted.
type RawToken struct {
	Type        string                        `yaml:"type"`
	Name        string                        `yaml:"name"`
	Kind        string                        `yaml:"kind,omitempty"`
	Value       string                        `yaml:"value,omitempty"`
	Properties  *convert.TypographyProperties `yaml:"properties,omitempty"`
	Category    string                        `yaml:"category,omitempty"`
	UsageCount  int                           `yaml:"usageCount,omitempty"`
	Source      string                        `yaml:"source,omitempty"`
	SourceURLs  []string                      `yaml:"sourceUrls,omitempty"`
	Description string                        `yaml:"description,omitempty"`
}

// ReadPayload decodes payload, unknown fields are rejected.
func ReadPayload(r io.Reader) (*Payload, error) {
	var p Payload

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("unable to decode payload: %w", err)
	}
	return &p, nil
}

// LoadPayload reads payload from file, "-" means standard input.
func LoadPayload(fname string) (*Payload, error) {
	if fname == "-" {
		return ReadPayload(os.Stdin)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to read payload: %w", err)
	}
	return ReadPayload(bytes.NewReader(data))
}

// Convert converts every raw token. Tokens which fail conversion are
// skipped, their errors are combined into returned error, so both results
// may be non-empty at the same time.
func (p *Payload) Convert() ([]ExtractedToken, error) {
	var (
		out  []ExtractedToken
		errs error
	)
	for i, raw := range p.Tokens {
		t, err := raw.Convert()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("token #%d %q: %w", i+1, raw.Name, err))
			continue
		}
		out = append(out, t)
	}
	return out, errs
}

// Convert turns raw token into extracted one. When kind is absent it is
// derived from the token type, when type is absent it is derived from the
// kind.
func (r RawToken) Convert() (ExtractedToken, error) {
	if strings.TrimSpace(r.Name) == "" {
		return ExtractedToken{}, errors.New("missing name")
	}

	var (
		typ  TokenType
		kind tokens.Kind
		err  error
	)
	hasType, hasKind := r.Type != "", r.Kind != ""
	if hasType {
		if typ, err = ParseTokenType(r.Type); err != nil {
			return ExtractedToken{}, err
		}
	}
	if hasKind {
		if kind, err = tokens.ParseKind(r.Kind); err != nil {
			return ExtractedToken{}, err
		}
	}
	switch {
	case !hasType && !hasKind:
		return ExtractedToken{}, errors.New("either type or kind is required")
	case !hasType:
		var ok bool
		if typ, ok = TokenTypeFor(kind); !ok {
			return ExtractedToken{}, fmt.Errorf("no token type for kind %s", kind)
		}
	case !hasKind:
		kind = typ.Kind()
	}

	t := ExtractedToken{
		Type:        typ,
		Name:        r.Name,
		Category:    r.Category,
		UsageCount:  r.UsageCount,
		Source:      r.Source,
		SourceURLs:  r.SourceURLs,
		Description: r.Description,
	}

	if kind == tokens.KindTypography {
		if r.Properties == nil {
			return ExtractedToken{}, errors.New("typography needs properties")
		}
		if t.Value, err = convert.Typography(*r.Properties); err != nil {
			return ExtractedToken{}, err
		}
		t.OriginalValue = r.Properties.String()
		return t, nil
	}

	if r.Properties != nil {
		return ExtractedToken{}, fmt.Errorf("properties are not expected for %s", kind)
	}
	if t.Value, err = convert.Value(kind, r.Value); err != nil {
		return ExtractedToken{}, err
	}
	t.OriginalValue = r.Value
	return t, nil
}
