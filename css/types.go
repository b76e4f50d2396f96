package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single property declaration.
type Declaration struct {
	Property  string // lower-cased, custom properties keep their spelling
	Value     string // value text with whitespace collapsed, without !important
	Custom    bool   // custom property (--name)
	Important bool
}

// Rule is a style rule with its declarations in source order.
type Rule struct {
	Selectors    []string
	Media        string // enclosing conditional group query, empty at top level
	Declarations []Declaration
	SourceLine   int
}

// Selector returns selector list as written.
func (r Rule) Selector() string {
	return strings.Join(r.Selectors, ", ")
}

// GetProperty returns the last declaration of the property.
func (r Rule) GetProperty(name string) (Declaration, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Rules    []Rule   // All style rules in source order, nested ones flattened
	Warnings []string // Warnings for skipped content
}

// WriteTo writes normalized stylesheet to w, one declaration per line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		indent := ""
		if rule.Media != "" {
			n, err := fmt.Fprintf(w, "@media %s {\n", rule.Media)
			total += int64(n)
			if err != nil {
				return total, err
			}
			indent = "  "
		}

		n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector())
		total += int64(n)
		if err != nil {
			return total, err
		}
		for _, d := range rule.Declarations {
			important := ""
			if d.Important {
				important = " !important"
			}
			n, err = fmt.Fprintf(w, "%s  %s: %s%s;\n", indent, d.Property, d.Value, important)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err = fmt.Fprintf(w, "%s}\n", indent)
		total += int64(n)
		if err != nil {
			return total, err
		}

		if rule.Media != "" {
			n, err = fmt.Fprint(w, "}\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
