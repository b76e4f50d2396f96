package generate

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"dtc/tokens"
)

// NameError describes document key which breaks naming rules.
type NameError struct {
	Path   string // dotted path of the enclosing group, empty at root
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid name %q in %s: %s", e.Name, e.Path, e.Reason)
}

// Validate checks every group and token name of the document. Violations
// are combined, result is advisory and does not prevent writing document.
func Validate(doc *tokens.Document) error {
	var errs error
	doc.Walk(func(path []string, _ tokens.Node) {
		name := path[len(path)-1]
		if v := tokens.ValidateTokenName(name); !v.Valid {
			errs = multierr.Append(errs, &NameError{
				Path:   strings.Join(path[:len(path)-1], "."),
				Name:   name,
				Reason: v.Error,
			})
		}
	})
	return errs
}
