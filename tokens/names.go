package tokens

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RootTokenName is the only name allowed to start with `$`.
const RootTokenName = "$root"

// NameValidation is the outcome of ValidateTokenName.
type NameValidation struct {
	Valid bool
	Error string
}

// ValidateTokenName checks naming rules of the token document: names must not
// start with `$` (except RootTokenName) and must not contain `{`, `}` or `.`.
func ValidateTokenName(name string) NameValidation {
	switch {
	case name == "":
		return NameValidation{Error: "name is empty"}
	case strings.HasPrefix(name, "$") && name != RootTokenName:
		return NameValidation{Error: "name must not start with '$'"}
	case strings.ContainsAny(name, "{}"):
		return NameValidation{Error: "name must not contain '{' or '}'"}
	case strings.Contains(name, "."):
		return NameValidation{Error: "name must not contain '.'"}
	}
	return NameValidation{Valid: true}
}

var whitespace = regexp.MustCompile(`\s+`)

// SanitizeTokenName turns arbitrary text into a name that passes
// ValidateTokenName (unless it ends up empty).
func SanitizeTokenName(name string) string {
	name = strings.NewReplacer("{", "-", "}", "-", ".", "-").Replace(strings.TrimSpace(name))
	name = strings.TrimLeft(name, "$")
	name = whitespace.ReplaceAllString(name, "-")
	// cases.Caser is stateful and must not be shared
	return cases.Lower(language.Und).String(name)
}
