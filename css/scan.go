package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Component is one top-level component of a property value: a single token
// or a complete function call including its arguments.
type Component struct {
	Type css.TokenType
	Text string // original text, for functions the whole call "rgba(0, 0, 0, .5)"
	Name string // lower-cased function name, functions only
	Args string // text between parentheses, functions only
}

// IsNumeric returns true for numbers, percentages and dimensions.
func (c Component) IsNumeric() bool {
	switch c.Type {
	case css.NumberToken, css.PercentageToken, css.DimensionToken:
		return true
	}
	return false
}

func (c Component) IsIdent() bool    { return c.Type == css.IdentToken }
func (c Component) IsHash() bool     { return c.Type == css.HashToken }
func (c Component) IsString() bool   { return c.Type == css.StringToken }
func (c Component) IsComma() bool    { return c.Type == css.CommaToken }
func (c Component) IsFunction() bool { return c.Type == css.FunctionToken }

// IsDelim checks for a single delimiter character such as '/'.
func (c Component) IsDelim(ch byte) bool {
	return c.Type == css.DelimToken && len(c.Text) == 1 && c.Text[0] == ch
}

// Keyword returns lower-cased identifier, empty for anything else.
func (c Component) Keyword() string {
	if c.Type != css.IdentToken {
		return ""
	}
	return strings.ToLower(c.Text)
}

// Number splits numeric component into value and lower-cased unit. Percentages
// have unit "%", plain numbers have empty unit.
func (c Component) Number() (float64, string, bool) {
	switch c.Type {
	case css.NumberToken:
		v, err := strconv.ParseFloat(c.Text, 64)
		return v, "", err == nil
	case css.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(c.Text, "%"), 64)
		return v, "%", err == nil
	case css.DimensionToken:
		v, unit := parseDimension(c.Text)
		return v, unit, unit != ""
	}
	return 0, "", false
}

// Arguments returns components of function arguments. Commas and
// delimiters are kept so callers can tell legacy and modern syntax apart.
func (c Component) Arguments() []Component {
	if c.Type != css.FunctionToken {
		return nil
	}
	return Components(c.Args)
}

// Components splits a property value into top-level components. Whitespace
// and comments separate components and are dropped, commas are returned as
// components of their own.
func Components(value string) []Component {
	var (
		comps []Component
		fn    *Component
		body  strings.Builder
		depth int
	)

	lexer := css.NewLexer(parse.NewInputString(value))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		if fn != nil {
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			if depth == 0 {
				fn.Args = body.String()
				fn.Text += fn.Args + string(data)
				comps = append(comps, *fn)
				fn = nil
				continue
			}
			body.Write(data)
			continue
		}

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.FunctionToken:
			name := string(data)
			fn = &Component{Type: tt, Text: name, Name: strings.ToLower(strings.TrimSuffix(name, "("))}
			body.Reset()
			depth = 1
			continue
		}
		comps = append(comps, Component{Type: tt, Text: string(data)})
	}

	// unterminated function keeps whatever arguments it has
	if fn != nil {
		fn.Args = body.String()
		fn.Text += fn.Args
		comps = append(comps, *fn)
	}
	return comps
}

// SplitCommas splits value on top-level commas. Commas inside functions and
// strings are not separators. Parts are trimmed, empty parts are kept so
// callers can detect them.
func SplitCommas(value string) []string {
	var (
		parts []string
		cur   strings.Builder
		depth int
	)

	lexer := css.NewLexer(parse.NewInputString(value))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(cur.String()))
				cur.Reset()
				continue
			}
		}
		cur.Write(data)
	}
	return append(parts, strings.TrimSpace(cur.String()))
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' ||
			// exponent, only when followed by digit or sign
			((r == 'e' || r == 'E') && i+1 < len(s) && strings.ContainsRune("0123456789+-", rune(s[i+1]))) {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, ""
	}
	return num, strings.ToLower(s[numEnd:])
}

// Unquote removes surrounding quotes from a string.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
