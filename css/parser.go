package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into flat list of style rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// conditional group rules whose content is harvested, everything else
// with a block (@font-face, @keyframes, @page) is skipped
var groupRules = map[string]bool{
	"@media":    true,
	"@supports": true,
	"@layer":    true,
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	st := &parseState{
		parser: css.NewParser(parse.NewInputBytes(data), false),
		sheet:  sheet,
		data:   data,
	}
	p.parseRules(st, "", true)
	return sheet
}

type parseState struct {
	parser *css.Parser
	sheet  *Stylesheet
	data   []byte
}

func (st *parseState) line() int {
	off := min(st.parser.Offset(), len(st.data))
	return bytes.Count(st.data[:off], []byte{'\n'}) + 1
}

func (st *parseState) warn(msg string) {
	st.sheet.Warnings = append(st.sheet.Warnings, msg)
}

// parseRules collects rules until end of input (top level) or end of the
// enclosing at-rule block.
func (p *Parser) parseRules(st *parseState, media string, top bool) {
	for {
		gt, _, data := st.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if !st.parser.HasParseError() {
				// End of input
				return
			}
			p.log.Debug("CSS parse error", zap.Error(st.parser.Err()))
			st.warn(st.parser.Err().Error())

		case css.EndAtRuleGrammar:
			if !top {
				return
			}

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if !groupRules[atRule] {
				p.skipAtRuleBlock(st.parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
				continue
			}
			query := tokensText(st.parser.Values())
			if atRule != "@media" {
				query = strings.TrimSpace(atRule + " " + query)
			}
			if media != "" && query != "" {
				query = media + " and " + query
			} else if query == "" {
				query = media
			}
			p.parseRules(st, query, false)

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import, @charset)
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			rule := Rule{
				Selectors:  parseSelectors(data, st.parser.Values()),
				Media:      media,
				SourceLine: st.line(),
			}
			if gt == css.BeginRulesetGrammar {
				rule.Declarations = p.parseDeclarations(st)
			}
			if len(rule.Selectors) == 0 || len(rule.Declarations) == 0 {
				continue
			}
			st.sheet.Rules = append(st.sheet.Rules, rule)
		}
	}
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
	// Build full selector string from data and values
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for _, s := range SplitCommas(sb.String()) {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(st *parseState) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := st.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if !st.parser.HasParseError() {
				return decls
			}
			p.log.Debug("CSS declaration error", zap.Error(st.parser.Err()))
			st.warn(st.parser.Err().Error())

		case css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			values := st.parser.Values()
			if len(values) == 0 {
				continue
			}
			values, important := stripImportant(values)
			decls = append(decls, Declaration{
				Property:  string(data),
				Value:     tokensText(values),
				Important: important,
			})

		case css.CustomPropertyGrammar:
			var raw []byte
			for _, v := range st.parser.Values() {
				raw = append(raw, v.Data...)
			}
			value, important := strings.TrimSpace(string(raw)), false
			if v, ok := strings.CutSuffix(value, "!important"); ok {
				value, important = strings.TrimSpace(v), true
			}
			decls = append(decls, Declaration{
				Property:  string(data),
				Value:     value,
				Custom:    true,
				Important: important,
			})

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			// nested rules are not flattened into parent declarations
			p.skipAtRuleBlock(st.parser)
			st.warn("nested rule skipped: " + string(data))
		}
	}
}

// stripImportant removes trailing "! important" tokens.
func stripImportant(values []css.Token) ([]css.Token, bool) {
	n := len(values)
	for n > 0 && values[n-1].TokenType == css.WhitespaceToken {
		n--
	}
	if n >= 2 && values[n-1].TokenType == css.IdentToken && strings.EqualFold(string(values[n-1].Data), "important") {
		i := n - 2
		for i >= 0 && values[i].TokenType == css.WhitespaceToken {
			i--
		}
		if i >= 0 && values[i].TokenType == css.DelimToken && string(values[i].Data) == "!" {
			return values[:i], true
		}
	}
	return values, false
}

// tokensText joins tokens back into value text collapsing whitespace.
func tokensText(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			// Add space between non-whitespace tokens
			rawParts = append(rawParts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(rawParts, ""))
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if !parser.HasParseError() {
				return
			}
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
