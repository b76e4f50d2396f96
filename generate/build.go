package generate

import (
	"strings"

	"dtc/extract"
	"dtc/tokens"
)

// Build assembles document from extracted tokens. It does no I/O and the
// same input always produces the same document.
func Build(data []extract.ExtractedToken, opts Options) *tokens.Document {
	doc, _ := build(data, opts)
	return doc
}

// buildReport lists paths of tokens lost while building.
type buildReport struct {
	replaced []string // later token with the same name took the place
	skipped  []string // token without value
	untyped  []string // token type has no group
}

func build(data []extract.ExtractedToken, opts Options) (*tokens.Document, buildReport) {
	doc := tokens.NewDocument()
	var rep buildReport

	if !opts.UseGroups {
		for _, t := range data {
			name := tokens.SanitizeTokenName(t.Name)
			if t.Value == nil {
				rep.skipped = append(rep.skipped, name)
				continue
			}
			if doc.Set(name, newToken(t, t.Value.Kind().Ptr(), opts.VendorNamespace)) {
				rep.replaced = append(rep.replaced, name)
			}
		}
		return doc, rep
	}

	for _, t := range data {
		if !t.Type.IsValid() {
			rep.untyped = append(rep.untyped, t.Type.String()+"."+tokens.SanitizeTokenName(t.Name))
		}
	}
	for _, typ := range extract.TokenTypes() {
		var bucket []extract.ExtractedToken
		for _, t := range data {
			if t.Type != typ {
				continue
			}
			if t.Value == nil {
				rep.skipped = append(rep.skipped, typ.GroupName()+"."+tokens.SanitizeTokenName(t.Name))
				continue
			}
			bucket = append(bucket, t)
		}
		if len(bucket) == 0 {
			continue
		}

		kind := groupKind(typ, bucket)
		group := tokens.NewGroup(kind.Ptr(), typ.Description())
		for _, t := range bucket {
			parent, path := group, []string{typ.GroupName()}
			if t.HasCategory() {
				category := tokens.SanitizeTokenName(t.Category)
				path = append(path, category)
				parent = subgroup(group, category)
			}

			name := tokens.SanitizeTokenName(t.Name)
			var explicit *tokens.Kind
			if k := t.Value.Kind(); k != kind {
				explicit = k.Ptr()
			}
			tok := newToken(t, explicit, opts.VendorNamespace)
			if n, ok := parent.Get(name); ok {
				if g, ok := n.(*tokens.Group); ok {
					// category with the same name keeps its tokens
					parent, path, name = g, append(path, name), tokens.RootTokenName
				}
			}
			if parent.Set(name, tok) {
				rep.replaced = append(rep.replaced, strings.Join(append(path, name), "."))
			}
		}
		doc.Set(typ.GroupName(), group)
	}
	return doc, rep
}

// groupKind is the kind every value of the bucket has, or the default kind
// of token type when values are mixed.
func groupKind(typ extract.TokenType, bucket []extract.ExtractedToken) tokens.Kind {
	kind := bucket[0].Value.Kind()
	for _, t := range bucket[1:] {
		if t.Value.Kind() != kind {
			return typ.Kind()
		}
	}
	return kind
}

// subgroup returns category group creating it when necessary. Token having
// the same name as category moves into the group as its root token.
func subgroup(group *tokens.Group, name string) *tokens.Group {
	n, ok := group.Get(name)
	if g, isGroup := n.(*tokens.Group); ok && isGroup {
		return g
	}
	g := tokens.NewGroup(nil, "")
	if ok {
		g.Set(tokens.RootTokenName, n)
	}
	group.Set(name, g)
	return g
}

func newToken(t extract.ExtractedToken, kind *tokens.Kind, namespace string) *tokens.Token {
	tok := &tokens.Token{
		Value:       t.Value,
		Type:        kind,
		Description: t.Description,
	}
	if md := t.Metadata(); !md.IsEmpty() {
		tok.Extensions = map[string]tokens.CrawlerMetadata{namespace: md}
	}
	return tok
}
