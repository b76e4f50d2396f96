package tokens

import (
	"encoding/json"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CrawlerMetadata is stored under the vendor namespace in `$extensions`.
type CrawlerMetadata struct {
	UsageCount    int      `json:"usageCount,omitempty"`
	Source        string   `json:"source,omitempty"`
	Category      string   `json:"category,omitempty"`
	SourceURLs    []string `json:"sourceUrls,omitempty"`
	OriginalValue string   `json:"originalValue,omitempty"`
}

// IsEmpty is true when no field carries information.
func (m CrawlerMetadata) IsEmpty() bool {
	return m.UsageCount == 0 && m.Source == "" && m.Category == "" && len(m.SourceURLs) == 0 && m.OriginalValue == ""
}

// Deprecation marks a token deprecated, encoded as `true` or as the reason.
type Deprecation struct {
	Reason string
}

func (d Deprecation) MarshalJSON() ([]byte, error) {
	if d.Reason == "" {
		return []byte("true"), nil
	}
	return json.Marshal(d.Reason)
}

// Node is either *Token or *Group.
type Node interface {
	node()
}

// Token is a leaf of the document. Type is nil when inherited from the
// enclosing group.
type Token struct {
	Value       Value                      `json:"$value"`
	Type        *Kind                      `json:"$type,omitempty"`
	Description string                     `json:"$description,omitempty"`
	Deprecated  *Deprecation               `json:"$deprecated,omitempty"`
	Extensions  map[string]CrawlerMetadata `json:"$extensions,omitempty"`
}

func (*Token) node() {}

// members keeps named children in insertion order.
type members struct {
	m *orderedmap.OrderedMap[string, Node]
}

// Set adds or replaces named child. Replaced child keeps its position.
func (ms *members) Set(name string, n Node) (replaced bool) {
	if ms.m == nil {
		ms.m = orderedmap.New[string, Node]()
	}
	_, replaced = ms.m.Set(name, n)
	return replaced
}

// Get returns named child.
func (ms *members) Get(name string) (Node, bool) {
	if ms.m == nil {
		return nil, false
	}
	return ms.m.Get(name)
}

// Len returns number of direct children.
func (ms *members) Len() int {
	if ms.m == nil {
		return 0
	}
	return ms.m.Len()
}

// All iterates over direct children in insertion order.
func (ms *members) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if ms.m == nil {
			return
		}
		for pair := ms.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// encode writes properties first and children after them.
func (ms *members) encode(props ...prop) ([]byte, error) {
	out := orderedmap.New[string, any]()
	for _, p := range props {
		if p.set {
			out.Set(p.name, p.value)
		}
	}
	for name, n := range ms.All() {
		out.Set(name, n)
	}
	return json.Marshal(out)
}

type prop struct {
	name  string
	value any
	set   bool
}

// Group is a namespace node. Its Type is inherited by all descendants that do
// not declare their own. Groups never carry `$value`.
type Group struct {
	members

	Type        *Kind
	Description string
}

func (*Group) node() {}

// NewGroup returns group with optional inherited type.
func NewGroup(kind *Kind, description string) *Group {
	return &Group{Type: kind, Description: description}
}

func (g *Group) MarshalJSON() ([]byte, error) {
	return g.encode(
		prop{name: "$type", value: g.Type, set: g.Type != nil},
		prop{name: "$description", value: g.Description, set: g.Description != ""},
	)
}

// Document is the root of the token tree.
type Document struct {
	members
}

// NewDocument returns empty document.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.encode()
}

// Walk visits every node depth first in document order. Path holds names
// from the root down to and including the visited node.
func (d *Document) Walk(fn func(path []string, n Node)) {
	walk(&d.members, nil, fn)
}

func walk(ms *members, path []string, fn func([]string, Node)) {
	for name, n := range ms.All() {
		p := append(path[:len(path):len(path)], name)
		fn(p, n)
		if g, ok := n.(*Group); ok {
			walk(&g.members, p, fn)
		}
	}
}

// Stats counts groups and tokens in the document.
func (d *Document) Stats() (groups, tokens int) {
	d.Walk(func(_ []string, n Node) {
		switch n.(type) {
		case *Group:
			groups++
		case *Token:
			tokens++
		}
	})
	return groups, tokens
}
