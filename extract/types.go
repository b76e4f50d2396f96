// Package extract is the boundary between value extractors and the token
// document builder. It defines the ExtractedToken contract, loads tokens
// serialized by external crawlers and harvests tokens from local stylesheets.
package extract

import (
	"fmt"

	"dtc/tokens"
)

// Uncategorized category is treated as no category at all.
const Uncategorized = "uncategorized"

// ExtractedToken is a single already converted value with the metadata
// gathered while it was discovered.
type ExtractedToken struct {
	Type          TokenType
	Name          string
	Value         tokens.Value
	Category      string
	UsageCount    int
	Source        string
	SourceURLs    []string
	Description   string
	OriginalValue string // raw CSS text the value was converted from
}

// HasCategory is false for empty and "uncategorized" categories.
func (t ExtractedToken) HasCategory() bool {
	return t.Category != "" && t.Category != Uncategorized
}

// Metadata returns crawler metadata to be attached to the generated token.
func (t ExtractedToken) Metadata() tokens.CrawlerMetadata {
	md := tokens.CrawlerMetadata{
		UsageCount:    t.UsageCount,
		Source:        t.Source,
		SourceURLs:    t.SourceURLs,
		OriginalValue: t.OriginalValue,
	}
	if t.HasCategory() {
		md.Category = t.Category
	}
	return md
}

func (t ExtractedToken) String() string {
	if t.Value == nil {
		return fmt.Sprintf("%s %q: <nil>", t.Type, t.Name)
	}
	return fmt.Sprintf("%s %q: %s", t.Type, t.Name, t.Value.Kind())
}
