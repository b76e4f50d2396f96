package generate

import (
	"dtc/tokens"
	"dtc/utils/debug"
)

// Describe returns readable tree of the document for debug reports.
func Describe(doc *tokens.Document) string {
	tw := debug.NewTreeWriter()

	groups, count := doc.Stats()
	tw.Line(0, "Token document: %d groups, %d tokens", groups, count)
	doc.Walk(func(path []string, n tokens.Node) {
		depth, name := len(path), path[len(path)-1]
		switch n := n.(type) {
		case *tokens.Group:
			if n.Type != nil {
				tw.Line(depth, "Group[%q] type[%s] children[%d]", name, n.Type, n.Len())
			} else {
				tw.Line(depth, "Group[%q] children[%d]", name, n.Len())
			}
			if n.Description != "" {
				tw.Text(depth+1, "description", n.Description)
			}
		case *tokens.Token:
			kind := "inherited"
			if n.Type != nil {
				kind = n.Type.String()
			}
			tw.Line(depth, "Token[%q] type[%s]", name, kind)
			tw.JSON(depth+1, "value", n.Value)
			for ns, md := range n.Extensions {
				tw.JSON(depth+1, ns, md)
			}
		}
	})
	return tw.String()
}
