package svg

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// cloneTree deep-copies a node and its descendants. Parent and sibling
// links are rebuilt through AppendChild so the copy shares nothing with
// the original.
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

// findRoot returns the first <svg> element under container in document
// order, or nil when the tree holds none.
func findRoot(container *html.Node) *html.Node {
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Svg || strings.EqualFold(c.Data, "svg")) {
			return c
		}
		if found := findRoot(c); found != nil {
			return found
		}
	}
	return nil
}

// elements returns a snapshot of every element under container in
// document order. Mutation passes iterate the snapshot, never the live
// tree, so attribute edits cannot disturb traversal.
func elements(container *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(container)
	return out
}

// attrName returns the qualified attribute name as it appears in markup,
// e.g. "xlink:href" for a namespaced attribute.
func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(attrName(a), name) {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(attrName(a), name) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: val})
}

func removeAttr(n *html.Node, name string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if !strings.EqualFold(attrName(a), name) {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

func isStyleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Style || strings.EqualFold(n.Data, "style"))
}
