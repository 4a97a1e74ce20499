package svg

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// RemoveAttributes removes the named attributes from the root element.
// Other elements are untouched. Absent attributes and a missing root are
// silent no-ops. Reset undoes the removal.
func (s *Sanitizer) RemoveAttributes(names ...string) {
	if s == nil || s.root == nil {
		return
	}
	for _, name := range names {
		removeAttr(s.root, name)
	}
}

// RemoveStyles strips the given style properties from every element in
// the working tree: presentation attributes of the same name, matching
// declarations inside inline style attributes, and matching declarations
// inside embedded <style> blocks. Property names match case-insensitively;
// values are deleted wholesale, not parsed. Reset undoes the removal.
func (s *Sanitizer) RemoveStyles(properties ...string) {
	if s == nil || s.work == nil {
		return
	}
	els := elements(s.work)
	for _, prop := range properties {
		if prop == "" {
			continue
		}
		decl := declarationPattern(prop)
		for _, el := range els {
			removeAttr(el, prop)
			stripInlineDeclaration(el, decl)
			if isStyleElement(el) {
				stripStyleText(el, decl)
			}
		}
	}
}

// declarationPattern matches "prop: value" up to the terminating
// semicolon or closing brace, with an optional trailing semicolon. The
// leading guard keeps "fill" from matching inside "stroke-fill".
func declarationPattern(prop string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^a-z0-9-])` + regexp.QuoteMeta(prop) + `\s*:[^;}]*;?`)
}

// stripInlineDeclaration deletes matching declarations from the style
// attribute. An attribute left empty after trimming is dropped entirely.
func stripInlineDeclaration(el *html.Node, decl *regexp.Regexp) {
	for i, a := range el.Attr {
		if a.Namespace != "" || a.Key != "style" {
			continue
		}
		cleaned := strings.TrimSpace(decl.ReplaceAllString(a.Val, "${1}"))
		if cleaned == "" {
			removeAttr(el, "style")
			return
		}
		el.Attr[i].Val = cleaned
	}
}

// stripStyleText deletes matching declarations from the text content of
// an embedded <style> element.
func stripStyleText(el *html.Node, decl *regexp.Regexp) {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			c.Data = decl.ReplaceAllString(c.Data, "${1}")
		}
	}
}
