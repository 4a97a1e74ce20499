package svg

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	// urlRefPattern matches the fragment identifier inside a url(#...)
	// reference, tolerating optional quotes and whitespace. Group 1 is
	// everything up to and including the '#', group 2 the identifier.
	urlRefPattern = regexp.MustCompile(`(url\(\s*['"]?\s*#)([^'")\s]+)`)

	// selectorPattern matches a class or id selector token that directly
	// precedes a rule-opening brace or a selector-list comma. Combinators
	// and attribute selectors deliberately fall outside the pattern; this
	// is text rewriting, not a CSS parser.
	selectorPattern = regexp.MustCompile(`([.#][A-Za-z_][A-Za-z0-9_-]*)(\s*[{,])`)
)

// inferViewBox synthesizes a viewBox from the root's width and height
// when none is declared. Missing root or missing dimensions skip
// silently; this pass is best-effort.
func (s *Sanitizer) inferViewBox() {
	if s.root == nil {
		return
	}
	if _, ok := getAttr(s.root, "viewBox"); ok {
		return
	}
	width, okW := getAttr(s.root, "width")
	height, okH := getAttr(s.root, "height")
	if !okW || !okH || width == "" || height == "" {
		return
	}
	setAttr(s.root, "viewBox", fmt.Sprintf("0 0 %s %s", width, height))
}

// applySuffix namespaces every identifier in the working tree with the
// current cycle's suffix so that multiple sanitized documents can share
// a page without id, class, or url(#...) collisions.
func (s *Sanitizer) applySuffix() {
	for _, el := range elements(s.work) {
		s.suffixIdentifiers(el)
		s.suffixFragmentRefs(el)
		if isStyleElement(el) {
			s.suffixSelectors(el)
		}
	}
}

// suffixIdentifiers appends the suffix to the literal value of class,
// id, href, and xlink:href attributes. The append is naive: a class
// attribute holding several space-separated names receives one suffix on
// the whole string, matching the established output of this pipeline.
func (s *Sanitizer) suffixIdentifiers(el *html.Node) {
	for i, a := range el.Attr {
		if a.Val == "" || !isIdentifierAttr(a) {
			continue
		}
		el.Attr[i].Val = a.Val + s.suffix
	}
}

func isIdentifierAttr(a html.Attribute) bool {
	switch strings.ToLower(attrName(a)) {
	case "class", "id", "href", "xlink:href":
		return true
	}
	return false
}

// suffixFragmentRefs rewrites url(#fragment) references in attribute
// values, keeping the url() wrapper and quoting intact. The id attribute
// is exempt; suffixIdentifiers already covers it.
func (s *Sanitizer) suffixFragmentRefs(el *html.Node) {
	for i, a := range el.Attr {
		if a.Namespace == "" && a.Key == "id" {
			continue
		}
		if !strings.Contains(a.Val, "url(") {
			continue
		}
		el.Attr[i].Val = urlRefPattern.ReplaceAllString(a.Val, "${1}${2}"+s.suffix)
	}
}

// suffixSelectors rewrites class and id selectors inside an embedded
// <style> block so they keep resolving against the suffixed attributes.
func (s *Sanitizer) suffixSelectors(el *html.Node) {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			c.Data = selectorPattern.ReplaceAllString(c.Data, "${1}"+s.suffix+"${2}")
		}
	}
}
