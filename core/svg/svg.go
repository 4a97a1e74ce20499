package svg

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// suffixBytes is the entropy of the per-cycle namespace suffix. 32 bytes
// hex-encoded gives a 64-character token with negligible collision
// probability across documents embedded on the same page.
const suffixBytes = 32

// Sanitizer owns the lifecycle of a single SVG document: the pristine
// parsed tree, a mutable working copy, and the namespace suffix of the
// current sanitize cycle. Instances are not safe for concurrent use.
type Sanitizer struct {
	source string     // raw input exactly as supplied
	doc    *html.Node // pristine parse result, never mutated
	work   *html.Node // working copy, rebuilt on every Reset
	root   *html.Node // first <svg> element within work, nil when absent
	suffix string
	random io.Reader
}

// Parse builds a Sanitizer from raw SVG markup. The markup is parsed
// permissively: malformed input yields a best-effort tree rather than an
// error. The sanitize pipeline (viewBox inference, identifier
// uniquification) runs immediately, so the result of Embed is already
// safe to inline.
func Parse(markup string, opts ...Option) *Sanitizer {
	s := &Sanitizer{
		source: markup,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = parseFragment(markup)
	s.Reset()
	return s
}

// Load reads the file at path and delegates to Parse. A missing file
// returns ErrFileNotFound and no Sanitizer.
func Load(path string, opts ...Option) (*Sanitizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s", ErrFileRead, path)
	}
	return Parse(string(data), opts...), nil
}

// Reset discards all mutations by rebuilding the working tree from the
// pristine document, then reruns the sanitize pipeline with a freshly
// generated suffix. Attributes and styles removed since the last cycle
// reappear.
func (s *Sanitizer) Reset() {
	if s == nil || s.doc == nil {
		return
	}
	s.work = cloneTree(s.doc)
	s.root = findRoot(s.work)
	s.suffix = s.newSuffix()
	s.inferViewBox()
	s.applySuffix()
}

// Suffix returns the namespace token of the current sanitize cycle,
// including the leading underscore. Empty before the first Parse.
func (s *Sanitizer) Suffix() string {
	if s == nil {
		return ""
	}
	return s.suffix
}

// EmbedSourceCode returns the original input byte-for-byte, unaffected
// by any sanitization or removal calls.
func (s *Sanitizer) EmbedSourceCode() string {
	if s == nil {
		return ""
	}
	return s.source
}

// EmbedSourceDOM serializes the pristine document tree. The output may
// differ textually from EmbedSourceCode because parsing normalizes
// structure, but it carries no sanitization.
func (s *Sanitizer) EmbedSourceDOM() string {
	if s == nil {
		return ""
	}
	return renderChildren(s.doc)
}

// Embed serializes the working tree, reflecting the sanitize pipeline
// and any RemoveAttributes/RemoveStyles calls applied since the last
// Reset. This is the string intended for inlining into HTML.
func (s *Sanitizer) Embed() string {
	if s == nil {
		return ""
	}
	return renderChildren(s.work)
}

func (s *Sanitizer) newSuffix() string {
	buf := make([]byte, suffixBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		// A failing injected source must not break sanitization.
		_, _ = io.ReadFull(rand.Reader, buf)
	}
	return "_" + hex.EncodeToString(buf)
}

// parseFragment parses markup in a div context so that <svg> enters
// foreign-content mode, which preserves camelCase SVG names such as
// viewBox and linearGradient. The parser recovers from malformed input
// instead of failing; an unreadable fragment leaves the container empty,
// which keeps every later operation a safe no-op.
func parseFragment(markup string) *html.Node {
	container := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(markup), container)
	if err != nil {
		return container
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container
}

// renderChildren serializes the children of container, skipping the
// synthetic container element itself.
func renderChildren(container *html.Node) string {
	if container == nil {
		return ""
	}
	var buf bytes.Buffer
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			break
		}
	}
	return buf.String()
}
