// Package svg prepares SVG markup for safe inlining into a larger HTML
// document. It parses arbitrary, possibly malformed SVG with a permissive
// parser and applies a fixed sanitize pipeline: viewBox inference from
// width/height, and uniquification of every identifier (ids, classes,
// url(#...) references, and embedded style selectors) with a
// cryptographically random per-cycle suffix, so that several sanitized
// documents can share a page without colliding.
//
// # Basic Usage
//
//	import "github.com/castlegateit/monolith/core/svg"
//
//	s := svg.Parse(`<svg width="24" height="24"><path id="a" d="..."/></svg>`)
//	fmt.Println(s.Embed())
//	// <svg width="24" height="24" viewBox="0 0 24 24"><path id="a_3f9c..." d="..."></path></svg>
//
// Loading from disk:
//
//	s, err := svg.Load("assets/icons/logo.svg")
//	if err != nil {
//		// svg.ErrFileNotFound when the path does not exist
//	}
//	html := s.Embed()
//
// # Output Accessors
//
// Three accessors cover the document's states:
//
//	s.EmbedSourceCode() // original input, byte-for-byte
//	s.EmbedSourceDOM()  // pristine parse result, no sanitization
//	s.Embed()           // sanitized working tree, the inlining output
//
// # Destructive Operations
//
// RemoveAttributes and RemoveStyles mutate only the working tree; the
// pristine document is retained so Reset can return to a freshly
// sanitized state at any time:
//
//	s := svg.Parse(markup)
//	s.RemoveAttributes("width", "height")
//	s.RemoveStyles("fill", "stroke")
//	out := s.Embed() // dimensions and colors stripped
//
//	s.Reset()        // pristine again, new suffix, pipeline rerun
//
// # Suffixing Semantics
//
// The suffix is appended to the whole literal value of class, id, href,
// and xlink:href attributes. A class attribute holding several
// space-separated names therefore receives a single suffix on the entire
// string, and an href pointing at an external URL is suffixed like any
// other; both are long-standing behaviors of this pipeline that callers
// may depend on.
//
// Selector rewriting inside <style> blocks is regex-based by design: only
// class/id tokens immediately preceding '{' or ',' are rewritten. That
// covers the selectors icon sets actually ship without pulling in a CSS
// parser.
//
// # Error Handling
//
// The package is best-effort and non-fatal. Malformed markup parses into
// a best-effort tree, a missing root element turns root-targeted
// operations into no-ops, and removal of absent attributes or styles does
// nothing. Only Load returns errors (ErrFileNotFound, ErrFileRead).
//
// # Concurrency
//
// A Sanitizer owns one document lifecycle and is not safe for concurrent
// use; callers must serialize access to a shared instance. Independent
// instances are fully isolated.
package svg
