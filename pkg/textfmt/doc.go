// Package textfmt provides presentation-layer string formatting helpers:
// word-aware truncation, English ordinals, URL normalization, and slug
// generation with Unicode diacritic folding.
//
// # Usage
//
//	import "github.com/castlegateit/monolith/pkg/textfmt"
//
//	textfmt.Truncate("The quick brown fox jumps", 15, "…")
//	// "The quick brown…"
//
//	textfmt.Ordinal(22)
//	// "22nd"
//
//	textfmt.NormalizeURL("Example.COM:443/")
//	// "https://example.com"
//
//	textfmt.Slug("Café & Restaurant")
//	// "cafe-restaurant"
//
// All functions are pure and safe for concurrent use.
package textfmt
