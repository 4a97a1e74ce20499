// Package fileutil provides small file helpers for presentation code:
// base64 data URLs for inlining assets, human-readable file sizes, and
// an existence check.
//
// # Usage
//
//	import "github.com/castlegateit/monolith/pkg/fileutil"
//
//	uri, err := fileutil.DataURL("assets/logo.svg")
//	if err != nil {
//		// fileutil.ErrFileNotFound when the path does not exist
//	}
//	// "data:image/svg+xml;base64,PHN2ZyB..."
//
//	fileutil.FormatBytes(1536)
//	// "1.5 KB"
//
//	size, err := fileutil.FileSize("assets/logo.svg")
//	// "4.2 KB"
//
//	if fileutil.Exists("assets/logo.svg") {
//		// safe to reference
//	}
package fileutil
