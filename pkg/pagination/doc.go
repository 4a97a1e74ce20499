// Package pagination computes the numbers a pager needs: clamped current
// page, page count, offsets, and a bounded window of page links.
//
// # Usage
//
//	import "github.com/castlegateit/monolith/pkg/pagination"
//
//	p := pagination.New(95, 10, 4)
//	p.Pages   // 10
//	p.Offset() // 30
//	p.Window  // [2 3 4 5 6]
//
//	if p.HasNext() {
//		nextURL := fmt.Sprintf("/posts/page/%d", p.Next())
//	}
//
// The window width is configurable:
//
//	p := pagination.New(95, 10, 1, pagination.WithWindow(3))
//	p.Window // [1 2 3]
//
// All inputs are clamped instead of rejected, so template code can pass
// user-supplied page numbers straight through.
package pagination
