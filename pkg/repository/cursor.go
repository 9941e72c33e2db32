package repository

import (
	"github.com/fivetwenty-io/rmapi/internal/constants"
)

// Cursor is the pagination state of a repository.
//
// It starts at page 1 with an unknown page count (NoPageLoaded). The first
// successful fetch records TotalPages (PageLoaded); later pages never
// overwrite it.
type Cursor struct {
	CurrentPage int
	TotalPages  *int
}

func newCursor() Cursor {
	return Cursor{CurrentPage: constants.FirstPage}
}

// Loaded reports whether a page has been fetched successfully.
func (c Cursor) Loaded() bool {
	return c.TotalPages != nil
}

// HasMore reports whether a load-more request would advance to a new page.
func (c Cursor) HasMore() bool {
	return c.CurrentPage < c.knownTotal()
}

// knownTotal treats an unknown page count as zero, so nothing advances
// before the first page is in.
func (c Cursor) knownTotal() int {
	if c.TotalPages == nil {
		return 0
	}

	return *c.TotalPages
}

// pageFor returns the page a fetch should request. A load-more request only
// moves forward while the next page exists; on the last page it requests the
// last page again.
func (c Cursor) pageFor(loadMore bool) int {
	if loadMore && c.HasMore() {
		return c.CurrentPage + 1
	}

	return c.CurrentPage
}

// advance records a successful fetch of page.
func (c *Cursor) advance(page, totalPages int) {
	c.CurrentPage = page

	if c.TotalPages == nil {
		c.TotalPages = &totalPages
	}
}

// snapshot returns a copy that shares no memory with c.
func (c Cursor) snapshot() Cursor {
	out := Cursor{CurrentPage: c.CurrentPage}

	if c.TotalPages != nil {
		total := *c.TotalPages
		out.TotalPages = &total
	}

	return out
}
