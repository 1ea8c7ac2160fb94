package listview

import "github.com/dmitrijs2005/gophdocs/internal/api"

// DefaultPageSize applies when a State is created with a non-positive size.
const DefaultPageSize = 10

// PageSizes are the steps offered by Grow and Shrink.
var PageSizes = []int{5, 10, 25, 50, 100}

// State is the transient view state of the document table. Methods return
// new values; the zero SortKey means server order.
type State struct {
	SortKey   SortKey
	Direction Direction
	Page      int
	PageSize  int
}

func New(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{PageSize: pageSize}
}

// SortBy selects key. The active key toggles direction, a new key sorts
// ascending.
func (s State) SortBy(key SortKey) State {
	if s.SortKey == key {
		return s.Reverse()
	}
	s.SortKey = key
	s.Direction = Asc
	return s
}

// SortWith sets key and direction explicitly.
func (s State) SortWith(key SortKey, dir Direction) State {
	s.SortKey = key
	s.Direction = dir
	return s
}

func (s State) Reverse() State {
	if s.Direction == Asc {
		s.Direction = Desc
	} else {
		s.Direction = Asc
	}
	return s
}

// NextSortKey cycles to the column after the active one.
func (s State) NextSortKey() State {
	keys := SortKeys()
	next := keys[0]
	for i, k := range keys {
		if k == s.SortKey {
			next = keys[(i+1)%len(keys)]
			break
		}
	}
	s.SortKey = next
	s.Direction = Asc
	return s
}

func (s State) NextPage(total int) State {
	s.Page++
	return s.Clamp(total)
}

func (s State) PrevPage() State {
	if s.Page > 0 {
		s.Page--
	}
	return s
}

// SetPage moves to page (0-based), clamped to the available pages.
func (s State) SetPage(page, total int) State {
	s.Page = page
	return s.Clamp(total)
}

// WithPageSize changes the page size and returns to the first page.
func (s State) WithPageSize(size int) State {
	if size <= 0 {
		size = DefaultPageSize
	}
	s.PageSize = size
	s.Page = 0
	return s
}

// Grow and Shrink step through PageSizes.
func (s State) Grow() State {
	for _, n := range PageSizes {
		if n > s.PageSize {
			return s.WithPageSize(n)
		}
	}
	return s
}

func (s State) Shrink() State {
	for i := len(PageSizes) - 1; i >= 0; i-- {
		if PageSizes[i] < s.PageSize {
			return s.WithPageSize(PageSizes[i])
		}
	}
	return s
}

// Clamp keeps Page within [0, PageCount(total)).
func (s State) Clamp(total int) State {
	last := PageCount(total, s.PageSize) - 1
	if s.Page > last {
		s.Page = last
	}
	if s.Page < 0 {
		s.Page = 0
	}
	return s
}

// Window sorts docs and returns the rows of the current page.
func (s State) Window(docs []api.Document) []api.Document {
	sorted := Sort(docs, s.SortKey, s.Direction)
	c := s.Clamp(len(sorted))
	return Page(sorted, c.Page, c.PageSize)
}
