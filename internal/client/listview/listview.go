// Package listview derives the visible part of the document list: sort order
// and page window. It never changes the list itself.
package listview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/api"
)

// SortKey is the JSON name of a document attribute.
type SortKey string

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("unknown sort direction %q", s)
}

// SortKeys lists the sortable attributes in column order.
func SortKeys() []SortKey {
	keys := make([]SortKey, len(api.FieldNames))
	for i, n := range api.FieldNames {
		keys[i] = SortKey(n)
	}
	return keys
}

// ParseSortKey validates a user-supplied column name.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys() {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// FieldValue returns the attribute of d named by key.
func FieldValue(d api.Document, key SortKey) string {
	return d.Value(string(key))
}

// Sort returns a sorted copy of docs. Comparison is by string value and the
// sort is stable, so equal values keep their server order.
func Sort(docs []api.Document, key SortKey, dir Direction) []api.Document {
	out := slices.Clone(docs)
	if key == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b api.Document) int {
		c := strings.Compare(FieldValue(a, key), FieldValue(b, key))
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

// PageCount is the number of pages of size pageSize needed for n rows. An
// empty list still has one (empty) page.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 || n == 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Page returns rows [page*size, page*size+size) of docs, clipped to its
// bounds.
func Page(docs []api.Document, page, size int) []api.Document {
	if size <= 0 {
		return docs
	}
	start := page * size
	if start < 0 || start >= len(docs) {
		return []api.Document{}
	}
	end := min(start+size, len(docs))
	return docs[start:end]
}
