package store

import "github.com/dmitrijs2005/gophdocs/internal/api"

// OperationPending marks op as in flight and clears the previous error.
// Items are kept so the list stays visible while loading.
func OperationPending(op Operation) func(DocumentsState) DocumentsState {
	return func(s DocumentsState) DocumentsState {
		s.Loading = true
		s.Error = ""
		s.CurrentOperation = op
		return s
	}
}

// OperationRejected records msg and leaves Items untouched.
func OperationRejected(msg string) func(DocumentsState) DocumentsState {
	return func(s DocumentsState) DocumentsState {
		s.Loading = false
		s.Error = msg
		s.CurrentOperation = OpNone
		return s
	}
}

// FetchFulfilled replaces the list.
func FetchFulfilled(items []api.Document) func(DocumentsState) DocumentsState {
	return func(s DocumentsState) DocumentsState {
		out := make([]api.Document, len(items))
		copy(out, items)
		return DocumentsState{Items: out}
	}
}

// CreateFulfilled ends a create. The list is refreshed by the following fetch.
func CreateFulfilled(s DocumentsState) DocumentsState {
	s.Loading = false
	s.CurrentOperation = OpNone
	return s
}

// UpdateFulfilled ends an update and splices doc into the list.
func UpdateFulfilled(doc api.Document) func(DocumentsState) DocumentsState {
	return func(s DocumentsState) DocumentsState {
		s.Items = ReplaceDocument(s.Items, doc)
		s.Loading = false
		s.CurrentOperation = OpNone
		return s
	}
}

// DeleteFulfilled ends a delete and filters id out of the list.
func DeleteFulfilled(id string) func(DocumentsState) DocumentsState {
	return func(s DocumentsState) DocumentsState {
		s.Items = RemoveDocument(s.Items, id)
		s.Loading = false
		s.CurrentOperation = OpNone
		return s
	}
}

// DocumentsCleared empties the list, used on logout.
func DocumentsCleared(DocumentsState) DocumentsState {
	return DocumentsState{Items: []api.Document{}}
}

// ReplaceDocument returns a copy of items with the record whose ID matches
// doc.ID replaced by doc. Unknown ids leave the list as it was.
func ReplaceDocument(items []api.Document, doc api.Document) []api.Document {
	out := make([]api.Document, len(items))
	for i, d := range items {
		if d.ID == doc.ID {
			d = doc
		}
		out[i] = d
	}
	return out
}

// RemoveDocument returns a copy of items without the record id.
func RemoveDocument(items []api.Document, id string) []api.Document {
	out := make([]api.Document, 0, len(items))
	for _, d := range items {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// ErrorDismissed clears the error banner.
func ErrorDismissed(s DocumentsState) DocumentsState {
	s.Error = ""
	return s
}
