// Package store is the shared state container of the client: the session and
// the loaded document list.
//
// Store guards the state with a mutex. Callers mutate it only through
// UpdateAuth and UpdateDocuments, passing one of the pure transition
// functions of this package (or a composition of them).
package store

import (
	"sync"

	"github.com/dmitrijs2005/gophdocs/internal/api"
)

// Operation labels the document call in flight. It scopes loading indicators
// and does not serialize calls.
type Operation string

const (
	OpNone   Operation = ""
	OpFetch  Operation = "fetch"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// AuthState is the session. An empty Token means not logged in.
type AuthState struct {
	Token   string
	Loading bool
	Error   string
}

func (a AuthState) LoggedIn() bool {
	return a.Token != ""
}

// DocumentsState is the list of documents as last returned by the server.
type DocumentsState struct {
	Items            []api.Document
	Loading          bool
	Error            string
	CurrentOperation Operation
}

// State is the whole client state.
type State struct {
	Auth      AuthState
	Documents DocumentsState
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{state: State{Documents: DocumentsState{Items: []api.Document{}}}}
}

// State returns a snapshot. The Items slice is copied so the caller may keep
// it while the store moves on.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.Documents.Items = make([]api.Document, len(s.state.Documents.Items))
	copy(st.Documents.Items, s.state.Documents.Items)
	return st
}

// Token returns the current bearer token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Auth.Token
}

func (s *Store) UpdateAuth(fn func(AuthState) AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth = fn(s.state.Auth)
}

func (s *Store) UpdateDocuments(fn func(DocumentsState) DocumentsState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Documents = fn(s.state.Documents)
}
