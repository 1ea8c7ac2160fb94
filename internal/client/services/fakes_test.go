package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/stretchr/testify/require"
)

// setupDB opens a migrated SQLite file under t.TempDir.
func setupDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "session.db")
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, dsn
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// fakeClient is an in-memory client.Client. It keeps a document list and
// counts calls; the *Err fields force failures.
type fakeClient struct {
	mu sync.Mutex

	token    string
	LoginErr error

	docs      []api.Document
	nextID    int
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	Calls     map[string]int
	LastLogin [2]string
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient(docs ...api.Document) *fakeClient {
	return &fakeClient{token: "tok-1", docs: docs, Calls: map[string]int{}}
}

func (f *fakeClient) calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["login"]++
	f.LastLogin = [2]string{username, password}
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.token, nil
}

func (f *fakeClient) ListDocuments(context.Context) ([]api.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["list"]++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]api.Document{}, f.docs...), nil
}

func (f *fakeClient) CreateDocument(_ context.Context, fields api.DocumentFields) (api.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["create"]++
	if f.CreateErr != nil {
		return api.Document{}, f.CreateErr
	}
	f.nextID++
	doc := api.Document{ID: fmt.Sprintf("new-%d", f.nextID), DocumentFields: fields}
	f.docs = append(f.docs, doc)
	return doc, nil
}

func (f *fakeClient) UpdateDocument(_ context.Context, id string, fields api.DocumentFields) (api.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["update"]++
	if f.UpdateErr != nil {
		return api.Document{}, f.UpdateErr
	}
	for i, d := range f.docs {
		if d.ID == id {
			f.docs[i].DocumentFields = fields
			return f.docs[i], nil
		}
	}
	return api.Document{}, &client.HTTPError{StatusCode: 404, Code: api.ErrorCodeNotFound}
}

func (f *fakeClient) DeleteDocument(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["delete"]++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	out := f.docs[:0]
	for _, d := range f.docs {
		if d.ID != id {
			out = append(out, d)
		}
	}
	f.docs = out
	return nil
}
