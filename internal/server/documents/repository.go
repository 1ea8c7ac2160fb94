// Package documents keeps the document lists of the development backend.
// Every user sees only their own list, held in memory or in PostgreSQL.
package documents

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/google/uuid"
)

// ErrNotFound is returned when the id is not in the user's list.
var ErrNotFound = errors.New("document not found")

// Repository stores documents per user. List preserves insertion order.
type Repository interface {
	List(ctx context.Context, owner string) ([]api.Document, error)
	Create(ctx context.Context, owner string, fields api.DocumentFields) (api.Document, error)
	Update(ctx context.Context, owner, id string, fields api.DocumentFields) (api.Document, error)
	Delete(ctx context.Context, owner, id string) error
}

type MemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]api.Document
	newID func() string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lists: make(map[string][]api.Document),
		newID: uuid.NewString,
	}
}

// List returns a copy of the owner's documents, never nil.
func (r *MemoryRepository) List(_ context.Context, owner string) ([]api.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := r.lists[owner]
	out := make([]api.Document, len(docs))
	copy(out, docs)
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, owner string, fields api.DocumentFields) (api.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := api.Document{ID: r.newID(), DocumentFields: fields}
	r.lists[owner] = append(r.lists[owner], doc)
	return doc, nil
}

// Update replaces every field of the document; the id stays.
func (r *MemoryRepository) Update(_ context.Context, owner, id string, fields api.DocumentFields) (api.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs := r.lists[owner]
	for i := range docs {
		if docs[i].ID == id {
			docs[i].DocumentFields = fields
			return docs[i], nil
		}
	}
	return api.Document{}, ErrNotFound
}

func (r *MemoryRepository) Delete(_ context.Context, owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs := r.lists[owner]
	for i := range docs {
		if docs[i].ID == id {
			r.lists[owner] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
