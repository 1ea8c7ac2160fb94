package documents

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeqRepo() *MemoryRepository {
	r := NewMemoryRepository()
	n := 0
	r.newID = func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
	return r
}

func ids(docs []api.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := newSeqRepo()

	empty, err := r.List(ctx, "user1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := r.Create(ctx, "user1", api.DocumentFields{DocumentName: "A"})
	require.NoError(t, err)
	_, err = r.Create(ctx, "user1", api.DocumentFields{DocumentName: "B"})
	require.NoError(t, err)
	_, err = r.Create(ctx, "user1", api.DocumentFields{DocumentName: "C"})
	require.NoError(t, err)
	assert.Equal(t, "id1", a.ID)

	upd, err := r.Update(ctx, "user1", "id2", api.DocumentFields{DocumentName: "B2", DocumentStatus: "Signed"})
	require.NoError(t, err)
	want := api.Document{ID: "id2", DocumentFields: api.DocumentFields{DocumentName: "B2", DocumentStatus: "Signed"}}
	assert.Empty(t, cmp.Diff(want, upd))

	require.NoError(t, r.Delete(ctx, "user1", "id1"))

	got, err := r.List(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"id2", "id3"}, ids(got))
	assert.Equal(t, "B2", got[0].DocumentName)
}

func TestMemoryRepository_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := newSeqRepo()

	d, err := r.Create(ctx, "user1", api.DocumentFields{DocumentName: "mine"})
	require.NoError(t, err)

	other, err := r.List(ctx, "user2")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = r.Update(ctx, "user2", d.ID, api.DocumentFields{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "user2", d.ID), ErrNotFound)

	mine, err := r.List(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestMemoryRepository_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	r := newSeqRepo()
	_, err := r.Create(ctx, "user1", api.DocumentFields{DocumentName: "A"})
	require.NoError(t, err)

	got, err := r.List(ctx, "user1")
	require.NoError(t, err)
	got[0].DocumentName = "changed"

	again, err := r.List(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].DocumentName)
}

func TestMemoryRepository_DeleteUnknown(t *testing.T) {
	r := newSeqRepo()
	assert.ErrorIs(t, r.Delete(context.Background(), "user1", "nope"), ErrNotFound)
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Create(ctx, "user1", api.DocumentFields{DocumentName: "x"})
		}()
	}
	wg.Wait()

	got, err := r.List(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, got, 50)

	seen := map[string]bool{}
	for _, d := range got {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}
