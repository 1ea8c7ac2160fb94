package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
	"github.com/dmitrijs2005/gophdocs/internal/client/store"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(name string) api.DocumentFields {
	return api.DocumentFields{
		DocumentName:    name,
		DocumentStatus:  "Draft",
		DocumentType:    "Order",
		EmployeeSigDate: "2024-01-02",
		CompanySigDate:  "2024-01-03",
	}
}

func seeded() []api.Document {
	return []api.Document{
		{ID: "1", DocumentFields: api.DocumentFields{DocumentName: "a"}},
		{ID: "2", DocumentFields: api.DocumentFields{DocumentName: "b"}},
		{ID: "3", DocumentFields: api.DocumentFields{DocumentName: "c"}},
	}
}

func newDocs(t *testing.T, fc *fakeClient) (DocumentService, *store.Store) {
	t.Helper()
	st := store.New()
	st.UpdateAuth(store.LoginFulfilled("tok"))
	return NewDocumentService(fc, st, logging.Discard()), st
}

func TestDocuments_RequireSession(t *testing.T) {
	fc := newFakeClient(seeded()...)
	st := store.New()
	svc := NewDocumentService(fc, st, logging.Discard())
	ctx := context.Background()

	require.ErrorIs(t, svc.Fetch(ctx), common.ErrNotLoggedIn)
	_, err := svc.Create(ctx, fields("x"))
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	_, err = svc.Update(ctx, "1", fields("x"))
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	require.ErrorIs(t, svc.Delete(ctx, "1"), common.ErrNotLoggedIn)

	assert.Empty(t, fc.Calls)
	assert.Equal(t, store.OpNone, st.State().Documents.CurrentOperation)
}

func TestFetch_LoadsList(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)

	require.NoError(t, svc.Fetch(context.Background()))

	want := store.DocumentsState{Items: seeded()}
	assert.Empty(t, cmp.Diff(want, st.State().Documents))
}

func TestFetch_FailureKeepsPreviousList(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	fc.ListErr = client.ErrUnavailable
	err := svc.Fetch(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)

	docs := st.State().Documents
	assert.Empty(t, cmp.Diff(seeded(), docs.Items))
	assert.False(t, docs.Loading)
	assert.Equal(t, store.OpNone, docs.CurrentOperation)
	assert.Equal(t, "Failed to load documents: server unavailable", docs.Error)
}

func TestCreate_AppendsExactlyOne(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	doc, err := svc.Create(context.Background(), fields("new one"))
	require.NoError(t, err)
	assert.Equal(t, "new-1", doc.ID)
	assert.Equal(t, "2024-01-02T00:00:00.000Z", doc.EmployeeSigDate)

	items := st.State().Documents.Items
	require.Len(t, items, 4)
	assert.Empty(t, cmp.Diff(seeded(), items[:3]))
	assert.Equal(t, "new one", items[3].DocumentName)
	assert.Equal(t, 2, fc.calls("list"))
}

func TestCreate_ValidationNeverReachesNetwork(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)
	st.UpdateDocuments(store.FetchFulfilled(seeded()))
	before := st.State()

	f := fields("x")
	f.DocumentType = ""
	_, err := svc.Create(context.Background(), f)

	var verr *forms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Mentions("Document type"))
	assert.Zero(t, fc.calls("create"))
	assert.Empty(t, cmp.Diff(before, st.State()))
}

func TestCreate_FailureKeepsList(t *testing.T) {
	fc := newFakeClient(seeded()...)
	fc.CreateErr = &client.HTTPError{StatusCode: 500}
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	_, err := svc.Create(context.Background(), fields("x"))
	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)

	docs := st.State().Documents
	assert.Empty(t, cmp.Diff(seeded(), docs.Items))
	assert.Contains(t, docs.Error, "Failed to create document")
	assert.Equal(t, 1, fc.calls("list"))
}

func TestCreate_RefreshFailureIsReported(t *testing.T) {
	fc := newFakeClient()
	svc, st := newDocs(t, fc)
	fc.ListErr = client.ErrUnauthorized

	doc, err := svc.Create(context.Background(), fields("x"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.Contains(t, err.Error(), "refresh documents")
	assert.Equal(t, "new-1", doc.ID)
	assert.Contains(t, st.State().Documents.Error, "Failed to load documents")
}

func TestUpdate_SplicesAndRefetches(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	doc, err := svc.Update(context.Background(), "2", fields("B"))
	require.NoError(t, err)
	assert.Equal(t, "2", doc.ID)

	items := st.State().Documents.Items
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "B", "c"}, []string{items[0].DocumentName, items[1].DocumentName, items[2].DocumentName})
	assert.Equal(t, "2024-01-03T00:00:00.000Z", items[1].CompanySigDate)
	assert.Equal(t, 2, fc.calls("list"))
}

func TestUpdate_FailureKeepsList(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	_, err := svc.Update(context.Background(), "missing", fields("B"))
	require.Error(t, err)

	docs := st.State().Documents
	assert.Empty(t, cmp.Diff(seeded(), docs.Items))
	assert.Contains(t, docs.Error, "Failed to update document")
}

func TestDelete_RemovesOnlyThatRecord(t *testing.T) {
	fc := newFakeClient(seeded()...)
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), "2"))

	items := st.State().Documents.Items
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}

func TestDelete_FailureKeepsList(t *testing.T) {
	fc := newFakeClient(seeded()...)
	fc.DeleteErr = errors.New("boom")
	svc, st := newDocs(t, fc)
	require.NoError(t, svc.Fetch(context.Background()))

	err := svc.Delete(context.Background(), "2")
	require.ErrorContains(t, err, "boom")

	docs := st.State().Documents
	assert.Len(t, docs.Items, 3)
	assert.Equal(t, "Failed to delete document: boom", docs.Error)
	assert.False(t, docs.Loading)
}

func TestPendingStateIsObservable(t *testing.T) {
	st := store.New()
	st.UpdateAuth(store.LoginFulfilled("tok"))

	var seen store.DocumentsState
	pc := &peekClient{fakeClient: newFakeClient(seeded()...), peek: func() { seen = st.State().Documents }}
	svc := NewDocumentService(pc, st, logging.Discard())

	require.NoError(t, svc.Delete(context.Background(), "1"))
	assert.True(t, seen.Loading)
	assert.Equal(t, store.OpDelete, seen.CurrentOperation)
}

// peekClient calls peek while a delete is in flight.
type peekClient struct {
	*fakeClient
	peek func()
}

func (p *peekClient) DeleteDocument(ctx context.Context, id string) error {
	p.peek()
	return p.fakeClient.DeleteDocument(ctx, id)
}
