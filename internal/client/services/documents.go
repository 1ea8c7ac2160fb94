package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
	"github.com/dmitrijs2005/gophdocs/internal/client/store"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

// Messages recorded in the store when a call fails.
const (
	MsgFetchFailed  = "Failed to load documents"
	MsgCreateFailed = "Failed to create document"
	MsgUpdateFailed = "Failed to update document"
	MsgDeleteFailed = "Failed to delete document"
)

// DocumentService runs the document calls and keeps the store in step.
//
// Every call moves the store through pending, then fulfilled or rejected.
// A rejected call leaves the loaded list as it was. Create, Update and
// Delete re-fetch the list after success. All calls return
// common.ErrNotLoggedIn without a session.
type DocumentService interface {
	Fetch(ctx context.Context) error
	Create(ctx context.Context, fields api.DocumentFields) (api.Document, error)
	Update(ctx context.Context, id string, fields api.DocumentFields) (api.Document, error)
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	client client.Client
	store  *store.Store
	logger logging.Logger
}

func NewDocumentService(c client.Client, st *store.Store, logger logging.Logger) DocumentService {
	return &documentService{client: c, store: st, logger: logger}
}

func (s *documentService) Fetch(ctx context.Context) error {
	if !s.loggedIn() {
		return common.ErrNotLoggedIn
	}

	s.store.UpdateDocuments(store.OperationPending(store.OpFetch))

	docs, err := s.client.ListDocuments(ctx)
	if err != nil {
		return s.reject(ctx, MsgFetchFailed, err)
	}

	s.store.UpdateDocuments(store.FetchFulfilled(docs))
	s.logger.Debug(ctx, "documents loaded", "count", len(docs))
	return nil
}

// Create validates fields before sending them. A validation failure leaves
// the store untouched.
func (s *documentService) Create(ctx context.Context, fields api.DocumentFields) (api.Document, error) {
	if !s.loggedIn() {
		return api.Document{}, common.ErrNotLoggedIn
	}

	body, err := forms.Prepare(fields)
	if err != nil {
		return api.Document{}, err
	}

	s.store.UpdateDocuments(store.OperationPending(store.OpCreate))

	doc, err := s.client.CreateDocument(ctx, body)
	if err != nil {
		return api.Document{}, s.reject(ctx, MsgCreateFailed, err)
	}

	s.store.UpdateDocuments(store.CreateFulfilled)
	s.logger.Info(ctx, "document created", "id", doc.ID)

	return doc, s.refresh(ctx)
}

func (s *documentService) Update(ctx context.Context, id string, fields api.DocumentFields) (api.Document, error) {
	if !s.loggedIn() {
		return api.Document{}, common.ErrNotLoggedIn
	}

	body, err := forms.Prepare(fields)
	if err != nil {
		return api.Document{}, err
	}

	s.store.UpdateDocuments(store.OperationPending(store.OpUpdate))

	doc, err := s.client.UpdateDocument(ctx, id, body)
	if err != nil {
		return api.Document{}, s.reject(ctx, MsgUpdateFailed, err)
	}
	if doc.ID == "" {
		doc = api.Document{ID: id, DocumentFields: body}
	}

	s.store.UpdateDocuments(store.UpdateFulfilled(doc))
	s.logger.Info(ctx, "document updated", "id", id)

	return doc, s.refresh(ctx)
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if !s.loggedIn() {
		return common.ErrNotLoggedIn
	}

	s.store.UpdateDocuments(store.OperationPending(store.OpDelete))

	if err := s.client.DeleteDocument(ctx, id); err != nil {
		return s.reject(ctx, MsgDeleteFailed, err)
	}

	s.store.UpdateDocuments(store.DeleteFulfilled(id))
	s.logger.Info(ctx, "document deleted", "id", id)

	return s.refresh(ctx)
}

// RefreshError is returned by a mutation that succeeded on the server when
// the following re-fetch failed.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return "refresh documents: " + e.Err.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

func (s *documentService) refresh(ctx context.Context) error {
	if err := s.Fetch(ctx); err != nil {
		return &RefreshError{Err: err}
	}
	return nil
}

// reject records the failure and returns err wrapped with msg.
func (s *documentService) reject(ctx context.Context, msg string, err error) error {
	full := fmt.Sprintf("%s: %v", msg, err)
	s.logger.Warn(ctx, "document call failed", "error", full)
	s.store.UpdateDocuments(store.OperationRejected(full))
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *documentService) loggedIn() bool {
	return s.store.Token() != ""
}
