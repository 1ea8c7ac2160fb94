package client

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/api"
)

// Client is the request layer of the documents API. Each call is a single
// round trip with no retries.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListDocuments(ctx context.Context) ([]api.Document, error)
	CreateDocument(ctx context.Context, fields api.DocumentFields) (api.Document, error)
	UpdateDocument(ctx context.Context, id string, fields api.DocumentFields) (api.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}
