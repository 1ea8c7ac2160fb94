// Package client contains the client-side plumbing of gophdocs.
//
// # Overview
//
//  1. The Client interface: Login, ListDocuments, CreateDocument,
//     UpdateDocument and DeleteDocument.
//  2. HTTPClient, its JSON-over-HTTP implementation. Every request carries the
//     x-auth header when the token source yields a token; responses are
//     unwrapped from the {error_code, error_text, data} envelope. Only Login
//     interprets error_code.
//  3. InitDatabase and RunMigrations, which open the local SQLite database and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable, HTTP 401/403 return ErrUnauthorized
// and other non-2xx statuses return *HTTPError. A rejected login returns
// *AuthError; a login response without a token returns ErrTokenMissing.
package client
