// Package cli provides the interactive gophdocs command-line client.
//
// It wires configuration, the local session database, the HTTP request layer
// and the services, and runs a REPL. A saved session is restored at start-up.
//
// Key features:
//   - Login / Logout
//   - List, show, create, edit and delete documents
//   - Client-side sort and paging of the list
//   - Reload after a failed request
//   - A full-screen browser (see package tui)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
