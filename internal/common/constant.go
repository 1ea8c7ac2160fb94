// Package common contains constants and sentinel errors shared by the
// gophdocs client and the development backend.
package common

// AuthHeaderName is the HTTP header carrying the bearer token on every
// authenticated request.
const AuthHeaderName = "x-auth"

// Keys of the durable client storage.
const (
	TokenStorageKey    = "auth_token"
	UsernameStorageKey = "username"
)

// DefaultBasePath is the path prefix of the documents API.
const DefaultBasePath = "/ru/data/v3/testmethods/docs"

// DefaultServerBaseURL points to the hosted documents API.
const DefaultServerBaseURL = "https://test.v5.pryaniky.com" + DefaultBasePath
