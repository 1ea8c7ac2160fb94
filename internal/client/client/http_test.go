package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basePath = "/ru/data/v3/testmethods/docs"

type request struct {
	method string
	path   string
	auth   string
	body   string
}

type recorded struct {
	mu   sync.Mutex
	last request
}

func (r *recorded) get() request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// newServer starts an httptest server that records the last request and
// answers with the given status and body.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.last = request{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			auth:   r.Header.Get("x-auth"),
			body:   string(b),
		}
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestLogin_ExtractsNestedToken(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"error_code":0,"data":{"token":"abc"}}`)
	c := NewHTTPClient(srv.URL + basePath)

	token, err := c.Login(context.Background(), "user1", "password")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	assert.Equal(t, http.MethodPost, rec.get().method)
	assert.Equal(t, basePath+"/login", rec.get().path)
	assert.Empty(t, rec.get().auth)
	assert.JSONEq(t, `{"username":"user1","password":"password"}`, rec.get().body)
}

func TestLogin_ErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
		wantCode int
	}{
		{"with text", `{"error_code":2004,"error_text":"Access deny","data":null}`, "Access deny", 2004},
		{"without text", `{"error_code":2004,"data":null}`, "authorization failed", 2004},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, http.StatusOK, tt.body)
			c := NewHTTPClient(srv.URL)

			_, err := c.Login(context.Background(), "user1", "password")
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
			assert.Equal(t, tt.wantText, authErr.Error())
		})
	}
}

func TestLogin_MissingToken(t *testing.T) {
	for _, body := range []string{
		`{"error_code":0,"data":null}`,
		`{"error_code":0,"data":{}}`,
		`{"error_code":0,"data":{"token":""}}`,
	} {
		srv, _ := newServer(t, http.StatusOK, body)
		_, err := NewHTTPClient(srv.URL).Login(context.Background(), "user1", "password")
		require.ErrorIs(t, err, ErrTokenMissing, body)
	}
}

func TestListDocuments_SendsTokenAndDecodes(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"error_code":0,"data":[
		{"id":"1","documentName":"Contract","documentStatus":"Signed"},
		{"id":"2","documentName":"Order"}]}`)
	c := NewHTTPClient(srv.URL+basePath, WithTokenSource(func() string { return "tok" }))

	docs, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "1", docs[0].ID)
	assert.Equal(t, "Contract", docs[0].DocumentName)
	assert.Equal(t, "Signed", docs[0].DocumentStatus)
	assert.Equal(t, "Order", docs[1].DocumentName)

	assert.Equal(t, http.MethodGet, rec.get().method)
	assert.Equal(t, basePath+"/userdocs/get", rec.get().path)
	assert.Equal(t, "tok", rec.get().auth)
	assert.Empty(t, rec.get().body)
}

func TestListDocuments_NullDataIsEmpty(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"error_code":0,"data":null}`)

	docs, err := NewHTTPClient(srv.URL).ListDocuments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestListDocuments_IgnoresErrorCode(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"error_code":7,"data":[{"id":"1"}]}`)

	docs, err := NewHTTPClient(srv.URL).ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestCreateDocument(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"error_code":0,"data":{"id":"new","documentName":"A"}}`)
	c := NewHTTPClient(srv.URL, WithTokenSource(func() string { return "tok" }))

	doc, err := c.CreateDocument(context.Background(), api.DocumentFields{
		DocumentName:    "A",
		EmployeeSigDate: "2024-01-02T00:00:00.000Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", doc.ID)

	assert.Equal(t, "/userdocs/create", rec.get().path)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.get().body), &sent))
	assert.Equal(t, "A", sent["documentName"])
	assert.Equal(t, "2024-01-02T00:00:00.000Z", sent["employeeSigDate"])
	assert.NotContains(t, sent, "id")
}

func TestUpdateDocument_EscapesID(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"error_code":0,"data":{"id":"a/b","documentName":"B"}}`)

	doc, err := NewHTTPClient(srv.URL).UpdateDocument(context.Background(), "a/b", api.DocumentFields{DocumentName: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", doc.DocumentName)
	assert.Equal(t, http.MethodPost, rec.get().method)
	assert.Equal(t, "/userdocs/set/a%2Fb", rec.get().path)
}

func TestDeleteDocument_PostsEmptyObject(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"error_code":0,"data":null}`)

	require.NoError(t, NewHTTPClient(srv.URL).DeleteDocument(context.Background(), "42"))
	assert.Equal(t, http.MethodPost, rec.get().method)
	assert.Equal(t, "/userdocs/delete/42", rec.get().path)
	assert.JSONEq(t, `{}`, rec.get().body)
}

func TestErrorMapping(t *testing.T) {
	t.Run("401", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnauthorized, `{"error_code":2004}`)
		_, err := NewHTTPClient(srv.URL).ListDocuments(context.Background())
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("403", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusForbidden, ``)
		err := NewHTTPClient(srv.URL).DeleteDocument(context.Background(), "1")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("404 with envelope", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusNotFound, `{"error_code":2005,"error_text":"document not found"}`)
		_, err := NewHTTPClient(srv.URL).UpdateDocument(context.Background(), "x", api.DocumentFields{})
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Equal(t, 2005, httpErr.Code)
		assert.Equal(t, "server returned status 404: document not found", httpErr.Error())
	})

	t.Run("500 without body", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, `oops`)
		_, err := NewHTTPClient(srv.URL).ListDocuments(context.Background())
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "server returned status 500", httpErr.Error())
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"data":`)
		_, err := NewHTTPClient(srv.URL).ListDocuments(context.Background())
		require.ErrorContains(t, err, "decode response")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		_, err := NewHTTPClient(url).ListDocuments(context.Background())
		require.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := NewHTTPClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.ListDocuments(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestTokenSourceReadPerRequest(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"error_code":0,"data":[]}`)
	token := ""
	c := NewHTTPClient(srv.URL, WithTokenSource(func() string { return token }))

	_, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.get().auth)

	token = "later"
	_, err = c.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "later", rec.get().auth)
}
