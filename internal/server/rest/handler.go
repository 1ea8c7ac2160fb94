package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server/auth"
	"github.com/dmitrijs2005/gophdocs/internal/server/documents"
	"github.com/go-chi/chi/v5"
)

// Handler implements the API calls.
type Handler struct {
	auth     *auth.Authenticator
	docs     documents.Repository
	secret   []byte
	tokenTTL time.Duration
	logger   logging.Logger
}

func NewHandler(a *auth.Authenticator, docs documents.Repository, secret []byte, tokenTTL time.Duration, logger logging.Logger) *Handler {
	return &Handler{auth: a, docs: docs, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

// Login answers bad credentials with HTTP 200 and error code 2004, like
// the hosted service does.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorCodeBadRequest, textBadRequest)
		return
	}

	username, err := h.auth.Check(req.Username, req.Password)
	if err != nil {
		h.logger.Info(r.Context(), "login rejected", "username", req.Username)
		writeError(w, http.StatusOK, api.ErrorCodeAccessDenied, textAccessDenied)
		return
	}

	token, err := auth.GenerateToken(username, h.secret, h.tokenTTL)
	if err != nil {
		h.logger.Error(r.Context(), "token signing failed", "error", err)
		writeError(w, http.StatusInternalServerError, api.ErrorCodeBadRequest, textInternal)
		return
	}

	writeData(w, api.LoginData{Token: token})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docs.List(r.Context(), UsernameFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeData(w, docs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fields api.DocumentFields
	if err := readJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorCodeBadRequest, textBadRequest)
		return
	}

	doc, err := h.docs.Create(r.Context(), UsernameFrom(r.Context()), fields)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeData(w, doc)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var fields api.DocumentFields
	if err := readJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorCodeBadRequest, textBadRequest)
		return
	}

	doc, err := h.docs.Update(r.Context(), UsernameFrom(r.Context()), chi.URLParam(r, "id"), fields)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeData(w, doc)
}

// Delete ignores the request body; the client sends {}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.docs.Delete(r.Context(), UsernameFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeData[any](w, nil)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, documents.ErrNotFound) {
		writeError(w, http.StatusNotFound, api.ErrorCodeNotFound, textNotFound)
		return
	}
	h.logger.Error(r.Context(), "repository error", "error", err)
	writeError(w, http.StatusInternalServerError, api.ErrorCodeBadRequest, textInternal)
}
