package rest

import (
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the API under basePath. An empty base path mounts it at
// the root.
func NewRouter(h *Handler, basePath string, secret []byte, logger logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(Recovery(logger))
	r.Use(Logger(logger))

	routes := func(r chi.Router) {
		r.Post(api.PathLogin, h.Login)

		r.Group(func(r chi.Router) {
			r.Use(Auth(secret))

			r.Get(api.PathListDocuments, h.List)
			r.Post(api.PathCreateDocument, h.Create)
			r.Post(api.PathUpdateDocument+"{id}", h.Update)
			r.Post(api.PathDeleteDocument+"{id}", h.Delete)
		})
	}

	basePath = strings.TrimRight(basePath, "/")
	if basePath == "" {
		routes(r)
	} else {
		r.Route(basePath, routes)
	}

	return r
}
