package handler

import (
	"net/http"

	"github.com/edeboer/warehoused/internal/api/http/middleware"
	"github.com/edeboer/warehoused/internal/logger"
)

// API serves key-authenticated endpoints.
type API struct {
	logger *logger.Logger
}

// NewAPI creates the API handler.
func NewAPI(logger *logger.Logger) *API {
	return &API{logger: logger}
}

// Whoami reports the API principal behind the presented key. The middleware
// already resolved it, so this second read is served from the request cache.
func (h *API) Whoami(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := middleware.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "api key invalid"})
		return
	}

	apiUser, err := authCtx.CurrentAPIUser(r.Context(), r.Header.Get(middleware.APIKeyHeader))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "api key invalid"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":                apiUser.ID,
		"name":              apiUser.Name,
		"collection_filter": apiUser.CollectionFilter,
	})
}
