package handler

import (
	"net/http"

	"github.com/edeboer/warehoused/internal/logger"
	"github.com/edeboer/warehoused/internal/service"
)

// Admin serves the admin-only management endpoints. Route guarding happens
// in middleware; these handlers assume an admin principal is present.
type Admin struct {
	account *service.Account
	apiKeys *service.APIKey
	logger  *logger.Logger
}

// NewAdmin creates the admin handler.
func NewAdmin(account *service.Account, apiKeys *service.APIKey, logger *logger.Logger) *Admin {
	return &Admin{
		account: account,
		apiKeys: apiKeys,
		logger:  logger,
	}
}

// Users lists all users.
func (h *Admin) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.account.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(users))
	for _, user := range users {
		payload = append(payload, userPayload(user))
	}
	writeJSON(w, http.StatusOK, payload)
}

// APIKeys lists all API keys. The key value itself is not echoed back.
func (h *Admin) APIKeys(w http.ResponseWriter, r *http.Request) {
	apiUsers, err := h.apiKeys.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(apiUsers))
	for _, apiUser := range apiUsers {
		payload = append(payload, map[string]any{
			"id":                apiUser.ID,
			"name":              apiUser.Name,
			"active":            apiUser.Active,
			"collection_filter": apiUser.CollectionFilter,
		})
	}
	writeJSON(w, http.StatusOK, payload)
}

// CreateAPIKey registers a new API key and returns it, the only time the
// key value is handed out.
func (h *Admin) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	apiUser, err := h.apiKeys.Create(r.Context(), r.PostFormValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":   apiUser.ID,
		"name": apiUser.Name,
		"key":  apiUser.Key,
	})
}
