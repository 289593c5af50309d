package handler

import (
	"crypto/subtle"
	"net/http"

	"chirpy/internal/auth"
	"chirpy/internal/model"
	"chirpy/internal/service"
	"chirpy/pkg/apierror"
)

const eventUserUpgraded = "user.upgraded"

// WebhookHandler receives payment events from Polka, authenticated with a
// shared API key.
type WebhookHandler struct {
	users    *service.UserService
	polkaKey string
}

func NewWebhookHandler(users *service.UserService, polkaKey string) *WebhookHandler {
	return &WebhookHandler{users: users, polkaKey: polkaKey}
}

func (h *WebhookHandler) Polka(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	key := auth.APIKey(r.Header.Get("Authorization"))
	if h.polkaKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.polkaKey)) != 1 {
		writeError(w, apierror.Unauthorized())
		return
	}

	var payload model.PolkaWebhookRequest
	if err := decodeValid(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	// Events other than an upgrade are acknowledged and dropped.
	if payload.Event != eventUserUpgraded {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.users.UpgradeToChirpyRed(r.Context(), payload.Data.UserID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
