package handler

import (
	"net/http"
	"time"

	"chirpy/internal/model"
	"chirpy/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := decodeValid(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	requestedExpiry := time.Duration(payload.ExpiresInSeconds) * time.Second
	pair, err := h.service.Login(r.Context(), payload.Email, payload.Password, requestedExpiry)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, pair)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	accessToken, err := h.service.Refresh(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"token": accessToken})
}

func (h *AuthHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Revoke(r.Context(), r.Header.Get("Authorization")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
