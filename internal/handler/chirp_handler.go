package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chirpy/internal/middleware"
	"chirpy/internal/model"
	"chirpy/internal/service"
	"chirpy/pkg/apierror"
)

type ChirpHandler struct {
	service *service.ChirpService
}

func NewChirpHandler(service *service.ChirpService) *ChirpHandler {
	return &ChirpHandler{service: service}
}

func (h *ChirpHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized())
		return
	}

	var payload model.CreateChirpRequest
	if err := decodeValid(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	chirp, err := h.service.Create(r.Context(), userID, payload.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, chirp)
}

func (h *ChirpHandler) List(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("author_id")

	sort := r.URL.Query().Get("sort")
	if sort != "" && sort != "asc" && sort != "desc" {
		writeError(w, apierror.BadRequest("sort must be asc or desc", sort))
		return
	}

	chirps, err := h.service.List(r.Context(), authorID, sort == "desc")
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, chirps)
}

func (h *ChirpHandler) Get(w http.ResponseWriter, r *http.Request) {
	chirp, err := h.service.Get(r.Context(), chi.URLParam(r, "chirpID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, chirp)
}

func (h *ChirpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized())
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "chirpID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
