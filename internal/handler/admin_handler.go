package handler

import (
	"fmt"
	"net/http"

	"chirpy/internal/metrics"
	"chirpy/internal/service"
	"chirpy/pkg/apierror"
)

const metricsPage = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>
`

type AdminHandler struct {
	counter *metrics.Counter
	users   *service.UserService
	chirps  *service.ChirpService
	isDev   bool
}

func NewAdminHandler(counter *metrics.Counter, users *service.UserService, chirps *service.ChirpService, isDev bool) *AdminHandler {
	return &AdminHandler{counter: counter, users: users, chirps: chirps, isDev: isDev}
}

func (h *AdminHandler) Metrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, metricsPage, h.counter.Value())
}

// Reset zeroes the hit counter and, outside production, wipes all users and
// chirps so integration environments start clean.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.isDev {
		writeError(w, apierror.Forbidden("reset is only available on the dev platform"))
		return
	}

	h.counter.Reset()

	if err := h.chirps.DeleteAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	if err := h.users.DeleteAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hits reset to 0"))
}

// Readiness reports whether the service can take traffic.
func Readiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
