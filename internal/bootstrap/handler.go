package bootstrap

import (
	"net/http"

	"github.com/frahmantamala/inventory-tracker/internal/transport"
)

type ServiceAPI interface {
	InitDB() error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// InitDB bootstraps schema and seed data, then sends the browser to the
// login form. Unauthenticated on purpose: it must be reachable before any
// account exists.
func (h *Handler) InitDB(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.InitDB(); err != nil {
		h.Logger.Error("InitDB: bootstrap failed", "error", err)
		h.RedirectWithFlash(w, r, "/login", "Database initialization failed")
		return
	}

	h.RedirectWithFlash(w, r, "/login", "Database initialized.")
}
