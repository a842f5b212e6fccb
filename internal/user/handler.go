package user

import (
	"net/http"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/transport"
	"github.com/frahmantamala/inventory-tracker/pkg/logger"
)

type ServiceAPI interface {
	GetAllUsers() ([]UserResponse, error)
	CreateUser(dto CreateUserDTO) (*User, error)
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

// GetUsers serves the user-management listing.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		logger.From(r.Context()).Error("GetUsers: failed to get users", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, UsersResponse{
		Users: users,
		Flash: h.PopFlash(w, r),
	})
}

// CreateUser handles the user-management form post.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, "/users", "Invalid form submission")
		return
	}

	dto := CreateUserDTO{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	if _, err := h.Service.CreateUser(dto); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			h.RedirectWithFlash(w, r, "/users", appErr.Message)
			return
		}
		h.Logger.Error("CreateUser: failed to create user", "error", err)
		h.RedirectWithFlash(w, r, "/users", "Failed to add user")
		return
	}

	h.RedirectWithFlash(w, r, "/users", "User added successfully.")
}
