package department

import (
	"net/http"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/transport"
	"github.com/frahmantamala/inventory-tracker/pkg/logger"
)

type ServiceAPI interface {
	GetAllDepartments() ([]DepartmentResponse, error)
	CreateDepartment(dto CreateDepartmentDTO) (*Department, error)
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

func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.GetAllDepartments()
	if err != nil {
		logger.From(r.Context()).Error("GetDepartments: failed to get departments", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DepartmentsResponse{
		Departments: departments,
		Flash:       h.PopFlash(w, r),
	})
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, "/departments", "Invalid form submission")
		return
	}

	dto := CreateDepartmentDTO{Name: r.PostFormValue("name")}

	if _, err := h.Service.CreateDepartment(dto); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			h.RedirectWithFlash(w, r, "/departments", appErr.Message)
			return
		}
		h.Logger.Error("CreateDepartment: failed to create department", "error", err)
		h.RedirectWithFlash(w, r, "/departments", "Failed to add department")
		return
	}

	h.RedirectWithFlash(w, r, "/departments", "Department added.")
}
