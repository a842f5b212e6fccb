package activity

import (
	"net/http"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/item"
	"github.com/frahmantamala/inventory-tracker/internal/transport"
	"github.com/frahmantamala/inventory-tracker/pkg/logger"
)

type ServiceAPI interface {
	GetAllActivities() ([]ActivityResponse, error)
	CreateActivity(dto CreateActivityDTO, actorUserID int64) (*Activity, error)
}

type ItemServiceAPI interface {
	GetAllItems() ([]item.ItemResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service     ServiceAPI
	ItemService ItemServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, itemService ItemServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		ItemService: itemService,
	}
}

// GetActivities serves the activity log, most recent first.
func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Service.GetAllActivities()
	if err != nil {
		logger.From(r.Context()).Error("GetActivities: failed to get activities", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ActivitiesResponse{
		Activities: activities,
		Flash:      h.PopFlash(w, r),
	})
}

// GetActivitiesWithItems serves the activity page data: the log plus the
// item list the entry form offers.
func (h *Handler) GetActivitiesWithItems(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Service.GetAllActivities()
	if err != nil {
		logger.From(r.Context()).Error("GetActivitiesWithItems: failed to get activities", "error", err)
		h.WriteAppError(w, err)
		return
	}

	items, err := h.ItemService.GetAllItems()
	if err != nil {
		logger.From(r.Context()).Error("GetActivitiesWithItems: failed to get items", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, struct {
		Activities []ActivityResponse  `json:"activities"`
		Items      []item.ItemResponse `json:"items"`
		Flash      string              `json:"flash,omitempty"`
	}{
		Activities: activities,
		Items:      items,
		Flash:      h.PopFlash(w, r),
	})
}

// CreateActivity handles the activity form post. The actor comes from the
// session, never from the form.
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	principal, ok := internal.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, "/activities", "Invalid form submission")
		return
	}

	dto := CreateActivityDTO{
		Description: r.PostFormValue("description"),
		ItemID:      r.PostFormValue("item_id"),
		Quantity:    r.PostFormValue("quantity"),
	}

	if _, err := h.Service.CreateActivity(dto, principal.UserID); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			h.RedirectWithFlash(w, r, "/activities", appErr.Message)
			return
		}
		h.Logger.Error("CreateActivity: failed to create activity", "error", err)
		h.RedirectWithFlash(w, r, "/activities", "Failed to add activity")
		return
	}

	h.RedirectWithFlash(w, r, "/activities", "Activity added successfully.")
}
