package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/transport"
	"github.com/frahmantamala/inventory-tracker/pkg/logger"
)

const SessionCookieName = "session"

type Handler struct {
	*transport.BaseHandler
	Service AuthService
}

func NewHandler(svc AuthService) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// LoginPage serves the login form data: any pending flash message from a
// failed attempt. Rendering is the presentation layer's concern.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{
		"flash": h.PopFlash(w, r),
	})
}

// Login handles the login form post: establish a session cookie on success,
// flash a generic failure notice otherwise.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, "/login", "Invalid login details")
		return
	}

	dto := LoginDTO{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	session, err := h.Service.Authenticate(dto)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeInternal {
			logger.From(r.Context()).Error("credential lookup failed", "error", err)
			h.WriteAppError(w, err)
			return
		}
		logger.From(r.Context()).Warn("authentication failed", "username", dto.Username)
		h.RedirectWithFlash(w, r, "/login", "Invalid login details")
		return
	}

	token, err := h.Service.EncodeSession(session)
	if err != nil {
		h.Logger.Error("failed to encode session", "user_id", session.UserID, "error", err)
		h.RedirectWithFlash(w, r, "/login", "Invalid login details")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session unconditionally.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RequireSession gates logged-in routes. A missing or invalid cookie sends
// the browser back to the login form.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.sessionFromRequest(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := internal.ContextWithSession(r.Context(), internal.SessionPrincipal{
			UserID: session.UserID,
			Role:   string(session.Role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates admin-only routes. Non-admin sessions are sent to the
// login form rather than a forbidden page, preserving the original flow.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := internal.SessionFromContext(r.Context())
		if !ok || principal.Role != string(RoleAdmin) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) sessionFromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}

	session, err := h.Service.DecodeSession(cookie.Value)
	if err != nil {
		h.Logger.Warn("invalid session cookie", "error", err)
		return Session{}, false
	}

	return session, true
}
