package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		mockRepo *mockCredentialRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockCredentialRepository()
		codec := NewJWTSessionCodec("test-session-secret", time.Hour)
		handler = NewHandler(NewService(mockRepo, codec))
	})

	postLogin := func(username, password string) *httptest.ResponseRecorder {
		form := url.Values{}
		form.Set("username", username)
		form.Set("password", password)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	sessionCookie := func(rec *httptest.ResponseRecorder) *http.Cookie {
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == SessionCookieName {
				return cookie
			}
		}
		return nil
	}

	ginkgo.Describe("Login", func() {
		ginkgo.It("should set a session cookie and redirect to the index on success", func() {
			rec := postLogin("admin", "correct_password")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/"))

			cookie := sessionCookie(rec)
			gomega.Expect(cookie).ToNot(gomega.BeNil())
			gomega.Expect(cookie.Value).ToNot(gomega.BeEmpty())
			gomega.Expect(cookie.HttpOnly).To(gomega.BeTrue())

			session, err := handler.Service.DecodeSession(cookie.Value)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(session.UserID).To(gomega.Equal(int64(1)))
			gomega.Expect(session.Role).To(gomega.Equal(RoleAdmin))
		})

		ginkgo.It("should flash and redirect back to the login form on bad credentials", func() {
			rec := postLogin("admin", "wrongpass")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/login"))
			gomega.Expect(sessionCookie(rec)).To(gomega.BeNil())
		})

		ginkgo.It("should respond identically for an unknown username", func() {
			rec := postLogin("nobody", "whatever")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/login"))
		})

		ginkgo.It("should answer 500 when the credential store is unavailable", func() {
			mockRepo.returnError = true
			mockRepo.errorToReturn = errors.New("connection refused")

			rec := postLogin("admin", "correct_password")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(sessionCookie(rec)).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should expire the session cookie and redirect to login", func() {
			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			rec := httptest.NewRecorder()

			handler.Logout(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/login"))

			cookie := sessionCookie(rec)
			gomega.Expect(cookie).ToNot(gomega.BeNil())
			gomega.Expect(cookie.MaxAge).To(gomega.BeNumerically("<", 0))
		})
	})

	ginkgo.Describe("RequireSession", func() {
		var next http.Handler
		var nextCalled bool
		var seenPrincipal internal.SessionPrincipal

		ginkgo.BeforeEach(func() {
			nextCalled = false
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenPrincipal, _ = internal.SessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
		})

		ginkgo.It("should redirect to login when no cookie is present", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler.RequireSession(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/login"))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should redirect to login when the cookie is tampered with", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
			rec := httptest.NewRecorder()

			handler.RequireSession(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should put the session principal into the request context", func() {
			token, err := handler.Service.EncodeSession(Session{UserID: 2, Role: RoleStaff})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
			rec := httptest.NewRecorder()

			handler.RequireSession(next).ServeHTTP(rec, req)

			gomega.Expect(nextCalled).To(gomega.BeTrue())
			gomega.Expect(seenPrincipal.UserID).To(gomega.Equal(int64(2)))
			gomega.Expect(seenPrincipal.Role).To(gomega.Equal("staff"))
		})
	})

	ginkgo.Describe("RequireAdmin", func() {
		var next http.Handler
		var nextCalled bool

		ginkgo.BeforeEach(func() {
			nextCalled = false
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})
		})

		serveAs := func(role string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			ctx := internal.ContextWithSession(req.Context(), internal.SessionPrincipal{UserID: 7, Role: role})
			rec := httptest.NewRecorder()
			handler.RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))
			return rec
		}

		ginkgo.It("should pass admins through", func() {
			rec := serveAs("admin")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(nextCalled).To(gomega.BeTrue())
		})

		ginkgo.It("should redirect staff to login", func() {
			rec := serveAs("staff")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/login"))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should redirect requests with no session at all", func() {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			rec := httptest.NewRecorder()

			handler.RequireAdmin(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})
	})
})
