package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/inventory-tracker/internal/activity"
	"github.com/frahmantamala/inventory-tracker/internal/auth"
	"github.com/frahmantamala/inventory-tracker/internal/bootstrap"
	"github.com/frahmantamala/inventory-tracker/internal/department"
	"github.com/frahmantamala/inventory-tracker/internal/transport/middleware"
	"github.com/frahmantamala/inventory-tracker/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires the form endpoints. Every route except /login and
// /initdb sits behind the session gate; /users additionally requires the
// admin role.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, departmentHandler *department.Handler, activityHandler *activity.Handler, bootstrapHandler *bootstrap.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)
	router.Get("/logout", authHandler.Logout)
	router.Get("/initdb", bootstrapHandler.InitDB)

	router.Group(func(r chi.Router) {
		r.Use(authHandler.RequireSession)

		r.Get("/", activityHandler.GetActivities)

		r.Get("/activities", activityHandler.GetActivitiesWithItems)
		r.Post("/activities", activityHandler.CreateActivity)

		r.Get("/departments", departmentHandler.GetDepartments)
		r.Post("/departments", departmentHandler.CreateDepartment)

		r.Group(func(ar chi.Router) {
			ar.Use(authHandler.RequireAdmin)
			ar.Get("/users", userHandler.GetUsers)
			ar.Post("/users", userHandler.CreateUser)
		})
	})
}
