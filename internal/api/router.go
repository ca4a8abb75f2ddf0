package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/Nehru-cyber/task-manager/internal/api/handlers"
	mw "github.com/Nehru-cyber/task-manager/internal/api/middleware"
)

type Dependencies struct {
	AuthHandler   *handlers.AuthHandler
	TasksHandler  *handlers.TasksHandler
	StatsHandler  *handlers.StatsHandler
	HealthHandler *handlers.HealthHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.SecureHeaders)
	r.Use(chimid.Compress(5))

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Get("/profile/{userID}", dep.AuthHandler.Profile)
		})

		api.Route("/tasks", func(tr chi.Router) {
			tr.Post("/", dep.TasksHandler.Create)
			tr.Get("/{userID}", dep.TasksHandler.List)
			tr.Put("/{taskID}", dep.TasksHandler.Update)
			tr.Delete("/{taskID}", dep.TasksHandler.Delete)
		})

		api.Get("/stats/{userID}", dep.StatsHandler.Stats)
		api.Get("/health", dep.HealthHandler.Health)
	})

	return r
}
