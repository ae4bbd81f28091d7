package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/hearth-app/hearth/internal/middleware"
	"github.com/hearth-app/hearth/internal/middleware/metrics"
	"github.com/hearth-app/hearth/internal/setup"
)

// New wires every route. Endpoints keep the function-name POST convention the
// web client already speaks, so reads like getThreads are POSTs too.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Public reads.
	r.Post("/getThreads", h.GetThreads)
	r.Post("/getComments", h.GetComments)
	r.Post("/getProfiles", h.GetProfiles)
	r.Post("/getProfileByUserId", h.GetProfileByUserId)

	// Everything else acts on behalf of the verified token subject.
	r.Group(func(r chi.Router) {
		r.Use(mw.NeedAuth(deps.Verifier))

		r.Post("/createThread", h.CreateThread)
		r.Post("/addComment", h.AddComment)
		r.Post("/updateComment", h.UpdateComment)
		r.Post("/deleteComment", h.DeleteComment)

		r.Post("/addNotePage", h.AddNotePage)
		r.Post("/getNotesPages", h.GetNotesPages)
		r.Post("/updateNotePage", h.UpdateNotePage)
		r.Post("/deleteNotePage", h.DeleteNotePage)

		r.Post("/createProfile", h.CreateProfile)
		r.Post("/updateProfile", h.UpdateProfile)
		r.Post("/deleteProfile", h.DeleteProfile)

		r.Post("/updateLastLogin", h.UpdateLastLogin)
		r.Post("/getUserDocument", h.GetUserDocument)
		r.Post("/createUserDocument", h.CreateUserDocument)
	})

	return r
}
