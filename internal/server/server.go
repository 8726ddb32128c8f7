// Package server Acolhe
//
// The Acolhe is a community support service which provides access to community posts, personal records and events.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/acolhe/acolhe/internal/entities"
	mm "github.com/acolhe/acolhe/internal/middleware"
	"github.com/acolhe/acolhe/internal/notify"
	"github.com/acolhe/acolhe/internal/service"
)

// Services ...
type Services struct {
	Query    service.PostQuery
	Mutation service.PostMutation
	Deleter  service.Deleter
	Records  service.Records
}

type server struct {
	q service.PostQuery
	m service.PostMutation
	d service.Deleter
	r service.Records
}

// NewRouter returns mux serving the API and the health check.
func NewRouter(s Services, secret []byte, timeout time.Duration, health http.HandlerFunc) chi.Router {
	r := chi.NewMux()

	// middlewares are added to r, so it should go before any route
	SetupRouter(s, r, secret, timeout)
	r.Get("/health", health)

	return r
}

// SetupRouter setups handlers to chi router. r must not have routes yet.
func SetupRouter(s Services, r chi.Router, secret []byte, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		collectNotifications,
		mm.Authenticator(secret),
	)

	srv := server{
		q: s.Query,
		m: s.Mutation,
		d: s.Deleter,
		r: s.Records,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/posts", srv.listPosts)
		r.Get("/events", srv.listEvents)

		r.Group(func(r chi.Router) {
			r.Use(mm.RequireUser)

			r.Post("/posts", srv.createPost)
			r.Post("/posts/{id}/like", srv.toggleLike)
			r.Delete("/posts/{id}", srv.deletePost)

			r.Get("/appointments", srv.listAppointments)
			r.Post("/appointments", srv.createAppointment)
			r.Delete("/appointments/{id}", srv.deleteOwned(entities.AppointmentKind))

			r.Get("/medications", srv.listMedications)
			r.Post("/medications", srv.createMedication)
			r.Delete("/medications/{id}", srv.deleteOwned(entities.MedicationKind))

			r.Post("/events", srv.createEvent)
			r.Post("/events/{id}/registrations", srv.register)
			r.Delete("/events/{id}", srv.deleteEvent)

			r.Get("/profile", srv.getProfile)
			r.Put("/profile", srv.setProfile)
			r.Delete("/account", srv.deleteAccount)
		})
	})
}

func collectNotifications(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(notify.WithCollector(r.Context())))
	})
}
