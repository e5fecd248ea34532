package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth         *auth.AuthHandler
	Event        *EventHandler
	Registration *RegistrationHandler
	Attendance   *AttendanceHandler
	Rating       *RatingHandler
	Volunteer    *VolunteerHandler
	APIKey       *APIKeyHandler
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config, h Handlers) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Access-Control-Allow-Origin", cfg.FrontendURL)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-KEY")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				if req.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, req)
			})
		})
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Volunteers Hub API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
		"apiKeyAuth": {
			Type: "apiKey",
			In:   "header",
			Name: "X-API-KEY",
		},
	}
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Auth routes
	r.Get("/auth/discord/login", h.Auth.HandleLogin)
	r.Get("/auth/discord/callback", h.Auth.HandleCallback)

	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}, {"apiKeyAuth": {}}}
	}

	huma.Get(api, "/me", h.Auth.HandleMe, secured)

	// Event registry
	huma.Post(api, "/events", h.Event.HandleCreateEvent, secured)
	huma.Get(api, "/events", h.Event.HandleListEvents, secured)
	huma.Get(api, "/events/{id}", h.Event.HandleGetEvent, secured)
	huma.Post(api, "/events/{id}/approve", h.Event.HandleApproveEvent, secured)
	huma.Post(api, "/events/{id}/complete", h.Event.HandleCompleteEvent, secured)
	huma.Post(api, "/events/{id}/cancel", h.Event.HandleCancelEvent, secured)
	huma.Delete(api, "/events/{id}", h.Event.HandleDeleteEvent, secured)

	// Registration ledger
	huma.Post(api, "/events/{id}/register", h.Registration.HandleApply, secured)
	huma.Post(api, "/events/{id}/registrations/{volunteerID}/approve", h.Registration.HandleApprove, secured)
	huma.Post(api, "/events/{id}/registrations/{volunteerID}/reject", h.Registration.HandleReject, secured)
	huma.Delete(api, "/events/{id}/registrations/{volunteerID}", h.Registration.HandleRemove, secured)
	huma.Post(api, "/events/{id}/withdraw", h.Registration.HandleWithdraw, secured)

	// Attendance and finalization
	huma.Post(api, "/events/{id}/attendance/{volunteerID}", h.Attendance.HandleMarkAttendance, secured)
	huma.Post(api, "/events/{id}/finalize", h.Attendance.HandleFinalize, secured)

	// Rating exchange
	huma.Post(api, "/events/{id}/registrations/{volunteerID}/rating", h.Rating.HandleRateVolunteer, secured)
	huma.Post(api, "/events/{id}/feedback", h.Rating.HandleSubmitFeedback, secured)

	// Volunteer surfaces
	huma.Get(api, "/volunteers/me/registrations", h.Volunteer.HandleListOwnRegistrations, secured)
	huma.Get(api, "/volunteers/me/stats", h.Volunteer.HandleStats, secured)
	huma.Get(api, "/volunteers/me/certificates", h.Volunteer.HandleCertificates, secured)

	// API keys
	huma.Post(api, "/api-keys", h.APIKey.HandleCreate, secured)
	huma.Get(api, "/api-keys", h.APIKey.HandleList, secured)
	huma.Delete(api, "/api-keys/{id}", h.APIKey.HandleDelete, secured)

	// Certificate documents, behind the same auth as the API
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.AuthMiddleware)
		r.Handle("/certificates/*", http.StripPrefix("/certificates/",
			http.FileServer(http.Dir(cfg.CertificateDir))))
	})
}
