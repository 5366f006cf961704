package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured. allowedOrigins
// feeds the CORS middleware; an empty slice allows no cross-origin
// callers.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/tax", h.CalculateTax)
		r.Post("/affordability", h.CalculateAffordability)
		r.Post("/purchase", h.ComparePurchase)
		r.Post("/amortization", h.Amortize)
		r.Get("/provinces", h.Provinces)

		r.Route("/tfsa/{account}", func(r chi.Router) {
			r.Put("/profile", h.PutTFSAProfile)
			r.Get("/room", h.GetTFSARoom)
			r.Get("/events", h.ListTFSAEvents)
			r.Post("/events", h.AddTFSAEvent)
			r.Delete("/events/{id}", h.RemoveTFSAEvent)
		})

		r.Route("/inputs", func(r chi.Router) {
			r.Get("/", h.ListInputNamespaces)
			r.Get("/{namespace}", h.GetInputs)
			r.Put("/{namespace}", h.PutInputs)
		})

		r.Post("/contact", h.SubmitContact)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	return r
}
