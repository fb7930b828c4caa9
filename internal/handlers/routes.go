package handlers

import (
	"net/http"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/config"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups every HTTP handler served by the site.
type Handlers struct {
	Client       *auth.ClientHandler
	Simulator    *auth.Simulator
	Storage      storage.Provider
	Account      *AccountHandler
	Profile      *ProfileHandler
	Locations    *LocationsHandler
	Destinations *DestinationsHandler
	Contact      *ContactHandler
	Chrome       *ChromeHandler
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config, h *Handlers) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(h.Client.ClientMiddleware)

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Central Adventures API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"clientCookie": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.ClientCookieName,
		},
	}
	api := humachi.New(r, humaConfig)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	// Locations
	huma.Get(api, "/api/counties", h.Locations.HandleCounties)
	huma.Get(api, "/api/constituencies", h.Locations.HandleConstituencies)
	huma.Get(api, "/api/cascade", h.Locations.HandleCascade)

	// Destinations
	huma.Get(api, "/api/destinations", h.Destinations.HandleList)
	huma.Get(api, "/api/destinations/{id}", h.Destinations.HandleGet)

	// Contact
	huma.Post(api, "/api/contact", h.Contact.HandleContact)

	// Account and profile, scoped to the client cookie
	clientScoped := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"clientCookie": {}}}
	}
	huma.Post(api, "/api/login", h.Account.HandleLogin, clientScoped)
	huma.Post(api, "/api/signup", h.Account.HandleSignup, clientScoped)
	huma.Post(api, "/api/logout", h.Account.HandleLogout, clientScoped)
	huma.Get(api, "/api/session", h.Account.HandleSession, clientScoped)
	huma.Post(api, "/api/password-match", h.Account.HandlePasswordMatch)
	huma.Get(api, "/api/profile", h.Profile.HandleGetProfile, clientScoped)
	huma.Put(api, "/api/profile", h.Profile.HandleUpdateProfile, clientScoped)
	r.Post("/api/profile/picture", h.Profile.HandlePicture)

	// Chrome
	huma.Post(api, "/api/chrome/menus/{menu}/toggle", h.Chrome.HandleMenuToggle, clientScoped)
	huma.Post(api, "/api/chrome/menus/{menu}/click", h.Chrome.HandleMenuClick, clientScoped)
	huma.Post(api, "/api/chrome/password/{field}/toggle", h.Chrome.HandlePasswordToggle, clientScoped)
	huma.Get(api, "/api/chrome/loader", h.Chrome.HandleLoader, clientScoped)

	// Static pages
	r.With(PageGuard(h.Simulator, h.Storage)).Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
}
