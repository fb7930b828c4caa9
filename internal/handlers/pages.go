package handlers

import (
	"net/http"
	"path"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/rs/zerolog/log"
)

// PageGuard redirects requests for protected pages to the login page of the
// same directory while the client is logged out.
func PageGuard(simulator *auth.Simulator, provider storage.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID, ok := auth.ClientID(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			redirect, err := simulator.Guard(r.Context(), provider.ForClient(clientID), r.URL.Path)
			if err != nil {
				log.Error().Err(err).Str("path", r.URL.Path).Msg("Page guard failed")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if redirect != "" {
				http.Redirect(w, r, path.Join(path.Dir(r.URL.Path), redirect), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
