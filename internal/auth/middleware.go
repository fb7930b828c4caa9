package auth

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ClientMiddleware makes sure every request carries a client id. A missing or
// invalid cookie starts a fresh client with empty storage.
func (h *ClientHandler) ClientMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var clientID string
		refresh := false

		if cookie, err := r.Cookie(ClientCookieName); err == nil {
			id, expiresAt, err := h.ParseToken(cookie.Value)
			if err != nil {
				log.Debug().Err(err).Msg("Discarding client token")
			} else {
				clientID = id
				// Sliding session: refresh token if it's more than halfway through its duration
				refresh = !expiresAt.IsZero() && time.Until(expiresAt) < TokenDuration/2
			}
		}

		if clientID == "" {
			clientID = NewClientID()
			refresh = true
		}

		if refresh {
			token, err := h.GenerateToken(clientID)
			if err != nil {
				log.Error().Err(err).Msg("Failed to generate client token")
				http.Error(w, "Failed to generate client token", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookieName,
				Value:    token,
				Expires:  time.Now().Add(TokenDuration),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Path:     "/",
			})
		}

		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), clientID)))
	})
}
