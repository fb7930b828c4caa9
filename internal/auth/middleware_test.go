package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/central-adventures/trips/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret, clientID string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"client_id": clientID,
		"exp":       time.Now().Add(expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return tokenString
}

func serve(handler *ClientHandler, req *http.Request) (*httptest.ResponseRecorder, string) {
	var seen string
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClientID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	handler.ClientMiddleware(nextHandler).ServeHTTP(rr, req)
	return rr, seen
}

func clientCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == ClientCookieName {
			return c
		}
	}
	return nil
}

func TestClientMiddleware(t *testing.T) {
	cfg := &config.Config{ClientSecret: "test-secret"}
	handler := NewClientHandler(cfg)

	t.Run("NewClient", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/", nil)
		rr, clientID := serve(handler, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if clientID == "" {
			t.Fatal("expected a client id in the request context")
		}

		cookie := clientCookie(rr)
		if cookie == nil {
			t.Fatal("expected client_token cookie to be set")
		}
		parsed, _, err := handler.ParseToken(cookie.Value)
		if err != nil {
			t.Fatalf("issued token does not parse: %v", err)
		}
		if parsed != clientID {
			t.Errorf("expected cookie for %s, got %s", clientID, parsed)
		}
	})

	t.Run("KnownClientNotRenewed", func(t *testing.T) {
		tokenString := signedToken(t, cfg.ClientSecret, "client-1", TokenDuration-time.Hour)

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: tokenString})
		rr, clientID := serve(handler, req)

		if clientID != "client-1" {
			t.Errorf("expected client-1, got %s", clientID)
		}
		if clientCookie(rr) != nil {
			t.Errorf("did not expect a new client_token cookie to be set")
		}
	})

	t.Run("KnownClientRenewed", func(t *testing.T) {
		tokenString := signedToken(t, cfg.ClientSecret, "client-2", TokenDuration/2-time.Hour)

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: tokenString})
		rr, clientID := serve(handler, req)

		if clientID != "client-2" {
			t.Errorf("expected client-2, got %s", clientID)
		}
		cookie := clientCookie(rr)
		if cookie == nil {
			t.Fatal("expected client_token cookie to be renewed")
		}
		if cookie.Value == tokenString {
			t.Errorf("expected new token value, but got the old one")
		}
	})

	t.Run("ForgedToken", func(t *testing.T) {
		tokenString := signedToken(t, "other-secret", "client-3", time.Hour)

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: tokenString})
		rr, clientID := serve(handler, req)

		if clientID == "client-3" || clientID == "" {
			t.Errorf("expected a fresh client id, got %q", clientID)
		}
		if clientCookie(rr) == nil {
			t.Errorf("expected a fresh client_token cookie")
		}
	})
}
