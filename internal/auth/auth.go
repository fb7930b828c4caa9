package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/central-adventures/trips/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClientCookieName = "client_token"
	TokenDuration    = 30 * 24 * time.Hour
)

type contextKey string

const ClientIDKey contextKey = "client_id"

// ClientHandler identifies browsers. Every browser gets a random client id in a
// signed cookie; the id selects the local storage the other components use.
type ClientHandler struct {
	cfg *config.Config
}

func NewClientHandler(cfg *config.Config) *ClientHandler {
	return &ClientHandler{cfg: cfg}
}

func NewClientID() string {
	return uuid.NewString()
}

func (h *ClientHandler) GenerateToken(clientID string) (string, error) {
	claims := jwt.MapClaims{
		"client_id": clientID,
		"exp":       time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.ClientSecret))
}

// ParseToken validates a client token and returns its client id and expiry.
func (h *ClientHandler) ParseToken(tokenString string) (string, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.ClientSecret), nil
	})
	if err != nil || !token.Valid {
		return "", time.Time{}, fmt.Errorf("invalid client token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, fmt.Errorf("invalid client token claims")
	}
	clientID, ok := claims["client_id"].(string)
	if !ok || clientID == "" {
		return "", time.Time{}, fmt.Errorf("client token has no client_id")
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return clientID, expiresAt, nil
}

// ClientID returns the client id placed in ctx by ClientMiddleware.
func ClientID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ClientIDKey).(string)
	return id, ok && id != ""
}

func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ClientIDKey, clientID)
}
