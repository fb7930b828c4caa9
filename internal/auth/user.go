package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/central-adventures/trips/internal/models"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/rs/zerolog/log"
)

// Local storage keys shared with the site's markup.
const (
	KeyLoggedIn = "isLoggedIn"
	KeyUserData = "userData"
)

// LoadUser returns the stored user record, or nil when there is none. A record
// that cannot be decoded is treated as absent.
func LoadUser(ctx context.Context, store storage.LocalStorage) (*models.UserRecord, error) {
	raw, ok, err := store.GetItem(ctx, KeyUserData)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" || raw == "null" {
		return nil, nil
	}

	var user models.UserRecord
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Warn().Err(err).Msg("Ignoring unreadable user record")
		return nil, nil
	}
	return &user, nil
}

// SaveUser overwrites the stored user record.
func SaveUser(ctx context.Context, store storage.LocalStorage, user models.UserRecord) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("cannot encode user record: %w", err)
	}
	return store.SetItem(ctx, KeyUserData, string(raw))
}

// LoggedIn reports whether the auth flag is exactly "true".
func LoggedIn(ctx context.Context, store storage.LocalStorage) (bool, error) {
	v, _, err := store.GetItem(ctx, KeyLoggedIn)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// Avatar returns the stored profile picture markup, empty when there is none.
func Avatar(ctx context.Context, store storage.LocalStorage) (string, error) {
	user, err := LoadUser(ctx, store)
	if err != nil || user == nil {
		return "", err
	}
	return user.ProfilePicture, nil
}
