package handlers

import (
	"context"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/danielgtaylor/huma/v2"
)

// clientStorage returns the local storage of the client making the request.
func clientStorage(ctx context.Context, provider storage.Provider) (storage.LocalStorage, error) {
	clientID, ok := auth.ClientID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unknown client")
	}
	return provider.ForClient(clientID), nil
}
