package storage

import (
	"context"
)

// LocalStorage is the key/value store of a single client, the server-side
// counterpart of the browser's window.localStorage. Writes are last-write-wins.
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
}

// Provider hands out the LocalStorage that belongs to a client.
type Provider interface {
	ForClient(clientID string) LocalStorage
}
