package model

import "context"

// Snapshot keys. They are not namespaced per user: the storefront serves a
// single shared client profile.
const (
	CartSnapshotKey      = "somascents_cart"
	FavoritesSnapshotKey = "somascents_favorites"
)

// SnapshotStore persists serialized state-manager contents under fixed keys.
type SnapshotStore interface {
	// Load returns the snapshot stored under key. found is false when nothing
	// has been saved yet; that is not an error.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)

	// Save replaces the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
