// Package database provides the snapshot persistence layer. Application
// state is persisted as three independently named JSON blobs (auth, cart,
// data), each rehydrated wholesale at startup and overwritten wholesale on
// every mutation.
package database

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Load when no blob exists under the
// given name, e.g. on first startup.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists named state blobs.
type SnapshotStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}
