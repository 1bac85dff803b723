package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/models"
)

const snapshotAuth = "spice-auth"

// SnapshotSessionRepository persists the signed-in identity. An absent
// blob reads as a signed-out session.
type SnapshotSessionRepository struct {
	store database.SnapshotStore
	mu    sync.Mutex
}

var _ SessionRepository = (*SnapshotSessionRepository)(nil)

func NewSessionRepository(store database.SnapshotStore) *SnapshotSessionRepository {
	return &SnapshotSessionRepository{store: store}
}

func (r *SnapshotSessionRepository) Get(ctx context.Context) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := r.store.Load(ctx, snapshotAuth)
	if err == database.ErrSnapshotNotFound {
		return &models.Session{}, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(blob, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SnapshotSessionRepository) Save(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, snapshotAuth, blob)
}
