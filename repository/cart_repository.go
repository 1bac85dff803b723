package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/models"
)

const snapshotCart = "spice-cart"

// SnapshotCartRepository persists the whole cart as one blob. An absent
// blob reads as an empty cart rather than an error.
type SnapshotCartRepository struct {
	store database.SnapshotStore
	mu    sync.Mutex
}

var _ CartRepository = (*SnapshotCartRepository)(nil)

func NewCartRepository(store database.SnapshotStore) *SnapshotCartRepository {
	return &SnapshotCartRepository{store: store}
}

func (r *SnapshotCartRepository) Get(ctx context.Context) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := r.store.Load(ctx, snapshotCart)
	if err == database.ErrSnapshotNotFound {
		return &models.Cart{Items: []models.CartItem{}, Wishlist: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal(blob, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	if cart.Wishlist == nil {
		cart.Wishlist = []string{}
	}
	return &cart, nil
}

func (r *SnapshotCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.UpdatedAt = time.Now()
	blob, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, snapshotCart, blob)
}
