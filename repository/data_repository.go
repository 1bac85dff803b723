package repository

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/models"
)

const snapshotData = "spice-data"

// dataState is the shape of the spice-data snapshot blob: the catalog,
// placed orders (newest first) and the registered-users list.
type dataState struct {
	Products        []models.Product `json:"products"`
	Orders          []models.Order   `json:"orders"`
	RegisteredUsers []models.User    `json:"registered_users"`
}

// DataRepository is the mock database. One in-memory state value backs
// the Product, Order and User repositories; every successful mutation
// rewrites the whole snapshot blob. Mutations build the next state value
// first and only commit it in memory once the snapshot is persisted, so
// a failed save leaves both memory and blob unchanged.
type DataRepository struct {
	store  database.SnapshotStore
	logger *zap.Logger

	mu    sync.RWMutex
	state dataState
}

var (
	_ ProductRepository = (*DataRepository)(nil)
	_ OrderRepository   = (*DataRepository)(nil)
	_ UserRepository    = (*DataRepository)(nil)
)

// NewDataRepository rehydrates the spice-data blob, seeding the catalog
// and the built-in accounts when no blob exists yet.
func NewDataRepository(ctx context.Context, store database.SnapshotStore, logger *zap.Logger) (*DataRepository, error) {
	r := &DataRepository{store: store, logger: logger}

	blob, err := store.Load(ctx, snapshotData)
	if err == database.ErrSnapshotNotFound {
		r.state = dataState{
			Products:        SeedProducts(),
			Orders:          []models.Order{},
			RegisteredUsers: SeedUsers(),
		}
		if err := r.persist(ctx, r.state); err != nil {
			return nil, err
		}
		logger.Info("Seeded data snapshot",
			zap.Int("products", len(r.state.Products)),
			zap.Int("users", len(r.state.RegisteredUsers)))
		return r, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(blob, &r.state); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DataRepository) persist(ctx context.Context, next dataState) error {
	blob, err := json.Marshal(next)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, snapshotData, blob)
}

// commit persists next and, on success, makes it the current state.
// Callers must hold the write lock.
func (r *DataRepository) commit(ctx context.Context, next dataState) error {
	if err := r.persist(ctx, next); err != nil {
		return err
	}
	r.state = next
	return nil
}

// ---- ProductRepository ----

func (r *DataRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyProducts(r.state.Products), nil
}

func (r *DataRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.state.Products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create prepends the product, matching the admin dashboard's
// newest-first catalog ordering.
func (r *DataRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state
	next.Products = append([]models.Product{*product}, r.state.Products...)
	return r.commit(ctx, next)
}

func (r *DataRepository) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	next := r.state
	next.Products = make([]models.Product, len(r.state.Products))
	for i, p := range r.state.Products {
		if p.ID == product.ID {
			next.Products[i] = *product
			found = true
		} else {
			next.Products[i] = p
		}
	}
	if !found {
		return ErrProductNotFound
	}
	return r.commit(ctx, next)
}

func (r *DataRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state
	next.Products = make([]models.Product, 0, len(r.state.Products))
	found := false
	for _, p := range r.state.Products {
		if p.ID == id {
			found = true
			continue
		}
		next.Products = append(next.Products, p)
	}
	if !found {
		return ErrProductNotFound
	}
	return r.commit(ctx, next)
}

// ---- OrderRepository ----

func (r *DataRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOrders(r.state.Orders), nil
}

func (r *DataRepository) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Order
	for _, o := range r.state.Orders {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

// CreateOrder prepends so the order list stays newest-first. The order's
// items are copied so later cart mutations cannot leak into the record.
func (r *DataRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state
	next.Orders = append([]models.Order{copyOrder(*order)}, r.state.Orders...)
	return r.commit(ctx, next)
}

// ---- UserRepository ----

func (r *DataRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.state.RegisteredUsers))
	copy(out, r.state.RegisteredUsers)
	return out, nil
}

func (r *DataRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.state.RegisteredUsers {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *DataRepository) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.state.RegisteredUsers {
		if strings.EqualFold(u.Email, email) && u.Role == role {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *DataRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state
	next.RegisteredUsers = append(append([]models.User{}, r.state.RegisteredUsers...), *user)
	return r.commit(ctx, next)
}

// MarkVerified sets isVerified on every user registered under the email
// (there should be at most one).
func (r *DataRepository) MarkVerified(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	next := r.state
	next.RegisteredUsers = make([]models.User, len(r.state.RegisteredUsers))
	for i, u := range r.state.RegisteredUsers {
		if strings.EqualFold(u.Email, email) {
			u.IsVerified = true
			found = true
		}
		next.RegisteredUsers[i] = u
	}
	if !found {
		return ErrUserNotFound
	}
	return r.commit(ctx, next)
}

// ---- copy helpers ----

func copyProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	copy(out, in)
	return out
}

func copyOrder(o models.Order) models.Order {
	items := make([]models.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func copyOrders(in []models.Order) []models.Order {
	out := make([]models.Order, len(in))
	for i, o := range in {
		out[i] = copyOrder(o)
	}
	return out
}
