package repository

import (
	"context"

	"github.com/spicepatrao/storefront-backend/models"
)

// ProductRepository is the catalog side of the data snapshot. Create
// prepends (newest catalog entry first); Update and Delete return
// ErrProductNotFound instead of silently dropping the mutation.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository stores placed orders newest-first. Orders are never
// updated or deleted after creation.
type OrderRepository interface {
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
}

// UserRepository stores registered users. Email lookup is
// case-insensitive; uniqueness is enforced by the auth service before
// Create, not here.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	MarkVerified(ctx context.Context, email string) error
}

// CartRepository persists the whole cart (lines plus wishlist) as one
// snapshot. Get never fails on an absent blob; it returns an empty cart.
type CartRepository interface {
	Get(ctx context.Context) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// SessionRepository persists the single signed-in identity.
type SessionRepository interface {
	Get(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
}
