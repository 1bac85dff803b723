package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
	"github.com/spicepatrao/storefront-backend/services"
)

// newCartFixture wires a cart service over in-memory snapshots with the
// seeded catalog (turmeric-1 is 40/320).
func newCartFixture(t *testing.T) (*services.CartService, *repository.DataRepository) {
	t.Helper()
	store := database.NewMemoryStore()
	logger, _ := zap.NewDevelopment()

	data, err := repository.NewDataRepository(context.Background(), store, logger)
	require.NoError(t, err)

	carts := repository.NewCartRepository(store)
	return services.NewCartService(carts, data, logger), data
}

func line(productID string, weight models.Weight, qty int) models.CartItem {
	return models.CartItem{ProductID: productID, Weight: weight, Quantity: qty}
}

func TestAddToCart_RepeatedKeyIsAdditive(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)
	cart, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddToCart_NewWeightAppendsDistinctLine(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 2))
	require.NoError(t, err)
	cart, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight1kg, 1))
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity, "existing line quantity unchanged")
	assert.Equal(t, models.Weight1kg, cart.Items[1].Weight, "new line appended at the end")
}

func TestRemoveThenAdd_StartsFresh(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 5))
	require.NoError(t, err)
	_, err = svc.RemoveFromCart(ctx, "turmeric-1", models.Weight100g)
	require.NoError(t, err)

	cart, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity, "no residual quantity from the removed line")
}

func TestRemoveFromCart_AbsentLineIsNoop(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)

	cart, err := svc.RemoveFromCart(ctx, "turmeric-1", models.Weight500g)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestUpdateQuantity_VerbatimIncludingZero(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 2))
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "turmeric-1", models.Weight100g, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity, "quantity replaced, not added")

	// Zero leaves a degenerate line rather than removing it.
	cart, err = svc.UpdateQuantity(ctx, "turmeric-1", models.Weight100g, 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 0, cart.Items[0].Quantity)
}

func TestClearCart_LeavesWishlist(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)
	_, err = svc.AddToWishlist(ctx, "cardamom-1")
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx))

	cart, err := svc.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, []string{"cardamom-1"}, cart.Wishlist)
}

func TestAddToWishlist_Idempotent(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddToWishlist(ctx, "pepper-1")
	require.NoError(t, err)
	cart, err := svc.AddToWishlist(ctx, "pepper-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"pepper-1"}, cart.Wishlist)

	cart, err = svc.RemoveFromWishlist(ctx, "pepper-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Wishlist)
}

func TestCartTotal_EndToEndScenario(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	cart, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)
	total, err := svc.CartTotal(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, 40, total)

	cart, err = svc.AddToCart(ctx, line("turmeric-1", models.Weight1kg, 1))
	require.NoError(t, err)
	total, err = svc.CartTotal(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, 360, total)

	cart, err = svc.UpdateQuantity(ctx, "turmeric-1", models.Weight100g, 3)
	require.NoError(t, err)
	total, err = svc.CartTotal(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, 440, total)
}

func TestCartTotal_SkipsDanglingProduct(t *testing.T) {
	svc, data := newCartFixture(t)
	ctx := context.Background()

	cart, err := svc.AddToCart(ctx, line("turmeric-1", models.Weight100g, 1))
	require.NoError(t, err)
	cart, err = svc.AddToCart(ctx, line("pepper-1", models.Weight100g, 1))
	require.NoError(t, err)

	require.NoError(t, data.Delete(ctx, "pepper-1"))

	total, err := svc.CartTotal(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, 40, total, "dangling line is skipped, not an error")
}
