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

func newAuthFixture(t *testing.T) (*services.AuthService, repository.SessionRepository) {
	t.Helper()
	store := database.NewMemoryStore()
	logger, _ := zap.NewDevelopment()

	data, err := repository.NewDataRepository(context.Background(), store, logger)
	require.NoError(t, err)

	sessions := repository.NewSessionRepository(store)
	return services.NewAuthService(data, sessions, logger), sessions
}

func TestLogin_SeededCustomer(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	user, svcErr := svc.Login(ctx, services.LoginRequest{Email: "User@Example.com", Password: "whatever"})
	require.Nil(t, svcErr)
	assert.Equal(t, "user1", user.ID)

	session, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "user1", session.User.ID)
}

func TestLogin_RoleMismatchIsDistinctFromUnknown(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	// admin account, customer portal
	_, svcErr := svc.Login(ctx, services.LoginRequest{Email: "admin@spice.com"})
	require.NotNil(t, svcErr)
	assert.Equal(t, 403, svcErr.StatusCode)

	// unknown account
	_, svcErr = svc.Login(ctx, services.LoginRequest{Email: "nobody@spice.com"})
	require.NotNil(t, svcErr)
	assert.Equal(t, 401, svcErr.StatusCode)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	_, svcErr := svc.Login(ctx, services.LoginRequest{Email: "user@example.com"})
	require.Nil(t, svcErr)
	require.NoError(t, svc.Logout(ctx))

	session, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated)
	assert.Nil(t, session.User)
}

func TestRegister_FieldValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, svcErr := svc.Register(context.Background(), services.RegisterRequest{
		Name:     "  ",
		Email:    "not-an-email",
		Password: "short",
		Mobile:   "12345",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Contains(t, svcErr.Fields, "name")
	assert.Contains(t, svcErr.Fields, "email")
	assert.Contains(t, svcErr.Fields, "password")
	assert.Contains(t, svcErr.Fields, "mobile")
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, svcErr := svc.Register(context.Background(), services.RegisterRequest{
		Name:     "Second Aditya",
		Email:    "USER@example.com",
		Password: "secret1",
		Mobile:   "98765 43210",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestRegister_CreatesAndSignsIn(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	user, svcErr := svc.Register(ctx, services.RegisterRequest{
		Name:     "Meera Shah",
		Email:    "Meera@Example.com",
		Password: "longenough",
		Mobile:   "91234 56789",
	})
	require.Nil(t, svcErr)
	assert.Equal(t, "meera@example.com", user.Email, "email normalized")
	assert.Equal(t, "9123456789", user.Mobile, "mobile stripped to digits")
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.True(t, user.IsVerified)

	session, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)

	// Registered user can sign in again later.
	require.NoError(t, svc.Logout(ctx))
	again, svcErr := svc.Login(ctx, services.LoginRequest{Email: "meera@example.com"})
	require.Nil(t, svcErr)
	assert.Equal(t, user.ID, again.ID)
}

func TestVerify_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	svcErr := svc.Verify(context.Background(), "ghost@example.com")
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
