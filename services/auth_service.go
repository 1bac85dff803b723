package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// RegisterRequest is the sign-up payload. The password is validated but
// never stored; sign-in is a mock email lookup.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	AsAdmin  bool   `json:"as_admin"`
}

// LoginRequest identifies an account by email and requested role.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	AsAdmin  bool   `json:"as_admin"`
}

// AuthService owns sign-in, sign-up and the persisted session. The
// session layer itself is total: it records whatever user it is handed.
// All verification happens here, before the session is written.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logger   *zap.Logger
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Current returns the persisted session, signed-out when no blob exists.
func (s *AuthService) Current(ctx context.Context) (*models.Session, error) {
	return s.sessions.Get(ctx)
}

// Login scans registered users for a matching email under the requested
// role. An account registered under the other role gets a distinct
// message so the caller can flip the admin toggle.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, *ServiceError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := models.RoleCustomer
	if req.AsAdmin {
		role = models.RoleAdmin
	}

	user, err := s.users.GetByEmailAndRole(ctx, email, role)
	if err == repository.ErrUserNotFound {
		if other, otherErr := s.users.GetByEmail(ctx, email); otherErr == nil {
			return nil, &ServiceError{
				StatusCode: 403,
				Message:    fmt.Sprintf("Account found but it is a %s account", other.Role),
			}
		}
		return nil, &ServiceError{StatusCode: 401, Message: "No account found with these credentials"}
	}
	if err != nil {
		s.logger.Error("Login lookup failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Login failed"}
	}

	if err := s.sessions.Save(ctx, &models.Session{User: user, IsAuthenticated: true}); err != nil {
		s.logger.Error("Failed to persist session", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Login failed"}
	}

	s.logger.Info("User signed in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Save(ctx, &models.Session{})
}

// Register validates the sign-up form, rejects duplicate emails, stores
// the new user and signs them in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, *ServiceError) {
	fields := map[string]string{}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fields["email"] = "Please enter a valid email address"
	}

	if req.Password == "" {
		fields["password"] = "Password is required"
	} else if len(req.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Full name is required"
	}

	mobile := digitsOnly(req.Mobile)
	if mobile == "" {
		fields["mobile"] = "Mobile number is required"
	} else if len(mobile) != 10 {
		fields["mobile"] = "Please enter a valid 10-digit mobile number"
	}

	if len(fields) > 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Validation failed", Fields: fields}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, &ServiceError{StatusCode: 409, Message: "An account with this email already exists"}
	}

	role := models.RoleCustomer
	if req.AsAdmin {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:         "user-" + uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Mobile:     mobile,
		Role:       role,
		IsVerified: true,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		s.logger.Error("Failed to register user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	if err := s.sessions.Save(ctx, &models.Session{User: user, IsAuthenticated: true}); err != nil {
		s.logger.Error("Failed to persist session after registration", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

// Verify marks the account under the given email as verified.
func (s *AuthService) Verify(ctx context.Context, email string) *ServiceError {
	err := s.users.MarkVerified(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == repository.ErrUserNotFound {
		return &ServiceError{StatusCode: 404, Message: "No account found for this email"}
	}
	if err != nil {
		s.logger.Error("Failed to verify user", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to verify account"}
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
