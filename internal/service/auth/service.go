// Package auth resolves bearer tokens into request actors.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/auth"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the token operations needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service verifies tokens and issues them for the CLI.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}

// Authenticate verifies the token and loads the user it names.
// Any failure (bad token, unknown or inactive user) is ErrUnauthorized;
// infrastructure errors are returned wrapped.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("reason", err.Error()))
		return domain.Actor{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("auth.Authenticate: %w", err)
	}
	if !user.IsActive {
		s.log.InfoContext(ctx, "inactive user rejected", slog.String("user_id", user.ID.String()))
		return domain.Actor{}, domain.ErrUnauthorized
	}

	// The stored role wins over the claim so demotions apply immediately.
	return domain.ActorFromUser(*user), nil
}

// IssueToken signs an access token for the active user with the given email.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domain.NewValidationError("email", "required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}
	if !user.IsActive {
		return "", fmt.Errorf("auth.IssueToken: user %s is inactive: %w", user.ID, domain.ErrForbidden)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)
	return token, nil
}
