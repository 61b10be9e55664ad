package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/utils"
)

// userService provides business logic for operator accounts.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	shopRepo portsrepo.ShopRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, shopRepo portsrepo.ShopRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, shopRepo: shopRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser provisions an operator account. Staff must be bound to an
// existing shop; admins may be created without one and then hold no shop
// claim in their session tokens.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if req.ShopID == "" {
		if domain.UserRole(req.Role) != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: staff accounts must be bound to a shop", apperrors.ErrValidation)
		}
	} else if _, err := s.shopRepo.FindShopByID(ctx, req.ShopID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: shop %s not found", apperrors.ErrValidation, req.ShopID)
		}
		return nil, fmt.Errorf("failed to validate shop %s: %w", req.ShopID, err)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %q: %w", username, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.UserRole(req.Role),
		ShopID:       req.ShopID,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// EnsureBootstrapAdmin creates a shop-less admin account when the users
// table is empty, so a freshly migrated deployment has a first login to
// provision everything else with. It reports whether an account was created
// and is a no-op once any user exists.
func (s *userService) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := s.userRepo.ListUsers(ctx, 1, 0)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing users: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(strings.TrimSpace(username)),
		Name:         "Bootstrap Administrator",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "bootstrap",
			LastUpdatedAt: now,
			LastUpdatedBy: "bootstrap",
		},
	}

	if err := s.userRepo.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	return true, nil
}

// GetUserByID retrieves one operator account.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers returns operator accounts.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
