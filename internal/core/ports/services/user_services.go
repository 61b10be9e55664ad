package services

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// UserSvcFacade defines operator account management.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	// EnsureBootstrapAdmin creates a first admin account when no users
	// exist yet, reporting whether one was created.
	EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error)
}

// AuthSvcFacade defines credential verification and session token issuing.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
