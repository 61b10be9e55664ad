package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/utils"
)

// ErrInvalidCredentials is returned for a bad username or password; the two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// authService verifies operator credentials and issues session tokens
// carrying the user, role and shop claims the API trusts.
type authService struct {
	userRepo  portsrepo.UserRepositoryFacade
	shopRepo  portsrepo.ShopRepositoryFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, shopRepo portsrepo.ShopRepositoryFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		shopRepo:  shopRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the credentials and returns a session token with the
// operator's role and shop binding.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Admins carry no shop binding; staff tokens embed their shop.
	var shopID, shopName string
	if user.ShopID != "" {
		shop, err := s.shopRepo.FindShopByID(ctx, user.ShopID)
		if err != nil {
			return nil, fmt.Errorf("failed to load shop for user %s: %w", user.UserID, err)
		}
		shopID = shop.ShopID
		shopName = shop.Name
	}

	token, err := utils.GenerateSessionToken(user.UserID, string(user.Role), shopID, shopName, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.UserID,
		Name:     user.Name,
		Role:     string(user.Role),
		ShopID:   shopID,
		ShopName: shopName,
	}, nil
}
