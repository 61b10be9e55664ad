package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/core/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockShopRepo *MockShopRepository
	service      portssvc.AuthSvcFacade

	jwtSecret    string
	password     string
	passwordHash string
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	suite.password = "correct horse battery staple"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)
	suite.passwordHash = hash
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockShopRepo = new(MockShopRepository)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.mockShopRepo, suite.jwtSecret, time.Hour, "caisse-test")
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestLogin_StaffSuccess() {
	ctx := context.Background()
	shopID := uuid.NewString()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "marie",
		Name:         "Marie K.",
		Role:         domain.RoleStaff,
		ShopID:       shopID,
		PasswordHash: suite.passwordHash,
	}
	shop := &domain.Shop{ShopID: shopID, Name: "Boutique Centre"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "marie").Return(user, nil).Once()
	suite.mockShopRepo.On("FindShopByID", ctx, shopID).Return(shop, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: " Marie ", Password: suite.password})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, resp.UserID)
	suite.Equal(shopID, resp.ShopID)
	suite.Equal("Boutique Centre", resp.ShopName)

	claims, err := utils.ParseSessionToken(resp.Token, suite.jwtSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleStaff), claims.Role)
	suite.Equal(shopID, claims.ShopID)
}

func (suite *AuthServiceTestSuite) TestLogin_AdminWithoutShop() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "admin",
		Role:         domain.RoleAdmin,
		PasswordHash: suite.passwordHash,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "admin", Password: suite.password})

	suite.Require().NoError(err)
	suite.Empty(resp.ShopID)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "FindShopByID")
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "marie",
		Role:         domain.RoleStaff,
		PasswordHash: suite.passwordHash,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "marie").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "marie", Password: "not it"})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUserIndistinguishable() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Nil(resp)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
