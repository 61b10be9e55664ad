package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/core/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// --- Mock ShopLoanRepository ---
type MockShopLoanRepository struct {
	mock.Mock
}

func (m *MockShopLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.ShopLoan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopLoan), args.Error(1)
}

func (m *MockShopLoanRepository) ListLoans(ctx context.Context, shopID string, limit, offset int) ([]domain.ShopLoan, error) {
	args := m.Called(ctx, shopID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopLoan), args.Error(1)
}

func (m *MockShopLoanRepository) CreateLoan(ctx context.Context, loan domain.ShopLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockShopLoanRepository) UpdateLoan(ctx context.Context, loan domain.ShopLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

// --- Test Suite ---
type ShopLoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo *MockShopLoanRepository
	mockShopRepo *MockShopRepository
	service      portssvc.ShopLoanSvcFacade
}

func (suite *ShopLoanServiceTestSuite) SetupTest() {
	suite.mockLoanRepo = new(MockShopLoanRepository)
	suite.mockShopRepo = new(MockShopRepository)
	suite.service = services.NewShopLoanService(suite.mockLoanRepo, suite.mockShopRepo)
}

// --- Test Cases ---

func (suite *ShopLoanServiceTestSuite) TestCreateLoan_Success() {
	ctx := context.Background()
	req := dto.CreateShopLoanRequest{
		LenderShopID:   "shop-1",
		BorrowerShopID: "shop-2",
		Amount:         decimal.NewFromInt(300),
		CurrencyCode:   "USD",
		Note:           "  drawer shortfall  ",
	}

	suite.mockShopRepo.On("FindShopByID", ctx, "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil).Once()
	suite.mockShopRepo.On("FindShopByID", ctx, "shop-2").Return(&domain.Shop{ShopID: "shop-2"}, nil).Once()
	suite.mockLoanRepo.On("CreateLoan", ctx, mock.AnythingOfType("domain.ShopLoan")).Return(nil).Once()

	loan, err := suite.service.CreateLoan(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.LoanOutstanding, loan.Status)
	suite.Equal("drawer shortfall", loan.Note)
	suite.Nil(loan.SettledAt)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *ShopLoanServiceTestSuite) TestCreateLoan_SameShopRejected() {
	ctx := context.Background()
	req := dto.CreateShopLoanRequest{
		LenderShopID:   "shop-1",
		BorrowerShopID: "shop-1",
		Amount:         decimal.NewFromInt(300),
		CurrencyCode:   "USD",
	}

	_, err := suite.service.CreateLoan(ctx, req, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "CreateLoan", mock.Anything, mock.Anything)
}

func (suite *ShopLoanServiceTestSuite) TestCreateLoan_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.CreateShopLoanRequest{
		LenderShopID:   "shop-1",
		BorrowerShopID: "shop-2",
		Amount:         decimal.Zero,
		CurrencyCode:   "USD",
	}

	_, err := suite.service.CreateLoan(ctx, req, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "FindShopByID", mock.Anything, mock.Anything)
}

func (suite *ShopLoanServiceTestSuite) TestSettleLoan_Success() {
	ctx := context.Background()
	loanID := uuid.NewString()
	outstanding := &domain.ShopLoan{
		LoanID:         loanID,
		LenderShopID:   "shop-1",
		BorrowerShopID: "shop-2",
		Amount:         decimal.NewFromInt(300),
		CurrencyCode:   "USD",
		Status:         domain.LoanOutstanding,
	}

	var updated domain.ShopLoan
	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(outstanding, nil).Once()
	suite.mockLoanRepo.On("UpdateLoan", ctx, mock.AnythingOfType("domain.ShopLoan")).Run(func(args mock.Arguments) {
		updated = args.Get(1).(domain.ShopLoan)
	}).Return(nil).Once()

	loan, err := suite.service.SettleLoan(ctx, loanID, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.LoanSettled, loan.Status)
	suite.Equal("admin-1", loan.SettledBy)
	suite.NotNil(loan.SettledAt)
	suite.Equal(domain.LoanSettled, updated.Status)
}

func (suite *ShopLoanServiceTestSuite) TestSettleLoan_TwiceRejected() {
	ctx := context.Background()
	loanID := uuid.NewString()
	settled := &domain.ShopLoan{
		LoanID: loanID,
		Status: domain.LoanSettled,
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(settled, nil).Once()

	_, err := suite.service.SettleLoan(ctx, loanID, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "UpdateLoan", mock.Anything, mock.Anything)
}

func TestShopLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShopLoanServiceTestSuite))
}
