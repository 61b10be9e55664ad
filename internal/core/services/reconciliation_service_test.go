package services_test

import (
	"context"
	"testing"
	"time"

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

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) FindOperation(ctx context.Context, shopID string, day time.Time, period domain.Period) (*domain.Operation, error) {
	args := m.Called(ctx, shopID, day, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) ListOperations(ctx context.Context, shopID string, day time.Time, period domain.Period, limit, offset int) ([]domain.Operation, error) {
	args := m.Called(ctx, shopID, day, period, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) CreateOperation(ctx context.Context, op domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

// --- Mock ShopRepository ---
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) ListShops(ctx context.Context, limit, offset int) ([]domain.Shop, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopRepository) CreateShop(ctx context.Context, shop domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

// --- Mock DailyRateService ---
type MockDailyRateService struct {
	mock.Mock
}

func (m *MockDailyRateService) CreateRate(ctx context.Context, req dto.CreateDailyRateRequest, creatorUserID string) (*domain.DailyRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRate), args.Error(1)
}

func (m *MockDailyRateService) UpdateRate(ctx context.Context, rateID string, req dto.UpdateDailyRateRequest, updaterUserID string) (*domain.DailyRate, error) {
	args := m.Called(ctx, rateID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRate), args.Error(1)
}

func (m *MockDailyRateService) GetRateByDate(ctx context.Context, day time.Time) (*domain.DailyRate, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRate), args.Error(1)
}

func (m *MockDailyRateService) GetLatestRateOnOrBefore(ctx context.Context, day time.Time) (*domain.DailyRate, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRate), args.Error(1)
}

func (m *MockDailyRateService) ListRates(ctx context.Context, limit, offset int) ([]domain.DailyRate, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRate), args.Error(1)
}

var _ portssvc.DailyRateSvcFacade = (*MockDailyRateService)(nil)

// --- Test Suite ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockOperationRepo *MockOperationRepository
	mockShopRepo      *MockShopRepository
	mockRateSvc       *MockDailyRateService
	service           portssvc.ReconciliationSvcFacade

	shopID string
	shop   *domain.Shop
	day    time.Time
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockOperationRepo = new(MockOperationRepository)
	suite.mockShopRepo = new(MockShopRepository)
	suite.mockRateSvc = new(MockDailyRateService)
	suite.service = services.NewReconciliationService(suite.mockOperationRepo, suite.mockShopRepo, suite.mockRateSvc)

	suite.shopID = uuid.NewString()
	suite.shop = &domain.Shop{
		ShopID:              suite.shopID,
		Name:                "Boutique Centre",
		ElectronicProviders: []string{"mpesa", "airtel_money"},
		CreditNetworks:      []string{"vodacom"},
	}
	suite.day = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
}

func (suite *ReconciliationServiceTestSuite) eveningRequest() dto.CloseOperationRequest {
	return dto.CloseOperationRequest{
		OpDate:      "2026-08-28",
		Period:      domain.PeriodEvening,
		CashClosing: decimal.NewFromInt(100),
		ElectronicFloats: map[string]dto.FloatLineInput{
			"mpesa":        {Closing: decimalPtr(decimal.NewFromInt(40))},
			"airtel_money": {Closing: decimalPtr(decimal.NewFromInt(10))},
		},
		CreditFloats: map[string]dto.FloatLineInput{
			"vodacom": {Closing: decimalPtr(decimal.NewFromInt(25))},
		},
	}
}

// --- IsClosed ---

func (suite *ReconciliationServiceTestSuite) TestIsClosed_OpenPeriod() {
	ctx := context.Background()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodMorning).
		Return(nil, apperrors.ErrNotFound).Once()

	closed, err := suite.service.IsClosed(ctx, suite.shopID, suite.day, domain.PeriodMorning)

	suite.Require().NoError(err)
	suite.False(closed)
}

func (suite *ReconciliationServiceTestSuite) TestIsClosed_ClosedPeriod() {
	ctx := context.Background()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(&domain.Operation{OperationID: uuid.NewString()}, nil).Once()

	closed, err := suite.service.IsClosed(ctx, suite.shopID, suite.day, domain.PeriodEvening)

	suite.Require().NoError(err)
	suite.True(closed)
}

// --- CloseOperation ---

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_EveningSuccess() {
	ctx := context.Background()
	req := suite.eveningRequest()
	req.CashClosingForeign = decimalPtr(decimal.NewFromInt(2700))

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateSvc.On("GetRateByDate", ctx, suite.day).
		Return(&domain.DailyRate{RateLocalPerUSD: decimal.NewFromInt(2700)}, nil).Once()

	var persisted domain.Operation
	suite.mockOperationRepo.On("CreateOperation", ctx, mock.AnythingOfType("domain.Operation")).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(domain.Operation) }).
		Return(nil).Once()

	op, advisories, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(op)
	suite.Empty(advisories)
	// 100 cash + 1.00 converted foreign + 40 + 10 electronic + 25 credit
	suite.True(op.GrandTotal.Equal(decimal.NewFromInt(176)), "got %s", op.GrandTotal)
	suite.Require().NotNil(op.FxRate)
	suite.True(op.FxRate.Equal(decimal.NewFromInt(2700)))
	suite.Equal(op.GrandTotal.String(), persisted.GrandTotal.String())
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_AlreadyClosed() {
	ctx := context.Background()
	req := suite.eveningRequest()

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(&domain.Operation{OperationID: uuid.NewString()}, nil).Once()

	op, advisories, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateClosing)
	suite.Nil(op)
	suite.Nil(advisories)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "CreateOperation")
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_EveningRequiresEveryClosing() {
	ctx := context.Background()
	req := suite.eveningRequest()
	delete(req.ElectronicFloats, "airtel_money")

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()

	op, _, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(op)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "CreateOperation")
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_BlankClosingRejectedForEvening() {
	ctx := context.Background()
	req := suite.eveningRequest()
	// Present but blank: distinct from an explicit zero.
	req.ElectronicFloats["mpesa"] = dto.FloatLineInput{}

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_UnknownProviderRejected() {
	ctx := context.Background()
	req := suite.eveningRequest()
	req.ElectronicFloats["western_union"] = dto.FloatLineInput{Closing: decimalPtr(decimal.NewFromInt(5))}

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_MorningToleratesBlanks() {
	ctx := context.Background()
	req := dto.CloseOperationRequest{
		OpDate:      "2026-08-28",
		Period:      domain.PeriodMorning,
		CashClosing: decimal.NewFromInt(50),
		// No float entries at all: allowed for a morning close.
	}

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodMorning).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateSvc.On("GetRateByDate", ctx, suite.day).
		Return(&domain.DailyRate{RateLocalPerUSD: decimal.NewFromInt(2700)}, nil).Once()
	suite.mockOperationRepo.On("CreateOperation", ctx, mock.AnythingOfType("domain.Operation")).Return(nil).Once()

	op, advisories, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Empty(advisories)
	// Every catalog entry is materialized, blanks persisted as zero.
	suite.Len(op.ElectronicFloats, 2)
	suite.Len(op.CreditFloats, 1)
	suite.True(op.ElectronicFloats["mpesa"].Closing.IsZero())
	suite.True(op.GrandTotal.Equal(decimal.NewFromInt(50)))
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_MissingRateDegradesWithAdvisory() {
	ctx := context.Background()
	req := suite.eveningRequest()
	req.CashClosingForeign = decimalPtr(decimal.NewFromInt(5000))

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateSvc.On("GetRateByDate", ctx, suite.day).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOperationRepo.On("CreateOperation", ctx, mock.AnythingOfType("domain.Operation")).Return(nil).Once()

	op, advisories, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(advisories, 1)
	suite.Equal(domain.AdvisoryRateMissing, advisories[0].Code)
	suite.Nil(op.FxRate)
	// Foreign cash excluded from the total: 100 + 40 + 10 + 25.
	suite.True(op.GrandTotal.Equal(decimal.NewFromInt(175)), "got %s", op.GrandTotal)
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_MissingRateSilentWithoutForeign() {
	ctx := context.Background()
	req := suite.eveningRequest()

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateSvc.On("GetRateByDate", ctx, suite.day).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOperationRepo.On("CreateOperation", ctx, mock.AnythingOfType("domain.Operation")).Return(nil).Once()

	op, advisories, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Empty(advisories)
	suite.True(op.GrandTotal.Equal(decimal.NewFromInt(175)))
}

func (suite *ReconciliationServiceTestSuite) TestCloseOperation_RacingDuplicateSurfaces() {
	ctx := context.Background()
	req := suite.eveningRequest()

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateSvc.On("GetRateByDate", ctx, suite.day).
		Return(&domain.DailyRate{RateLocalPerUSD: decimal.NewFromInt(2700)}, nil).Once()
	// The pre-check passed but the insert lost the race on the unique index.
	suite.mockOperationRepo.On("CreateOperation", ctx, mock.AnythingOfType("domain.Operation")).
		Return(apperrors.ErrDuplicateClosing).Once()

	op, _, err := suite.service.CloseOperation(ctx, suite.shopID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateClosing)
	suite.Nil(op)
}

// --- ResolveOpening ---

func (suite *ReconciliationServiceTestSuite) TestResolveOpening_MorningCarriesPreviousEvening() {
	ctx := context.Background()
	previousDay := suite.day.AddDate(0, 0, -1)
	evening := &domain.Operation{
		OperationID: uuid.NewString(),
		CashClosing: decimal.NewFromInt(100),
		ElectronicFloats: map[string]domain.FloatLine{
			"mpesa":        {Opening: decimal.NewFromInt(30), Replenishment: decimal.NewFromInt(20), Closing: decimal.NewFromInt(40)},
			"airtel_money": {Closing: decimal.NewFromInt(10)},
		},
		CreditFloats: map[string]domain.FloatLine{
			"vodacom": {Closing: decimal.NewFromInt(25)},
		},
	}

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, previousDay, domain.PeriodEvening).
		Return(evening, nil).Once()

	cf, err := suite.service.ResolveOpening(ctx, suite.shopID, suite.day, domain.PeriodMorning)

	suite.Require().NoError(err)
	suite.Equal(evening.OperationID, cf.PredecessorID)
	suite.False(cf.ReferenceOnly)
	suite.Empty(cf.Advisories)
	suite.True(cf.CashOpening.Equal(decimal.NewFromInt(100)))
	// Closing balances become openings; replenishment starts fresh.
	suite.True(cf.ElectronicOpenings["mpesa"].Opening.Equal(decimal.NewFromInt(40)))
	suite.True(cf.ElectronicOpenings["mpesa"].Replenishment.IsZero())
	suite.True(cf.CreditOpenings["vodacom"].Opening.Equal(decimal.NewFromInt(25)))
}

func (suite *ReconciliationServiceTestSuite) TestResolveOpening_MorningWithoutPredecessor() {
	ctx := context.Background()
	previousDay := suite.day.AddDate(0, 0, -1)

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, previousDay, domain.PeriodEvening).
		Return(nil, apperrors.ErrNotFound).Once()

	cf, err := suite.service.ResolveOpening(ctx, suite.shopID, suite.day, domain.PeriodMorning)

	suite.Require().NoError(err)
	suite.Require().Len(cf.Advisories, 1)
	suite.Equal(domain.AdvisoryNoPredecessor, cf.Advisories[0].Code)
	suite.True(cf.CashOpening.IsZero())
	suite.Len(cf.ElectronicOpenings, 2)
	suite.Len(cf.CreditOpenings, 1)
}

func (suite *ReconciliationServiceTestSuite) TestResolveOpening_MorningFlagsMissingFigures() {
	ctx := context.Background()
	previousDay := suite.day.AddDate(0, 0, -1)
	// Evening record predates the shop handling airtel_money.
	evening := &domain.Operation{
		OperationID: uuid.NewString(),
		CashClosing: decimal.NewFromInt(80),
		ElectronicFloats: map[string]domain.FloatLine{
			"mpesa": {Closing: decimal.NewFromInt(40)},
		},
		CreditFloats: map[string]domain.FloatLine{
			"vodacom": {Closing: decimal.NewFromInt(25)},
		},
	}

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, previousDay, domain.PeriodEvening).
		Return(evening, nil).Once()

	cf, err := suite.service.ResolveOpening(ctx, suite.shopID, suite.day, domain.PeriodMorning)

	suite.Require().NoError(err)
	suite.Require().Len(cf.Advisories, 1)
	suite.Equal(domain.AdvisoryMissingFigure, cf.Advisories[0].Code)
	suite.Equal("electronicFloats.airtel_money", cf.Advisories[0].Field)
	suite.True(cf.ElectronicOpenings["airtel_money"].Opening.IsZero())
}

func (suite *ReconciliationServiceTestSuite) TestResolveOpening_EveningIsReferenceOnly() {
	ctx := context.Background()
	morning := &domain.Operation{
		OperationID: uuid.NewString(),
		CashClosing: decimal.NewFromInt(60),
		ElectronicFloats: map[string]domain.FloatLine{
			"mpesa":        {Closing: decimal.NewFromInt(35)},
			"airtel_money": {Closing: decimal.NewFromInt(5)},
		},
		CreditFloats: map[string]domain.FloatLine{
			"vodacom": {Closing: decimal.NewFromInt(20)},
		},
	}

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodMorning).
		Return(morning, nil).Once()

	cf, err := suite.service.ResolveOpening(ctx, suite.shopID, suite.day, domain.PeriodEvening)

	suite.Require().NoError(err)
	suite.True(cf.ReferenceOnly)
	suite.Empty(cf.Advisories)
	suite.True(cf.CashOpening.Equal(decimal.NewFromInt(60)))
	suite.True(cf.ElectronicOpenings["mpesa"].Opening.Equal(decimal.NewFromInt(35)))
}

func (suite *ReconciliationServiceTestSuite) TestResolveOpening_EveningWithoutMorningIsQuiet() {
	ctx := context.Background()

	suite.mockShopRepo.On("FindShopByID", ctx, suite.shopID).Return(suite.shop, nil).Once()
	suite.mockOperationRepo.On("FindOperation", ctx, suite.shopID, suite.day, domain.PeriodMorning).
		Return(nil, apperrors.ErrNotFound).Once()

	cf, err := suite.service.ResolveOpening(ctx, suite.shopID, suite.day, domain.PeriodEvening)

	// Skipping the morning close is a normal day, not a warning.
	suite.Require().NoError(err)
	suite.True(cf.ReferenceOnly)
	suite.Empty(cf.Advisories)
	suite.Empty(cf.PredecessorID)
}

// --- GetOperation ---

func (suite *ReconciliationServiceTestSuite) TestGetOperation_ScopedToShop() {
	ctx := context.Background()
	operationID := uuid.NewString()
	op := &domain.Operation{OperationID: operationID, ShopID: uuid.NewString()}

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(op, nil).Once()

	got, err := suite.service.GetOperation(ctx, suite.shopID, operationID)

	// Records of another shop read as not found.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
