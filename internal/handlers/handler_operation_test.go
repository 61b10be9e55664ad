package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/handlers"
	"github.com/boutikapp/caisse-backend/internal/middleware"
	"github.com/boutikapp/caisse-backend/internal/utils"
)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) IsClosed(ctx context.Context, shopID string, day time.Time, period domain.Period) (bool, error) {
	args := m.Called(ctx, shopID, day, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockReconciliationService) ResolveOpening(ctx context.Context, shopID string, day time.Time, period domain.Period) (*domain.CarryForward, error) {
	args := m.Called(ctx, shopID, day, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarryForward), args.Error(1)
}

func (m *MockReconciliationService) CloseOperation(ctx context.Context, shopID string, req dto.CloseOperationRequest, operatorUserID string) (*domain.Operation, []domain.Advisory, error) {
	args := m.Called(ctx, shopID, req, operatorUserID)
	var op *domain.Operation
	if args.Get(0) != nil {
		op = args.Get(0).(*domain.Operation)
	}
	var advisories []domain.Advisory
	if args.Get(1) != nil {
		advisories = args.Get(1).([]domain.Advisory)
	}
	return op, advisories, args.Error(2)
}

func (m *MockReconciliationService) GetOperation(ctx context.Context, shopID, operationID string) (*domain.Operation, error) {
	args := m.Called(ctx, shopID, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockReconciliationService) ListOperations(ctx context.Context, shopID string, day time.Time, period domain.Period, limit, offset int) ([]domain.Operation, error) {
	args := m.Called(ctx, shopID, day, period, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Test Suite ---
type OperationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReconciliationService
	jwtSecret   string
	shopID      string
}

func (suite *OperationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.shopID = uuid.NewString()

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockReconciliationService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterOperationRoutes(v1, suite.mockService, &utils.PosthogClientWrapper{})
}

// operatorToken issues a token bound to the suite's shop.
func (suite *OperationHandlerTestSuite) operatorToken(userID string) string {
	token, err := utils.GenerateSessionToken(userID, string(domain.RoleStaff), suite.shopID, "Boutique Centre", suite.jwtSecret, time.Hour, "caisse-test")
	suite.Require().NoError(err)
	return token
}

func (suite *OperationHandlerTestSuite) doRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *OperationHandlerTestSuite) TestGetPeriodState() {
	userID := uuid.NewString()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	suite.mockService.On("IsClosed", mock.Anything, suite.shopID, day, domain.PeriodMorning).Return(true, nil).Once()

	path := fmt.Sprintf("/api/v1/shops/%s/operations/state?date=2026-08-28&period=morning", suite.shopID)
	w := suite.doRequest(http.MethodGet, path, suite.operatorToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PeriodStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Closed)
	suite.Equal(domain.PeriodMorning, resp.Period)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OperationHandlerTestSuite) TestGetPeriodState_RejectsBadPeriod() {
	path := fmt.Sprintf("/api/v1/shops/%s/operations/state?date=2026-08-28&period=noon", suite.shopID)
	w := suite.doRequest(http.MethodGet, path, suite.operatorToken(uuid.NewString()), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IsClosed")
}

func (suite *OperationHandlerTestSuite) TestCloseOperation_Created() {
	userID := uuid.NewString()
	reqBody := dto.CloseOperationRequest{
		OpDate:      "2026-08-28",
		Period:      domain.PeriodEvening,
		CashClosing: decimal.NewFromInt(100),
	}
	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)

	op := &domain.Operation{
		OperationID: uuid.NewString(),
		ShopID:      suite.shopID,
		OpDate:      time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Period:      domain.PeriodEvening,
		CashClosing: decimal.NewFromInt(100),
		GrandTotal:  decimal.NewFromInt(100),
		CreatedBy:   userID,
	}
	advisories := []domain.Advisory{{Code: domain.AdvisoryRateMissing, Message: "no exchange rate registered for this date"}}

	suite.mockService.On("CloseOperation", mock.Anything, suite.shopID, mock.AnythingOfType("dto.CloseOperationRequest"), userID).
		Return(op, advisories, nil).Once()

	path := fmt.Sprintf("/api/v1/shops/%s/operations/close", suite.shopID)
	w := suite.doRequest(http.MethodPost, path, suite.operatorToken(userID), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CloseOperationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(op.OperationID, resp.Operation.OperationID)
	suite.Require().Len(resp.Advisories, 1)
	suite.Equal(domain.AdvisoryRateMissing, resp.Advisories[0].Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OperationHandlerTestSuite) TestCloseOperation_Conflict() {
	userID := uuid.NewString()
	reqBody := dto.CloseOperationRequest{
		OpDate:      "2026-08-28",
		Period:      domain.PeriodEvening,
		CashClosing: decimal.NewFromInt(100),
	}
	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)

	suite.mockService.On("CloseOperation", mock.Anything, suite.shopID, mock.AnythingOfType("dto.CloseOperationRequest"), userID).
		Return(nil, nil, fmt.Errorf("wrapped: %w", apperrors.ErrDuplicateClosing)).Once()

	path := fmt.Sprintf("/api/v1/shops/%s/operations/close", suite.shopID)
	w := suite.doRequest(http.MethodPost, path, suite.operatorToken(userID), body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *OperationHandlerTestSuite) TestCloseOperation_TransientFailureRetryable() {
	userID := uuid.NewString()
	reqBody := dto.CloseOperationRequest{
		OpDate:      "2026-08-28",
		Period:      domain.PeriodMorning,
		CashClosing: decimal.NewFromInt(100),
	}
	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)

	suite.mockService.On("CloseOperation", mock.Anything, suite.shopID, mock.AnythingOfType("dto.CloseOperationRequest"), userID).
		Return(nil, nil, apperrors.NewTransientError("insert failed", fmt.Errorf("connection reset"))).Once()

	path := fmt.Sprintf("/api/v1/shops/%s/operations/close", suite.shopID)
	w := suite.doRequest(http.MethodPost, path, suite.operatorToken(userID), body)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *OperationHandlerTestSuite) TestGetOpening() {
	userID := uuid.NewString()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	cf := &domain.CarryForward{
		ShopID:      suite.shopID,
		Period:      domain.PeriodMorning,
		CashOpening: decimal.NewFromInt(100),
		Advisories:  []domain.Advisory{{Code: domain.AdvisoryNoPredecessor, Message: "no previous evening closing found"}},
	}

	suite.mockService.On("ResolveOpening", mock.Anything, suite.shopID, day, domain.PeriodMorning).Return(cf, nil).Once()

	path := fmt.Sprintf("/api/v1/shops/%s/operations/opening?date=2026-08-28&period=morning", suite.shopID)
	w := suite.doRequest(http.MethodGet, path, suite.operatorToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.CarryForward
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Advisories, 1)
	suite.Equal(domain.AdvisoryNoPredecessor, resp.Advisories[0].Code)
}

func (suite *OperationHandlerTestSuite) TestShopAccessDenied() {
	// Token bound to a different shop.
	token, err := utils.GenerateSessionToken(uuid.NewString(), string(domain.RoleStaff), uuid.NewString(), "Other Shop", suite.jwtSecret, time.Hour, "caisse-test")
	suite.Require().NoError(err)

	path := fmt.Sprintf("/api/v1/shops/%s/operations/state?date=2026-08-28&period=morning", suite.shopID)
	w := suite.doRequest(http.MethodGet, path, token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IsClosed")
}

func (suite *OperationHandlerTestSuite) TestAdminBypassesShopBinding() {
	userID := uuid.NewString()
	token, err := utils.GenerateSessionToken(userID, string(domain.RoleAdmin), "", "", suite.jwtSecret, time.Hour, "caisse-test")
	suite.Require().NoError(err)

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("IsClosed", mock.Anything, suite.shopID, day, domain.PeriodEvening).Return(false, nil).Once()

	path := fmt.Sprintf("/api/v1/shops/%s/operations/state?date=2026-08-28&period=evening", suite.shopID)
	w := suite.doRequest(http.MethodGet, path, token, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *OperationHandlerTestSuite) TestMissingTokenRejected() {
	path := fmt.Sprintf("/api/v1/shops/%s/operations/state?date=2026-08-28&period=morning", suite.shopID)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestOperationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OperationHandlerTestSuite))
}
