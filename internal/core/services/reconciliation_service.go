package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
	"github.com/boutikapp/caisse-backend/internal/middleware"
)

// reconciliationService implements the daily register workflow: period state,
// carry-forward resolution and the closing action.
type reconciliationService struct {
	operationRepo portsrepo.OperationRepositoryFacade
	shopRepo      portsrepo.ShopRepositoryFacade
	rateSvc       portssvc.DailyRateSvcFacade
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(operationRepo portsrepo.OperationRepositoryFacade, shopRepo portsrepo.ShopRepositoryFacade, rateSvc portssvc.DailyRateSvcFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		operationRepo: operationRepo,
		shopRepo:      shopRepo,
		rateSvc:       rateSvc,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// IsClosed reports whether a closing record exists for the triple. A period
// moves Open -> Closed exactly once; there is no reopen.
func (s *reconciliationService) IsClosed(ctx context.Context, shopID string, day time.Time, period domain.Period) (bool, error) {
	if !period.Valid() {
		return false, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
	_, err := s.operationRepo.FindOperation(ctx, shopID, NormalizeDay(day), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check period state: %w", err)
	}
	return true, nil
}

// ResolveOpening computes a period's opening figures from its predecessor:
// the previous day's evening record for a morning period, the same day's
// morning record for an evening period.
func (s *reconciliationService) ResolveOpening(ctx context.Context, shopID string, day time.Time, period domain.Period) (*domain.CarryForward, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}

	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop %s: %w", shopID, err)
	}

	day = NormalizeDay(day)
	predecessorDay := day
	predecessorPeriod := domain.PeriodMorning
	if period == domain.PeriodMorning {
		predecessorDay = day.AddDate(0, 0, -1)
		predecessorPeriod = domain.PeriodEvening
	}

	predecessor, err := s.operationRepo.FindOperation(ctx, shopID, predecessorDay, predecessorPeriod)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load predecessor record: %w", err)
	}

	if period == domain.PeriodMorning {
		return buildMorningCarryForward(shop, predecessor), nil
	}
	return buildEveningCarryForward(shop, predecessor), nil
}

// CloseOperation validates the closing submission, converts local-currency
// entries with the day's rate, computes the grand total and persists one
// immutable record. A missing rate never blocks the close: local-currency
// entries are excluded from the total and an advisory is returned instead.
func (s *reconciliationService) CloseOperation(ctx context.Context, shopID string, req dto.CloseOperationRequest, operatorUserID string) (*domain.Operation, []domain.Advisory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	day, err := ParseDay(req.OpDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid date: %s", apperrors.ErrValidation, req.OpDate)
	}
	if !req.Period.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, req.Period)
	}

	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load shop %s: %w", shopID, err)
	}

	closed, err := s.IsClosed(ctx, shopID, day, req.Period)
	if err != nil {
		return nil, nil, err
	}
	if closed {
		return nil, nil, fmt.Errorf("%w: %s %s for shop %s", apperrors.ErrDuplicateClosing, req.OpDate, req.Period, shopID)
	}

	if err := validateFloatInputs(shop, req); err != nil {
		return nil, nil, err
	}

	var advisories []domain.Advisory

	fxRate, rateAdvisory, err := s.lookupRate(ctx, day, req)
	if err != nil {
		return nil, nil, err
	}
	if rateAdvisory != nil {
		advisories = append(advisories, *rateAdvisory)
	}

	op := domain.Operation{
		OperationID:        uuid.NewString(),
		ShopID:             shopID,
		OpDate:             day,
		Period:             req.Period,
		CashClosing:        req.CashClosing,
		CashClosingForeign: req.CashClosingForeign,
		ElectronicFloats:   buildFloatLines(shop.ElectronicProviders, req.ElectronicFloats, true),
		CreditFloats:       buildFloatLines(shop.CreditNetworks, req.CreditFloats, false),
		FxRate:             fxRate,
		CreatedAt:          time.Now(),
		CreatedBy:          operatorUserID,
	}
	op.GrandTotal = op.ComputeGrandTotal()

	// Single insert; the unique index on (shop, date, period) decides the
	// loser of a racing double submission.
	if err := s.operationRepo.CreateOperation(ctx, op); err != nil {
		return nil, nil, fmt.Errorf("failed to persist closing record: %w", err)
	}

	logger.Info("register period closed",
		slog.String("shop_id", shopID),
		slog.String("date", req.OpDate),
		slog.String("period", string(req.Period)),
		slog.String("grand_total", op.GrandTotal.String()),
	)

	return &op, advisories, nil
}

// GetOperation loads one closing record, scoped to the shop it belongs to.
func (s *reconciliationService) GetOperation(ctx context.Context, shopID, operationID string) (*domain.Operation, error) {
	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get operation %s: %w", operationID, err)
	}
	if op.ShopID != shopID {
		return nil, apperrors.NewNotFoundError("operation " + operationID + " not found")
	}
	return op, nil
}

// ListOperations returns a shop's closing history, newest first.
func (s *reconciliationService) ListOperations(ctx context.Context, shopID string, day time.Time, period domain.Period, limit, offset int) ([]domain.Operation, error) {
	if period != "" && !period.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if !day.IsZero() {
		day = NormalizeDay(day)
	}
	ops, err := s.operationRepo.ListOperations(ctx, shopID, day, period, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}

// validateFloatInputs checks the submission against the shop's catalogs.
// Unknown keys are rejected outright. An evening close must carry a closing
// figure for every catalog entry; a morning close tolerates blanks, matching
// real-world same-day partial reporting.
func validateFloatInputs(shop *domain.Shop, req dto.CloseOperationRequest) error {
	known := func(catalog []string, key string) bool {
		for _, k := range catalog {
			if k == key {
				return true
			}
		}
		return false
	}

	for key := range req.ElectronicFloats {
		if !known(shop.ElectronicProviders, key) {
			return fmt.Errorf("%w: unknown electronic provider %q", apperrors.ErrValidation, key)
		}
	}
	for key := range req.CreditFloats {
		if !known(shop.CreditNetworks, key) {
			return fmt.Errorf("%w: unknown credit network %q", apperrors.ErrValidation, key)
		}
	}

	if req.Period != domain.PeriodEvening {
		return nil
	}

	for _, key := range shop.ElectronicProviders {
		line, ok := req.ElectronicFloats[key]
		if !ok || line.Closing == nil {
			return fmt.Errorf("%w: evening close requires a closing balance for electronic provider %q", apperrors.ErrValidation, key)
		}
	}
	for _, key := range shop.CreditNetworks {
		line, ok := req.CreditFloats[key]
		if !ok || line.Closing == nil {
			return fmt.Errorf("%w: evening close requires a closing balance for credit network %q", apperrors.ErrValidation, key)
		}
	}
	return nil
}

// lookupRate fetches the exact-date rate for the closing day. A missing rate
// is an advisory, not an error, and only worth raising when the submission
// actually contains local-currency entries.
func (s *reconciliationService) lookupRate(ctx context.Context, day time.Time, req dto.CloseOperationRequest) (*decimal.Decimal, *domain.Advisory, error) {
	rate, err := s.rateSvc.GetRateByDate(ctx, day)
	if err == nil {
		value := rate.RateLocalPerUSD
		return &value, nil, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}

	if hasForeignEntries(req) {
		return nil, &domain.Advisory{
			Code:    domain.AdvisoryRateMissing,
			Message: "no exchange rate registered for this date; foreign-currency entries are excluded from the grand total",
		}, nil
	}
	return nil, nil, nil
}

func hasForeignEntries(req dto.CloseOperationRequest) bool {
	if req.CashClosingForeign != nil && !req.CashClosingForeign.IsZero() {
		return true
	}
	for _, line := range req.ElectronicFloats {
		if line.ClosingForeign != nil && !line.ClosingForeign.IsZero() {
			return true
		}
	}
	return false
}

// buildFloatLines materializes the stored float map for every catalog entry.
// Blank closings (allowed for a morning close) persist as zero. Credit
// networks carry no foreign-currency figure.
func buildFloatLines(catalog []string, inputs map[string]dto.FloatLineInput, allowForeign bool) map[string]domain.FloatLine {
	lines := make(map[string]domain.FloatLine, len(catalog))
	for _, key := range catalog {
		input := inputs[key]
		line := domain.FloatLine{
			Opening:       input.Opening,
			Replenishment: input.Replenishment,
		}
		if input.Closing != nil {
			line.Closing = *input.Closing
		}
		if allowForeign {
			line.ClosingForeign = input.ClosingForeign
		}
		lines[key] = line
	}
	return lines
}
