package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// dailyRateService provides business logic for the daily exchange rate.
type dailyRateService struct {
	rateRepo portsrepo.DailyRateRepositoryFacade
}

// NewDailyRateService creates a new daily rate service.
func NewDailyRateService(rateRepo portsrepo.DailyRateRepositoryFacade) portssvc.DailyRateSvcFacade {
	return &dailyRateService{rateRepo: rateRepo}
}

var _ portssvc.DailyRateSvcFacade = (*dailyRateService)(nil)

// CreateRate registers the rate for one calendar day. A second rate for the
// same day is rejected as a duplicate; corrections go through UpdateRate.
func (s *dailyRateService) CreateRate(ctx context.Context, req dto.CreateDailyRateRequest, creatorUserID string) (*domain.DailyRate, error) {
	if req.RateLocalPerUSD.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	day, err := ParseDay(req.RateDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rate date: %s", apperrors.ErrValidation, req.RateDate)
	}

	now := time.Now()
	rate := domain.DailyRate{
		RateID:          uuid.NewString(),
		RateDate:        day,
		RateLocalPerUSD: req.RateLocalPerUSD,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.CreateRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create daily rate: %w", err)
	}

	return &rate, nil
}

// UpdateRate corrects an existing rate in place. There is no recency window:
// any day's rate may be corrected.
func (s *dailyRateService) UpdateRate(ctx context.Context, rateID string, req dto.UpdateDailyRateRequest, updaterUserID string) (*domain.DailyRate, error) {
	if req.RateLocalPerUSD.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find daily rate %s: %w", rateID, err)
	}

	rate.RateLocalPerUSD = req.RateLocalPerUSD
	rate.LastUpdatedAt = time.Now()
	rate.LastUpdatedBy = updaterUserID

	if err := s.rateRepo.UpdateRate(ctx, *rate); err != nil {
		return nil, fmt.Errorf("failed to update daily rate %s: %w", rateID, err)
	}

	return rate, nil
}

// GetRateByDate is the exact-date lookup used by every conversion.
func (s *dailyRateService) GetRateByDate(ctx context.Context, day time.Time) (*domain.DailyRate, error) {
	rate, err := s.rateRepo.FindRateByDate(ctx, NormalizeDay(day))
	if err != nil {
		return nil, fmt.Errorf("failed to get daily rate: %w", err)
	}
	return rate, nil
}

// GetLatestRateOnOrBefore is the fallback lookup: the most recent rate dated
// on or before the given day. The caller compares the returned rate's date to
// decide whether to flag staleness.
func (s *dailyRateService) GetLatestRateOnOrBefore(ctx context.Context, day time.Time) (*domain.DailyRate, error) {
	rate, err := s.rateRepo.FindLatestRateOnOrBefore(ctx, NormalizeDay(day))
	if err != nil {
		return nil, fmt.Errorf("failed to get latest daily rate: %w", err)
	}
	return rate, nil
}

// ListRates returns rate history, newest first.
func (s *dailyRateService) ListRates(ctx context.Context, limit, offset int) ([]domain.DailyRate, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rates, err := s.rateRepo.ListRates(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily rates: %w", err)
	}
	return rates, nil
}

// NormalizeDay truncates a timestamp to its UTC calendar day.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a "2006-01-02" calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
