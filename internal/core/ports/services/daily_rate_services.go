package services

import (
	"context"
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// DailyRateSvcFacade defines the daily rate provider: one local-per-USD rate
// per calendar day, with a most-recent fallback for days without a rate.
type DailyRateSvcFacade interface {
	CreateRate(ctx context.Context, req dto.CreateDailyRateRequest, creatorUserID string) (*domain.DailyRate, error)
	UpdateRate(ctx context.Context, rateID string, req dto.UpdateDailyRateRequest, updaterUserID string) (*domain.DailyRate, error)
	GetRateByDate(ctx context.Context, day time.Time) (*domain.DailyRate, error)
	GetLatestRateOnOrBefore(ctx context.Context, day time.Time) (*domain.DailyRate, error)
	ListRates(ctx context.Context, limit, offset int) ([]domain.DailyRate, error)
}
