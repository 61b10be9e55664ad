package repositories

import (
	"context"
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// DailyRateReader defines read operations for daily rate data
type DailyRateReader interface {
	// FindRateByDate retrieves the rate registered for exactly the given calendar day.
	FindRateByDate(ctx context.Context, day time.Time) (*domain.DailyRate, error)
	// FindLatestRateOnOrBefore retrieves the most recent rate dated on or before the given day.
	FindLatestRateOnOrBefore(ctx context.Context, day time.Time) (*domain.DailyRate, error)
	// FindRateByID retrieves a rate by its identifier.
	FindRateByID(ctx context.Context, rateID string) (*domain.DailyRate, error)
	// ListRates retrieves rates ordered by date descending.
	ListRates(ctx context.Context, limit, offset int) ([]domain.DailyRate, error)
}

// DailyRateWriter defines write operations for daily rate data
type DailyRateWriter interface {
	// CreateRate persists a new daily rate; a second rate for the same day
	// fails with a duplicate error.
	CreateRate(ctx context.Context, rate domain.DailyRate) error
	// UpdateRate corrects an existing rate in place.
	UpdateRate(ctx context.Context, rate domain.DailyRate) error
}

// DailyRateRepositoryFacade combines all daily rate repository interfaces
type DailyRateRepositoryFacade interface {
	DailyRateReader
	DailyRateWriter
}
