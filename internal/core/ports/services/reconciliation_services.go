package services

import (
	"context"
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// ReconciliationSvcFacade defines the daily register workflow: period state,
// opening carry-forward resolution, the closing action, and the read-only
// history surface.
type ReconciliationSvcFacade interface {
	// IsClosed reports whether a closing record already exists for the
	// (shop, date, period) triple.
	IsClosed(ctx context.Context, shopID string, day time.Time, period domain.Period) (bool, error)

	// ResolveOpening computes the opening figures for a period from the
	// correct predecessor record.
	ResolveOpening(ctx context.Context, shopID string, day time.Time, period domain.Period) (*domain.CarryForward, error)

	// CloseOperation validates and persists the immutable closing record for
	// a period, transitioning it Open -> Closed. Advisories returned alongside
	// a successful close are non-blocking (e.g. missing rate for the day).
	CloseOperation(ctx context.Context, shopID string, req dto.CloseOperationRequest, operatorUserID string) (*domain.Operation, []domain.Advisory, error)

	GetOperation(ctx context.Context, shopID, operationID string) (*domain.Operation, error)
	ListOperations(ctx context.Context, shopID string, day time.Time, period domain.Period, limit, offset int) ([]domain.Operation, error)
}
