package repositories

import (
	"context"
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// OperationReader defines read operations for register closing records
type OperationReader interface {
	// FindOperation retrieves the closing record for a (shop, date, period)
	// triple, or ErrNotFound when the period is still open.
	FindOperation(ctx context.Context, shopID string, day time.Time, period domain.Period) (*domain.Operation, error)
	// FindOperationByID retrieves a closing record by its identifier.
	FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error)
	// ListOperations retrieves a shop's closing records, newest first.
	// Day and period filters are optional (zero time / empty period).
	ListOperations(ctx context.Context, shopID string, day time.Time, period domain.Period, limit, offset int) ([]domain.Operation, error)
}

// OperationWriter defines write operations for register closing records
type OperationWriter interface {
	// CreateOperation persists a closing record. It must fail with
	// ErrDuplicateClosing if a record for the same (shop, date, period)
	// already exists; the losing side of a race never overwrites.
	CreateOperation(ctx context.Context, op domain.Operation) error
}

// OperationRepositoryFacade combines all operation repository interfaces
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}
