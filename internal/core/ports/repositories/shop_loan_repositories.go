package repositories

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// ShopLoanReader defines read operations for inter-shop loans
type ShopLoanReader interface {
	FindLoanByID(ctx context.Context, loanID string) (*domain.ShopLoan, error)
	// ListLoans retrieves loans where the shop is lender or borrower; an
	// empty shopID lists all loans.
	ListLoans(ctx context.Context, shopID string, limit, offset int) ([]domain.ShopLoan, error)
}

// ShopLoanWriter defines write operations for inter-shop loans
type ShopLoanWriter interface {
	CreateLoan(ctx context.Context, loan domain.ShopLoan) error
	UpdateLoan(ctx context.Context, loan domain.ShopLoan) error
}

// ShopLoanRepositoryFacade combines all loan repository interfaces
type ShopLoanRepositoryFacade interface {
	ShopLoanReader
	ShopLoanWriter
}
