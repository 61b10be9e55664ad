package services

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// ShopLoanSvcFacade defines inter-shop loan bookkeeping.
type ShopLoanSvcFacade interface {
	CreateLoan(ctx context.Context, req dto.CreateShopLoanRequest, creatorUserID string) (*domain.ShopLoan, error)
	SettleLoan(ctx context.Context, loanID, settlerUserID string) (*domain.ShopLoan, error)
	ListLoans(ctx context.Context, shopID string, limit, offset int) ([]domain.ShopLoan, error)
}
