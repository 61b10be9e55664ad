package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// shopLoanService provides business logic for inter-shop loans.
type shopLoanService struct {
	loanRepo portsrepo.ShopLoanRepositoryFacade
	shopRepo portsrepo.ShopRepositoryFacade
}

// NewShopLoanService creates a new shop loan service.
func NewShopLoanService(loanRepo portsrepo.ShopLoanRepositoryFacade, shopRepo portsrepo.ShopRepositoryFacade) portssvc.ShopLoanSvcFacade {
	return &shopLoanService{loanRepo: loanRepo, shopRepo: shopRepo}
}

var _ portssvc.ShopLoanSvcFacade = (*shopLoanService)(nil)

// CreateLoan records cash lent from one shop to another.
func (s *shopLoanService) CreateLoan(ctx context.Context, req dto.CreateShopLoanRequest, creatorUserID string) (*domain.ShopLoan, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.LenderShopID == req.BorrowerShopID {
		return nil, fmt.Errorf("%w: lender and borrower shops must differ", apperrors.ErrValidation)
	}

	for _, shopID := range []string{req.LenderShopID, req.BorrowerShopID} {
		if _, err := s.shopRepo.FindShopByID(ctx, shopID); err != nil {
			return nil, fmt.Errorf("failed to load shop %s: %w", shopID, err)
		}
	}

	now := time.Now()
	loan := domain.ShopLoan{
		LoanID:         uuid.NewString(),
		LenderShopID:   req.LenderShopID,
		BorrowerShopID: req.BorrowerShopID,
		Amount:         req.Amount,
		CurrencyCode:   req.CurrencyCode,
		Note:           strings.TrimSpace(req.Note),
		Status:         domain.LoanOutstanding,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.loanRepo.CreateLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}
	return &loan, nil
}

// SettleLoan marks a loan repaid. Settlement is one-way; settling an already
// settled loan is a validation error.
func (s *shopLoanService) SettleLoan(ctx context.Context, loanID, settlerUserID string) (*domain.ShopLoan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	if loan.Status == domain.LoanSettled {
		return nil, fmt.Errorf("%w: loan %s is already settled", apperrors.ErrValidation, loanID)
	}

	now := time.Now()
	loan.Status = domain.LoanSettled
	loan.SettledAt = &now
	loan.SettledBy = settlerUserID
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = settlerUserID

	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		return nil, fmt.Errorf("failed to settle loan %s: %w", loanID, err)
	}
	return loan, nil
}

// ListLoans returns loans where the shop is lender or borrower.
func (s *shopLoanService) ListLoans(ctx context.Context, shopID string, limit, offset int) ([]domain.ShopLoan, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	loans, err := s.loanRepo.ListLoans(ctx, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}
