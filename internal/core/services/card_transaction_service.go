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

// cardTransactionService provides business logic for card deposits and
// withdrawals handled at a shop counter.
type cardTransactionService struct {
	txnRepo  portsrepo.CardTransactionRepositoryFacade
	shopRepo portsrepo.ShopRepositoryFacade
}

// NewCardTransactionService creates a new card transaction service.
func NewCardTransactionService(txnRepo portsrepo.CardTransactionRepositoryFacade, shopRepo portsrepo.ShopRepositoryFacade) portssvc.CardTransactionSvcFacade {
	return &cardTransactionService{txnRepo: txnRepo, shopRepo: shopRepo}
}

var _ portssvc.CardTransactionSvcFacade = (*cardTransactionService)(nil)

// CreateCardTransaction records one deposit or withdrawal.
func (s *cardTransactionService) CreateCardTransaction(ctx context.Context, shopID string, req dto.CreateCardTransactionRequest, creatorUserID string) (*domain.CardTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.shopRepo.FindShopByID(ctx, shopID); err != nil {
		return nil, fmt.Errorf("failed to load shop %s: %w", shopID, err)
	}

	now := time.Now()
	txn := domain.CardTransaction{
		TransactionID: uuid.NewString(),
		ShopID:        shopID,
		Type:          domain.CardTransactionType(req.Type),
		HolderName:    strings.TrimSpace(req.HolderName),
		Reference:     strings.TrimSpace(req.Reference),
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.CreateCardTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create card transaction: %w", err)
	}
	return &txn, nil
}

// ListCardTransactions returns a shop's card transactions, newest first.
func (s *cardTransactionService) ListCardTransactions(ctx context.Context, shopID string, limit, offset int) ([]domain.CardTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	txns, err := s.txnRepo.ListCardTransactions(ctx, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list card transactions: %w", err)
	}
	return txns, nil
}
