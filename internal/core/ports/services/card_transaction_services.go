package services

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// CardTransactionSvcFacade defines card deposit/withdrawal bookkeeping.
type CardTransactionSvcFacade interface {
	CreateCardTransaction(ctx context.Context, shopID string, req dto.CreateCardTransactionRequest, creatorUserID string) (*domain.CardTransaction, error)
	ListCardTransactions(ctx context.Context, shopID string, limit, offset int) ([]domain.CardTransaction, error)
}
