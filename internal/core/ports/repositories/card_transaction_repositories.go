package repositories

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// CardTransactionReader defines read operations for card transactions
type CardTransactionReader interface {
	ListCardTransactions(ctx context.Context, shopID string, limit, offset int) ([]domain.CardTransaction, error)
}

// CardTransactionWriter defines write operations for card transactions
type CardTransactionWriter interface {
	CreateCardTransaction(ctx context.Context, txn domain.CardTransaction) error
}

// CardTransactionRepositoryFacade combines all card transaction repository interfaces
type CardTransactionRepositoryFacade interface {
	CardTransactionReader
	CardTransactionWriter
}
