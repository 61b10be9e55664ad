package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	"github.com/boutikapp/caisse-backend/internal/models"
	"github.com/boutikapp/caisse-backend/internal/utils/mapping"
)

// PgxCardTransactionRepository implements the card transaction repository
// using pgxpool.
type PgxCardTransactionRepository struct {
	BaseRepository
}

// NewPgxCardTransactionRepository creates a new PgxCardTransactionRepository.
func NewPgxCardTransactionRepository(db *pgxpool.Pool) *PgxCardTransactionRepository {
	return &PgxCardTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CardTransactionRepositoryFacade = (*PgxCardTransactionRepository)(nil)

const cardTransactionColumns = `transaction_id, shop_id, type, holder_name, reference, amount, currency_code,
	created_at, created_by, last_updated_at, last_updated_by`

// CreateCardTransaction inserts a card deposit or withdrawal.
func (r *PgxCardTransactionRepository) CreateCardTransaction(ctx context.Context, txn domain.CardTransaction) error {
	modelTxn := mapping.ToModelCardTransaction(txn)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO card_transactions (`+cardTransactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		modelTxn.TransactionID, modelTxn.ShopID, modelTxn.Type, modelTxn.HolderName, modelTxn.Reference,
		modelTxn.Amount, modelTxn.CurrencyCode,
		modelTxn.CreatedAt, modelTxn.CreatedBy, modelTxn.LastUpdatedAt, modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewTransientError("failed to insert card transaction", err)
	}
	return nil
}

// ListCardTransactions retrieves a shop's card transactions, newest first.
func (r *PgxCardTransactionRepository) ListCardTransactions(ctx context.Context, shopID string, limit, offset int) ([]domain.CardTransaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+cardTransactionColumns+` FROM card_transactions
		WHERE shop_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, shopID, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list card transactions", err)
	}
	defer rows.Close()

	var txns []domain.CardTransaction
	for rows.Next() {
		var modelTxn models.CardTransaction
		err := rows.Scan(
			&modelTxn.TransactionID, &modelTxn.ShopID, &modelTxn.Type, &modelTxn.HolderName, &modelTxn.Reference,
			&modelTxn.Amount, &modelTxn.CurrencyCode,
			&modelTxn.CreatedAt, &modelTxn.CreatedBy, &modelTxn.LastUpdatedAt, &modelTxn.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewTransientError("failed to scan card transaction", err)
		}
		txns = append(txns, mapping.ToDomainCardTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating card transactions", err)
	}
	return txns, nil
}
