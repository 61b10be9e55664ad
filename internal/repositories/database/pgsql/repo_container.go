package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the repository provider backed by one pgx pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DailyRateRepo:       NewPgxDailyRateRepository(pool),
		OperationRepo:       NewPgxOperationRepository(pool),
		ShopRepo:            NewPgxShopRepository(pool),
		UserRepo:            NewPgxUserRepository(pool),
		CardTransactionRepo: NewPgxCardTransactionRepository(pool),
		ShopLoanRepo:        NewPgxShopLoanRepository(pool),
	}
}
