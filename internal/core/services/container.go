package services

import (
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/platform/config"
)

// NewServiceContainer wires all application services from the repository
// provider and configuration.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	dailyRateSvc := NewDailyRateService(repos.DailyRateRepo)

	return &portssvc.ServiceContainer{
		DailyRate:       dailyRateSvc,
		Reconciliation:  NewReconciliationService(repos.OperationRepo, repos.ShopRepo, dailyRateSvc),
		Shop:            NewShopService(repos.ShopRepo),
		User:            NewUserService(repos.UserRepo, repos.ShopRepo),
		Auth:            NewAuthService(repos.UserRepo, repos.ShopRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		CardTransaction: NewCardTransactionService(repos.CardTransactionRepo, repos.ShopRepo),
		ShopLoan:        NewShopLoanService(repos.ShopLoanRepo, repos.ShopRepo),
	}
}
