package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopLoan is the shop_loans row.
type ShopLoan struct {
	LoanID         string          `json:"loanID"`
	LenderShopID   string          `json:"lenderShopID"`
	BorrowerShopID string          `json:"borrowerShopID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Note           string          `json:"note"`
	Status         string          `json:"status"`
	SettledAt      *time.Time      `json:"settledAt,omitempty"`
	SettledBy      *string         `json:"settledBy,omitempty"`
	AuditFields
}
