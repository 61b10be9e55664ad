package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the settlement state of an inter-shop loan.
type LoanStatus string

const (
	LoanOutstanding LoanStatus = "outstanding"
	LoanSettled     LoanStatus = "settled"
)

// ShopLoan records cash lent from one shop's drawer to another's, settled as
// a whole when the borrowing shop returns the money.
type ShopLoan struct {
	LoanID         string          `json:"loanID"`
	LenderShopID   string          `json:"lenderShopID"`
	BorrowerShopID string          `json:"borrowerShopID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Note           string          `json:"note,omitempty"`
	Status         LoanStatus      `json:"status"`
	SettledAt      *time.Time      `json:"settledAt,omitempty"`
	SettledBy      string          `json:"settledBy,omitempty"`
	AuditFields
}
