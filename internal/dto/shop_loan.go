package dto

import (
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShopLoanRequest defines the payload for recording an inter-shop loan.
type CreateShopLoanRequest struct {
	LenderShopID   string          `json:"lenderShopID" binding:"required"`
	BorrowerShopID string          `json:"borrowerShopID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,oneof=USD CDF"`
	Note           string          `json:"note"`
}

// ShopLoanResponse is the API representation of an inter-shop loan.
type ShopLoanResponse struct {
	LoanID         string          `json:"loanID"`
	LenderShopID   string          `json:"lenderShopID"`
	BorrowerShopID string          `json:"borrowerShopID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Note           string          `json:"note,omitempty"`
	Status         string          `json:"status"`
	SettledAt      *time.Time      `json:"settledAt,omitempty"`
	SettledBy      string          `json:"settledBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToShopLoanResponse converts a domain.ShopLoan to a ShopLoanResponse DTO
func ToShopLoanResponse(loan *domain.ShopLoan) ShopLoanResponse {
	return ShopLoanResponse{
		LoanID:         loan.LoanID,
		LenderShopID:   loan.LenderShopID,
		BorrowerShopID: loan.BorrowerShopID,
		Amount:         loan.Amount,
		CurrencyCode:   loan.CurrencyCode,
		Note:           loan.Note,
		Status:         string(loan.Status),
		SettledAt:      loan.SettledAt,
		SettledBy:      loan.SettledBy,
		CreatedAt:      loan.CreatedAt,
		CreatedBy:      loan.CreatedBy,
	}
}

// ToListShopLoanResponse converts a slice of domain loans to DTOs.
func ToListShopLoanResponse(loans []domain.ShopLoan) []ShopLoanResponse {
	responses := make([]ShopLoanResponse, len(loans))
	for i := range loans {
		responses[i] = ToShopLoanResponse(&loans[i])
	}
	return responses
}
