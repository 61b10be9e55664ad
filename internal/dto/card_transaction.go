package dto

import (
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCardTransactionRequest defines the payload for recording a card
// deposit or withdrawal at the counter.
type CreateCardTransactionRequest struct {
	Type         string          `json:"type" binding:"required,oneof=deposit withdrawal"`
	HolderName   string          `json:"holderName" binding:"required"`
	Reference    string          `json:"reference"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,oneof=USD CDF"`
}

// CardTransactionResponse is the API representation of a card transaction.
type CardTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	ShopID        string          `json:"shopID"`
	Type          string          `json:"type"`
	HolderName    string          `json:"holderName"`
	Reference     string          `json:"reference,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToCardTransactionResponse converts a domain.CardTransaction to a DTO
func ToCardTransactionResponse(txn *domain.CardTransaction) CardTransactionResponse {
	return CardTransactionResponse{
		TransactionID: txn.TransactionID,
		ShopID:        txn.ShopID,
		Type:          string(txn.Type),
		HolderName:    txn.HolderName,
		Reference:     txn.Reference,
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToListCardTransactionResponse converts a slice of domain card transactions to DTOs.
func ToListCardTransactionResponse(txns []domain.CardTransaction) []CardTransactionResponse {
	responses := make([]CardTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToCardTransactionResponse(&txns[i])
	}
	return responses
}
