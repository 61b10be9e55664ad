package domain

import "github.com/shopspring/decimal"

// CardTransactionType distinguishes money put onto a customer card from money
// taken off it.
type CardTransactionType string

const (
	CardDeposit    CardTransactionType = "deposit"
	CardWithdrawal CardTransactionType = "withdrawal"
)

// CardTransaction records one card deposit or withdrawal handled at a shop
// counter.
type CardTransaction struct {
	TransactionID string              `json:"transactionID"`
	ShopID        string              `json:"shopID"`
	Type          CardTransactionType `json:"type"`
	HolderName    string              `json:"holderName"`
	Reference     string              `json:"reference,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	CurrencyCode  string              `json:"currencyCode"` // USD or CDF
	AuditFields
}
