package models

import "github.com/shopspring/decimal"

// CardTransaction is the card_transactions row.
type CardTransaction struct {
	TransactionID string          `json:"transactionID"`
	ShopID        string          `json:"shopID"`
	Type          string          `json:"type"`
	HolderName    string          `json:"holderName"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	AuditFields
}
