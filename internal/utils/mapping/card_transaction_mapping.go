package mapping

import (
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/models"
)

// ToModelCardTransaction converts a domain CardTransaction to a model CardTransaction
func ToModelCardTransaction(d domain.CardTransaction) models.CardTransaction {
	return models.CardTransaction{
		TransactionID: d.TransactionID,
		ShopID:        d.ShopID,
		Type:          string(d.Type),
		HolderName:    d.HolderName,
		Reference:     d.Reference,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCardTransaction converts a model CardTransaction to a domain CardTransaction
func ToDomainCardTransaction(m models.CardTransaction) domain.CardTransaction {
	return domain.CardTransaction{
		TransactionID: m.TransactionID,
		ShopID:        m.ShopID,
		Type:          domain.CardTransactionType(m.Type),
		HolderName:    m.HolderName,
		Reference:     m.Reference,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
