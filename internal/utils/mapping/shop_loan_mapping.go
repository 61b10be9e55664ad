package mapping

import (
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/models"
)

// ToModelShopLoan converts a domain ShopLoan to a model ShopLoan
func ToModelShopLoan(d domain.ShopLoan) models.ShopLoan {
	m := models.ShopLoan{
		LoanID:         d.LoanID,
		LenderShopID:   d.LenderShopID,
		BorrowerShopID: d.BorrowerShopID,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		Note:           d.Note,
		Status:         string(d.Status),
		SettledAt:      d.SettledAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.SettledBy != "" {
		settledBy := d.SettledBy
		m.SettledBy = &settledBy
	}
	return m
}

// ToDomainShopLoan converts a model ShopLoan to a domain ShopLoan
func ToDomainShopLoan(m models.ShopLoan) domain.ShopLoan {
	d := domain.ShopLoan{
		LoanID:         m.LoanID,
		LenderShopID:   m.LenderShopID,
		BorrowerShopID: m.BorrowerShopID,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		Note:           m.Note,
		Status:         domain.LoanStatus(m.Status),
		SettledAt:      m.SettledAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.SettledBy != nil {
		d.SettledBy = *m.SettledBy
	}
	return d
}
