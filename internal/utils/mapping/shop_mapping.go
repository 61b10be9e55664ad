package mapping

import (
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/models"
)

// ToModelShop converts a domain Shop to a model Shop
func ToModelShop(d domain.Shop) models.Shop {
	return models.Shop{
		ShopID:              d.ShopID,
		Name:                d.Name,
		ElectronicProviders: d.ElectronicProviders,
		CreditNetworks:      d.CreditNetworks,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShop converts a model Shop to a domain Shop
func ToDomainShop(m models.Shop) domain.Shop {
	return domain.Shop{
		ShopID:              m.ShopID,
		Name:                m.Name,
		ElectronicProviders: m.ElectronicProviders,
		CreditNetworks:      m.CreditNetworks,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
