package mapping

import (
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/models"
)

// ToModelDailyRate converts a domain DailyRate to a model DailyRate
func ToModelDailyRate(d domain.DailyRate) models.DailyRate {
	return models.DailyRate{
		RateID:          d.RateID,
		RateDate:        d.RateDate,
		RateLocalPerUSD: d.RateLocalPerUSD,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyRate converts a model DailyRate to a domain DailyRate
func ToDomainDailyRate(m models.DailyRate) domain.DailyRate {
	return domain.DailyRate{
		RateID:          m.RateID,
		RateDate:        m.RateDate,
		RateLocalPerUSD: m.RateLocalPerUSD,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
