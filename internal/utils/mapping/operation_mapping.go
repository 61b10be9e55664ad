package mapping

import (
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/models"
)

// ToModelOperation converts a domain Operation to a model Operation
func ToModelOperation(d domain.Operation) models.Operation {
	return models.Operation{
		OperationID:        d.OperationID,
		ShopID:             d.ShopID,
		OpDate:             d.OpDate,
		Period:             string(d.Period),
		CashClosing:        d.CashClosing,
		CashClosingForeign: d.CashClosingForeign,
		ElectronicFloats:   toModelFloatLines(d.ElectronicFloats),
		CreditFloats:       toModelFloatLines(d.CreditFloats),
		FxRate:             d.FxRate,
		GrandTotal:         d.GrandTotal,
		CreatedAt:          d.CreatedAt,
		CreatedBy:          d.CreatedBy,
	}
}

// ToDomainOperation converts a model Operation to a domain Operation
func ToDomainOperation(m models.Operation) domain.Operation {
	return domain.Operation{
		OperationID:        m.OperationID,
		ShopID:             m.ShopID,
		OpDate:             m.OpDate,
		Period:             domain.Period(m.Period),
		CashClosing:        m.CashClosing,
		CashClosingForeign: m.CashClosingForeign,
		ElectronicFloats:   toDomainFloatLines(m.ElectronicFloats),
		CreditFloats:       toDomainFloatLines(m.CreditFloats),
		FxRate:             m.FxRate,
		GrandTotal:         m.GrandTotal,
		CreatedAt:          m.CreatedAt,
		CreatedBy:          m.CreatedBy,
	}
}

func toModelFloatLines(lines map[string]domain.FloatLine) map[string]models.FloatLine {
	if lines == nil {
		return nil
	}
	out := make(map[string]models.FloatLine, len(lines))
	for key, line := range lines {
		out[key] = models.FloatLine{
			Opening:        line.Opening,
			Replenishment:  line.Replenishment,
			Closing:        line.Closing,
			ClosingForeign: line.ClosingForeign,
		}
	}
	return out
}

func toDomainFloatLines(lines map[string]models.FloatLine) map[string]domain.FloatLine {
	if lines == nil {
		return nil
	}
	out := make(map[string]domain.FloatLine, len(lines))
	for key, line := range lines {
		out[key] = domain.FloatLine{
			Opening:        line.Opening,
			Replenishment:  line.Replenishment,
			Closing:        line.Closing,
			ClosingForeign: line.ClosingForeign,
		}
	}
	return out
}
