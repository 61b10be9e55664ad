package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// buildMorningCarryForward computes a morning period's opening figures from
// the previous evening's closing record. A new day starts with no pending
// replenishment, so every carried line resets replenishment to zero.
//
// predecessor may be nil (shop opening for the first time, or data missing);
// the result then holds zero openings and a single no-predecessor advisory.
// A predecessor that lacks a figure for a catalog entry yields a zero opening
// for that entry plus one advisory per missing figure.
func buildMorningCarryForward(shop *domain.Shop, predecessor *domain.Operation) *domain.CarryForward {
	cf := &domain.CarryForward{
		ShopID:             shop.ShopID,
		Period:             domain.PeriodMorning,
		ElectronicOpenings: make(map[string]domain.FloatLine, len(shop.ElectronicProviders)),
		CreditOpenings:     make(map[string]domain.FloatLine, len(shop.CreditNetworks)),
	}

	if predecessor == nil {
		for _, key := range shop.ElectronicProviders {
			cf.ElectronicOpenings[key] = domain.FloatLine{}
		}
		for _, key := range shop.CreditNetworks {
			cf.CreditOpenings[key] = domain.FloatLine{}
		}
		cf.Advisories = append(cf.Advisories, domain.Advisory{
			Code:    domain.AdvisoryNoPredecessor,
			Message: "no previous evening closing found; opening figures are empty and must be entered and verified",
		})
		return cf
	}

	cf.PredecessorID = predecessor.OperationID
	cf.CashOpening = predecessor.CashClosing
	cf.ElectronicOpenings, cf.Advisories = carryLines(shop.ElectronicProviders, predecessor.ElectronicFloats, "electronicFloats", cf.Advisories)
	cf.CreditOpenings, cf.Advisories = carryLines(shop.CreditNetworks, predecessor.CreditFloats, "creditFloats", cf.Advisories)
	return cf
}

// buildEveningCarryForward returns the same day's morning closings as a
// read-only reference. The evening's own closing entry starts blank: each
// period's closing must be independently counted, so nothing is pre-filled.
// A missing morning record is a normal day and raises no advisory.
func buildEveningCarryForward(shop *domain.Shop, morning *domain.Operation) *domain.CarryForward {
	cf := &domain.CarryForward{
		ShopID:             shop.ShopID,
		Period:             domain.PeriodEvening,
		ReferenceOnly:      true,
		ElectronicOpenings: make(map[string]domain.FloatLine, len(shop.ElectronicProviders)),
		CreditOpenings:     make(map[string]domain.FloatLine, len(shop.CreditNetworks)),
	}

	for _, key := range shop.ElectronicProviders {
		cf.ElectronicOpenings[key] = domain.FloatLine{}
	}
	for _, key := range shop.CreditNetworks {
		cf.CreditOpenings[key] = domain.FloatLine{}
	}

	if morning == nil {
		return cf
	}

	cf.PredecessorID = morning.OperationID
	cf.CashOpening = morning.CashClosing
	for key, line := range morning.ElectronicFloats {
		cf.ElectronicOpenings[key] = domain.FloatLine{Opening: line.Closing}
	}
	for key, line := range morning.CreditFloats {
		cf.CreditOpenings[key] = domain.FloatLine{Opening: line.Closing}
	}
	return cf
}

// carryLines copies the closing balance of each catalog entry into a fresh
// opening line. Entries absent from the predecessor default to zero and raise
// one advisory each.
func carryLines(catalog []string, closed map[string]domain.FloatLine, fieldPrefix string, advisories []domain.Advisory) (map[string]domain.FloatLine, []domain.Advisory) {
	openings := make(map[string]domain.FloatLine, len(catalog))
	for _, key := range catalog {
		line, ok := closed[key]
		if !ok {
			openings[key] = domain.FloatLine{}
			advisories = append(advisories, domain.Advisory{
				Code:    domain.AdvisoryMissingFigure,
				Field:   fmt.Sprintf("%s.%s", fieldPrefix, key),
				Message: fmt.Sprintf("previous closing has no figure for %q; opening defaults to zero and must be verified", key),
			})
			continue
		}
		openings[key] = domain.FloatLine{
			Opening:       line.Closing,
			Replenishment: decimal.Zero,
		}
	}
	return openings, advisories
}
