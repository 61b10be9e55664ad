package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is one of the two daily reconciliation windows of a shop register.
type Period string

const (
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
)

// Valid reports whether p is one of the two known periods.
func (p Period) Valid() bool {
	return p == PeriodMorning || p == PeriodEvening
}

// FloatLine is the running balance of one electronic-money provider or one
// credit-airtime network over a period. Balances are in the reporting
// currency; ClosingForeign, when present, is an additional local-currency
// closing amount (credit networks never carry one).
//
// Closing has no enforced bound relative to the effective opening: shortfalls
// and surpluses are both legitimate outcomes of a day's trading.
type FloatLine struct {
	Opening        decimal.Decimal  `json:"openingBalance"`
	Replenishment  decimal.Decimal  `json:"replenishment"`
	Closing        decimal.Decimal  `json:"closingBalance"`
	ClosingForeign *decimal.Decimal `json:"closingForeign,omitempty"`
}

// EffectiveOpening is the opening balance plus any replenishment received
// during the period.
func (f FloatLine) EffectiveOpening() decimal.Decimal {
	return f.Opening.Add(f.Replenishment)
}

// Operation is the immutable closing snapshot of one shop, one calendar date,
// one period. Exactly one may exist per (shop, date, period); it is never
// updated or deleted after creation.
type Operation struct {
	OperationID        string               `json:"operationID"`
	ShopID             string               `json:"shopID"`
	OpDate             time.Time            `json:"date"` // calendar day, time part zero
	Period             Period               `json:"period"`
	CashClosing        decimal.Decimal      `json:"cashOnHandLocal"`             // reporting currency
	CashClosingForeign *decimal.Decimal     `json:"cashOnHandForeign,omitempty"` // local currency
	ElectronicFloats   map[string]FloatLine `json:"electronicFloats"`
	CreditFloats       map[string]FloatLine `json:"creditFloats"`
	FxRate             *decimal.Decimal     `json:"fxRate,omitempty"` // local per USD applied at closing; nil when no rate existed
	GrandTotal         decimal.Decimal      `json:"grandTotal"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
}

// fxDivisionPlaces is the scale used when converting local-currency figures
// into the reporting currency.
const fxDivisionPlaces = 2

// ComputeGrandTotal derives the reporting-currency sum of all closing
// balances from the raw stored figures. When FxRate is nil the local-currency
// entries contribute nothing; the record stores the rate it was closed with,
// so recomputation always reproduces the persisted total.
func (o *Operation) ComputeGrandTotal() decimal.Decimal {
	total := o.CashClosing
	total = total.Add(convertForeign(o.CashClosingForeign, o.FxRate))
	for _, line := range o.ElectronicFloats {
		total = total.Add(line.Closing)
		total = total.Add(convertForeign(line.ClosingForeign, o.FxRate))
	}
	for _, line := range o.CreditFloats {
		total = total.Add(line.Closing)
	}
	return total
}

func convertForeign(amount, rate *decimal.Decimal) decimal.Decimal {
	if amount == nil || rate == nil || rate.IsZero() {
		return decimal.Zero
	}
	return amount.DivRound(*rate, fxDivisionPlaces)
}
