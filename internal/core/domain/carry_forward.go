package domain

import "github.com/shopspring/decimal"

// Advisory is a non-blocking warning surfaced to the operator. Advisories
// never prevent the workflow from proceeding.
type Advisory struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Advisory codes.
const (
	AdvisoryNoPredecessor = "no_predecessor"
	AdvisoryMissingFigure = "missing_figure"
	AdvisoryRateMissing   = "rate_missing"
	AdvisoryStaleRate     = "stale_rate"
)

// CarryForward is the declarative result of resolving a period's opening
// figures from its predecessor. It replaces per-field UI lock flags with one
// value: the openings to show, whether they are editable, and any advisories
// raised while resolving them.
//
// For a morning period the openings come from the previous evening's closings
// with replenishment reset to zero, and remain editable. For an evening
// period the same day's morning closings are returned as read-only reference
// (ReferenceOnly true) and the evening's own closing entry starts blank.
type CarryForward struct {
	ShopID             string               `json:"shopID"`
	Period             Period               `json:"period"`
	PredecessorID      string               `json:"predecessorID,omitempty"`
	ReferenceOnly      bool                 `json:"referenceOnly"`
	CashOpening        decimal.Decimal      `json:"cashOpening"`
	ElectronicOpenings map[string]FloatLine `json:"electronicOpenings"`
	CreditOpenings     map[string]FloatLine `json:"creditOpenings"`
	Advisories         []Advisory           `json:"advisories"`
}
