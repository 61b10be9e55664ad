package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FloatLine is one float entry inside the JSONB float maps of an operation row.
type FloatLine struct {
	Opening        decimal.Decimal  `json:"openingBalance"`
	Replenishment  decimal.Decimal  `json:"replenishment"`
	Closing        decimal.Decimal  `json:"closingBalance"`
	ClosingForeign *decimal.Decimal `json:"closingForeign,omitempty"`
}

// Operation is the operations row. The float maps are stored as JSONB; the
// (shop_id, op_date, period) triple carries a unique index.
type Operation struct {
	OperationID        string               `json:"operationID"`
	ShopID             string               `json:"shopID"`
	OpDate             time.Time            `json:"opDate"`
	Period             string               `json:"period"`
	CashClosing        decimal.Decimal      `json:"cashClosing"`
	CashClosingForeign *decimal.Decimal     `json:"cashClosingForeign,omitempty"`
	ElectronicFloats   map[string]FloatLine `json:"electronicFloats"`
	CreditFloats       map[string]FloatLine `json:"creditFloats"`
	FxRate             *decimal.Decimal     `json:"fxRate,omitempty"`
	GrandTotal         decimal.Decimal      `json:"grandTotal"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
}
