package dto

import (
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FloatLineInput is one float entry of a closing submission. Closing is a
// pointer so a blank field can be told apart from an explicit zero; blank
// closings are rejected for evening periods.
type FloatLineInput struct {
	Opening        decimal.Decimal  `json:"openingBalance"`
	Replenishment  decimal.Decimal  `json:"replenishment"`
	Closing        *decimal.Decimal `json:"closingBalance"`
	ClosingForeign *decimal.Decimal `json:"closingForeign"`
}

// CloseOperationRequest is the closing submission for one shop, date and
// period. Dates are calendar days in "2006-01-02" form.
type CloseOperationRequest struct {
	OpDate             string                    `json:"date" binding:"required,datetime=2006-01-02"`
	Period             domain.Period             `json:"period" binding:"required,oneof=morning evening"`
	CashClosing        decimal.Decimal           `json:"cashOnHandLocal"`
	CashClosingForeign *decimal.Decimal          `json:"cashOnHandForeign"`
	ElectronicFloats   map[string]FloatLineInput `json:"electronicFloats"`
	CreditFloats       map[string]FloatLineInput `json:"creditFloats"`
}

// OperationResponse is the API representation of a persisted closing record.
type OperationResponse struct {
	OperationID        string                      `json:"operationID"`
	ShopID             string                      `json:"shopID"`
	Date               string                      `json:"date"`
	Period             domain.Period               `json:"period"`
	CashOnHandLocal    decimal.Decimal             `json:"cashOnHandLocal"`
	CashOnHandForeign  *decimal.Decimal            `json:"cashOnHandForeign,omitempty"`
	ElectronicFloats   map[string]domain.FloatLine `json:"electronicFloats"`
	CreditFloats       map[string]domain.FloatLine `json:"creditFloats"`
	FxRate             *decimal.Decimal            `json:"fxRate,omitempty"`
	GrandTotal         decimal.Decimal             `json:"grandTotal"`
	CreatedAt          time.Time                   `json:"createdAt"`
	CreatedBy          string                      `json:"createdBy"`
}

// CloseOperationResponse wraps the persisted record plus any non-blocking
// advisories raised while closing (e.g. a missing rate for the day).
type CloseOperationResponse struct {
	Operation  OperationResponse `json:"operation"`
	Advisories []domain.Advisory `json:"advisories,omitempty"`
}

// PeriodStateResponse reports whether a period is already closed.
type PeriodStateResponse struct {
	ShopID string        `json:"shopID"`
	Date   string        `json:"date"`
	Period domain.Period `json:"period"`
	Closed bool          `json:"closed"`
}

// ToOperationResponse converts a domain.Operation to an OperationResponse DTO
func ToOperationResponse(op *domain.Operation) OperationResponse {
	return OperationResponse{
		OperationID:       op.OperationID,
		ShopID:            op.ShopID,
		Date:              op.OpDate.Format("2006-01-02"),
		Period:            op.Period,
		CashOnHandLocal:   op.CashClosing,
		CashOnHandForeign: op.CashClosingForeign,
		ElectronicFloats:  op.ElectronicFloats,
		CreditFloats:      op.CreditFloats,
		FxRate:            op.FxRate,
		GrandTotal:        op.GrandTotal,
		CreatedAt:         op.CreatedAt,
		CreatedBy:         op.CreatedBy,
	}
}

// ToListOperationResponse converts a slice of domain operations to DTOs.
func ToListOperationResponse(ops []domain.Operation) []OperationResponse {
	responses := make([]OperationResponse, len(ops))
	for i := range ops {
		responses[i] = ToOperationResponse(&ops[i])
	}
	return responses
}
