package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestPeriodValid(t *testing.T) {
	assert.True(t, domain.PeriodMorning.Valid())
	assert.True(t, domain.PeriodEvening.Valid())
	assert.False(t, domain.Period("").Valid())
	assert.False(t, domain.Period("afternoon").Valid())
}

func TestFloatLineEffectiveOpening(t *testing.T) {
	line := domain.FloatLine{
		Opening:       decimal.NewFromInt(100),
		Replenishment: decimal.NewFromInt(50),
	}
	assert.True(t, line.EffectiveOpening().Equal(decimal.NewFromInt(150)))
}

func TestComputeGrandTotal_CashOnly(t *testing.T) {
	op := domain.Operation{
		CashClosing: decimal.NewFromInt(250),
	}
	assert.True(t, op.ComputeGrandTotal().Equal(decimal.NewFromInt(250)))
}

func TestComputeGrandTotal_WithFloatsAndForeign(t *testing.T) {
	rate := decimal.NewFromInt(2700)
	op := domain.Operation{
		CashClosing:        decimal.NewFromInt(100),
		CashClosingForeign: decimalPtr(decimal.NewFromInt(2700)), // exactly 1.00 USD
		ElectronicFloats: map[string]domain.FloatLine{
			"mpesa": {
				Closing:        decimal.NewFromInt(40),
				ClosingForeign: decimalPtr(decimal.NewFromInt(5400)), // 2.00 USD
			},
			"airtel": {
				Closing: decimal.NewFromInt(10),
			},
		},
		CreditFloats: map[string]domain.FloatLine{
			"vodacom": {Closing: decimal.NewFromInt(25)},
		},
		FxRate: &rate,
	}

	// 100 + 1.00 + 40 + 2.00 + 10 + 25
	assert.True(t, op.ComputeGrandTotal().Equal(decimal.NewFromFloat(178.00)),
		"got %s", op.ComputeGrandTotal())
}

func TestComputeGrandTotal_ForeignRoundsToTwoPlaces(t *testing.T) {
	rate := decimal.NewFromInt(2700)
	op := domain.Operation{
		CashClosingForeign: decimalPtr(decimal.NewFromInt(1000)),
		FxRate:             &rate,
	}
	// 1000 / 2700 = 0.370370... -> 0.37
	assert.True(t, op.ComputeGrandTotal().Equal(decimal.NewFromFloat(0.37)),
		"got %s", op.ComputeGrandTotal())
}

func TestComputeGrandTotal_NilRateExcludesForeign(t *testing.T) {
	op := domain.Operation{
		CashClosing:        decimal.NewFromInt(75),
		CashClosingForeign: decimalPtr(decimal.NewFromInt(5000)),
		ElectronicFloats: map[string]domain.FloatLine{
			"orange": {
				Closing:        decimal.NewFromInt(20),
				ClosingForeign: decimalPtr(decimal.NewFromInt(9999)),
			},
		},
	}
	assert.True(t, op.ComputeGrandTotal().Equal(decimal.NewFromInt(95)))
}

func TestComputeGrandTotal_Idempotent(t *testing.T) {
	rate := decimal.NewFromFloat(2712.5)
	op := domain.Operation{
		CashClosing:        decimal.NewFromInt(300),
		CashClosingForeign: decimalPtr(decimal.NewFromInt(13562)),
		ElectronicFloats: map[string]domain.FloatLine{
			"mpesa": {Closing: decimal.NewFromFloat(12.34)},
		},
		FxRate: &rate,
	}

	first := op.ComputeGrandTotal()
	op.GrandTotal = first

	// Recomputing from the stored figures must reproduce the stored total.
	assert.True(t, op.ComputeGrandTotal().Equal(op.GrandTotal))
}
