package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRate is the daily_rates row: one local-per-USD rate per calendar day.
type DailyRate struct {
	RateID          string          `json:"rateID"`
	RateDate        time.Time       `json:"rateDate"`
	RateLocalPerUSD decimal.Decimal `json:"rateLocalPerUsd"`
	AuditFields
}
