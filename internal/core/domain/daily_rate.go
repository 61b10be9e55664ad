package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRate is the exchange rate for one calendar day, expressed as local
// currency (CDF) per unit of reporting currency (USD). At most one rate
// exists per day; corrections edit the existing row in place.
type DailyRate struct {
	RateID          string          `json:"rateID"`
	RateDate        time.Time       `json:"rateDate"` // calendar day, time part zero
	RateLocalPerUSD decimal.Decimal `json:"rateLocalPerUsd"`
	AuditFields
}
