package dto

import (
	"time"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDailyRateRequest defines the payload for registering the day's rate.
// RateDate is a calendar day in "2006-01-02" form.
type CreateDailyRateRequest struct {
	RateDate        string          `json:"rateDate" binding:"required,datetime=2006-01-02"`
	RateLocalPerUSD decimal.Decimal `json:"rateLocalPerUsd" binding:"required"`
}

// UpdateDailyRateRequest defines the payload for correcting an existing rate
// in place.
type UpdateDailyRateRequest struct {
	RateLocalPerUSD decimal.Decimal `json:"rateLocalPerUsd" binding:"required"`
}

// DailyRateResponse is the API representation of a daily rate.
type DailyRateResponse struct {
	RateID          string          `json:"rateID"`
	RateDate        string          `json:"rateDate"`
	RateLocalPerUSD decimal.Decimal `json:"rateLocalPerUsd"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// LatestRateResponse is the rate-fallback lookup result: the most recent rate
// on or before the requested date, with Stale set when the rate's own date is
// earlier than the one asked for.
type LatestRateResponse struct {
	DailyRateResponse
	RequestedDate string `json:"requestedDate"`
	Stale         bool   `json:"stale"`
}

// ToDailyRateResponse converts a domain.DailyRate to a DailyRateResponse DTO
func ToDailyRateResponse(rate *domain.DailyRate) DailyRateResponse {
	return DailyRateResponse{
		RateID:          rate.RateID,
		RateDate:        rate.RateDate.Format("2006-01-02"),
		RateLocalPerUSD: rate.RateLocalPerUSD,
		CreatedAt:       rate.CreatedAt,
		CreatedBy:       rate.CreatedBy,
		LastUpdatedAt:   rate.LastUpdatedAt,
		LastUpdatedBy:   rate.LastUpdatedBy,
	}
}

// ToListDailyRateResponse converts a slice of domain rates to response DTOs.
func ToListDailyRateResponse(rates []domain.DailyRate) []DailyRateResponse {
	responses := make([]DailyRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToDailyRateResponse(&rates[i])
	}
	return responses
}
