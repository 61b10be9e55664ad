package dto

import (
	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// CreateShopRequest defines the payload for registering a new shop.
type CreateShopRequest struct {
	Name                string   `json:"name" binding:"required"`
	ElectronicProviders []string `json:"electronicProviders"`
	CreditNetworks      []string `json:"creditNetworks"`
}

// ShopResponse is the API representation of a shop.
type ShopResponse struct {
	ShopID              string   `json:"shopID"`
	Name                string   `json:"name"`
	ElectronicProviders []string `json:"electronicProviders"`
	CreditNetworks      []string `json:"creditNetworks"`
}

// ToShopResponse converts a domain.Shop to a ShopResponse DTO
func ToShopResponse(shop *domain.Shop) ShopResponse {
	return ShopResponse{
		ShopID:              shop.ShopID,
		Name:                shop.Name,
		ElectronicProviders: shop.ElectronicProviders,
		CreditNetworks:      shop.CreditNetworks,
	}
}

// ToListShopResponse converts a slice of domain shops to DTOs.
func ToListShopResponse(shops []domain.Shop) []ShopResponse {
	responses := make([]ShopResponse, len(shops))
	for i := range shops {
		responses[i] = ToShopResponse(&shops[i])
	}
	return responses
}
