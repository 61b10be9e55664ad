package services

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// ShopSvcFacade defines shop catalog management.
type ShopSvcFacade interface {
	CreateShop(ctx context.Context, req dto.CreateShopRequest, creatorUserID string) (*domain.Shop, error)
	GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error)
	ListShops(ctx context.Context, limit, offset int) ([]domain.Shop, error)
}
