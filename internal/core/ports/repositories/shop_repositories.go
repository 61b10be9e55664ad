package repositories

import (
	"context"

	"github.com/boutikapp/caisse-backend/internal/core/domain"
)

// ShopReader defines read operations for shop data
type ShopReader interface {
	FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error)
	ListShops(ctx context.Context, limit, offset int) ([]domain.Shop, error)
}

// ShopWriter defines write operations for shop data
type ShopWriter interface {
	CreateShop(ctx context.Context, shop domain.Shop) error
}

// ShopRepositoryFacade combines all shop repository interfaces
type ShopRepositoryFacade interface {
	ShopReader
	ShopWriter
}
