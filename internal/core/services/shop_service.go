package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	portssvc "github.com/boutikapp/caisse-backend/internal/core/ports/services"
	"github.com/boutikapp/caisse-backend/internal/dto"
)

// shopService provides business logic for the shop catalog.
type shopService struct {
	shopRepo portsrepo.ShopRepositoryFacade
}

// NewShopService creates a new shop service.
func NewShopService(shopRepo portsrepo.ShopRepositoryFacade) portssvc.ShopSvcFacade {
	return &shopService{shopRepo: shopRepo}
}

var _ portssvc.ShopSvcFacade = (*shopService)(nil)

// CreateShop registers a new point of sale with its provider and network
// catalogs. Catalog keys are normalized to lower case and must be unique.
func (s *shopService) CreateShop(ctx context.Context, req dto.CreateShopRequest, creatorUserID string) (*domain.Shop, error) {
	providers, err := normalizeCatalog(req.ElectronicProviders)
	if err != nil {
		return nil, fmt.Errorf("%w: electronic providers: %v", apperrors.ErrValidation, err)
	}
	networks, err := normalizeCatalog(req.CreditNetworks)
	if err != nil {
		return nil, fmt.Errorf("%w: credit networks: %v", apperrors.ErrValidation, err)
	}

	now := time.Now()
	shop := domain.Shop{
		ShopID:              uuid.NewString(),
		Name:                strings.TrimSpace(req.Name),
		ElectronicProviders: providers,
		CreditNetworks:      networks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if shop.Name == "" {
		return nil, fmt.Errorf("%w: shop name is required", apperrors.ErrValidation)
	}

	if err := s.shopRepo.CreateShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	return &shop, nil
}

// GetShopByID retrieves one shop.
func (s *shopService) GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop %s: %w", shopID, err)
	}
	return shop, nil
}

// ListShops returns the shop catalog.
func (s *shopService) ListShops(ctx context.Context, limit, offset int) ([]domain.Shop, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	shops, err := s.shopRepo.ListShops(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

func normalizeCatalog(keys []string) ([]string, error) {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("empty key")
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true
		out = append(out, key)
	}
	return out, nil
}
