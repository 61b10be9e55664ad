package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	"github.com/boutikapp/caisse-backend/internal/models"
	"github.com/boutikapp/caisse-backend/internal/utils/mapping"
)

// PgxShopRepository implements the shop repository using pgxpool.
type PgxShopRepository struct {
	BaseRepository
}

// NewPgxShopRepository creates a new PgxShopRepository.
func NewPgxShopRepository(db *pgxpool.Pool) *PgxShopRepository {
	return &PgxShopRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ShopRepositoryFacade = (*PgxShopRepository)(nil)

const shopColumns = `shop_id, name, electronic_providers, credit_networks, created_at, created_by, last_updated_at, last_updated_by`

// CreateShop inserts a new shop.
func (r *PgxShopRepository) CreateShop(ctx context.Context, shop domain.Shop) error {
	modelShop := mapping.ToModelShop(shop)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO shops (`+shopColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		modelShop.ShopID, modelShop.Name, modelShop.ElectronicProviders, modelShop.CreditNetworks,
		modelShop.CreatedAt, modelShop.CreatedBy, modelShop.LastUpdatedAt, modelShop.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "a shop named "+shop.Name+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert shop", err)
	}
	return nil
}

// FindShopByID retrieves a shop by its identifier.
func (r *PgxShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	var modelShop models.Shop
	err := r.Pool.QueryRow(ctx, `SELECT `+shopColumns+` FROM shops WHERE shop_id = $1`, shopID).Scan(
		&modelShop.ShopID, &modelShop.Name, &modelShop.ElectronicProviders, &modelShop.CreditNetworks,
		&modelShop.CreatedAt, &modelShop.CreatedBy, &modelShop.LastUpdatedAt, &modelShop.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("shop " + shopID + " not found")
		}
		return nil, apperrors.NewTransientError("failed to query shop", err)
	}
	domainShop := mapping.ToDomainShop(modelShop)
	return &domainShop, nil
}

// ListShops retrieves shops ordered by name.
func (r *PgxShopRepository) ListShops(ctx context.Context, limit, offset int) ([]domain.Shop, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+shopColumns+` FROM shops
		ORDER BY name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list shops", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var modelShop models.Shop
		err := rows.Scan(
			&modelShop.ShopID, &modelShop.Name, &modelShop.ElectronicProviders, &modelShop.CreditNetworks,
			&modelShop.CreatedAt, &modelShop.CreatedBy, &modelShop.LastUpdatedAt, &modelShop.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewTransientError("failed to scan shop", err)
		}
		shops = append(shops, mapping.ToDomainShop(modelShop))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating shops", err)
	}
	return shops, nil
}
