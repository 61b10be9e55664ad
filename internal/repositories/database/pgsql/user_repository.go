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

// PgxUserRepository implements the user repository using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new PgxUserRepository.
func NewPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, name, role, shop_id, password_hash, created_at, created_by, last_updated_at, last_updated_by`

// CreateUser inserts a new operator account.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	// Shop-less admins store NULL so the shops FK is not violated.
	var shopID *string
	if modelUser.ShopID != "" {
		shopID = &modelUser.ShopID
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		modelUser.UserID, modelUser.Username, modelUser.Name, modelUser.Role, shopID,
		modelUser.PasswordHash, modelUser.CreatedAt, modelUser.CreatedBy,
		modelUser.LastUpdatedAt, modelUser.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "username "+user.Username+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert user", err)
	}
	return nil
}

// FindUserByID retrieves a user by identifier.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// ListUsers retrieves operator accounts ordered by username.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		ORDER BY username
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var modelUser models.User
		if err := scanUser(rows, &modelUser); err != nil {
			return nil, apperrors.NewTransientError("failed to scan user", err)
		}
		users = append(users, mapping.ToDomainUser(modelUser))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating users", err)
	}
	return users, nil
}

func (r *PgxUserRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var modelUser models.User
	err := scanUser(r.Pool.QueryRow(ctx, query, args...), &modelUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewTransientError("failed to query user", err)
	}
	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func scanUser(row pgx.Row, m *models.User) error {
	var shopID *string
	err := row.Scan(
		&m.UserID, &m.Username, &m.Name, &m.Role, &shopID, &m.PasswordHash,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return err
	}
	if shopID != nil {
		m.ShopID = *shopID
	}
	return nil
}
