package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	"github.com/boutikapp/caisse-backend/internal/models"
	"github.com/boutikapp/caisse-backend/internal/utils/mapping"
)

// PgxDailyRateRepository implements the daily rate repository using pgxpool.
type PgxDailyRateRepository struct {
	BaseRepository
}

// NewPgxDailyRateRepository creates a new PgxDailyRateRepository.
func NewPgxDailyRateRepository(db *pgxpool.Pool) *PgxDailyRateRepository {
	return &PgxDailyRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DailyRateRepositoryFacade = (*PgxDailyRateRepository)(nil)

const dailyRateColumns = `rate_id, rate_date, rate_local_per_usd, created_at, created_by, last_updated_at, last_updated_by`

// CreateRate inserts a new daily rate. The unique index on rate_date rejects
// a second rate for the same day.
func (r *PgxDailyRateRepository) CreateRate(ctx context.Context, rate domain.DailyRate) error {
	modelRate := mapping.ToModelDailyRate(rate)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO daily_rates (`+dailyRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		modelRate.RateID, modelRate.RateDate, modelRate.RateLocalPerUSD,
		modelRate.CreatedAt, modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "a rate already exists for "+rate.RateDate.Format("2006-01-02"), apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert daily rate", err)
	}
	return nil
}

// UpdateRate corrects an existing rate in place.
func (r *PgxDailyRateRepository) UpdateRate(ctx context.Context, rate domain.DailyRate) error {
	modelRate := mapping.ToModelDailyRate(rate)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE daily_rates
		SET rate_local_per_usd = $1, last_updated_at = $2, last_updated_by = $3
		WHERE rate_id = $4`,
		modelRate.RateLocalPerUSD, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy, modelRate.RateID,
	)
	if err != nil {
		return apperrors.NewTransientError("failed to update daily rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("daily rate " + rate.RateID + " not found")
	}
	return nil
}

// FindRateByDate retrieves the rate for exactly the given calendar day.
func (r *PgxDailyRateRepository) FindRateByDate(ctx context.Context, day time.Time) (*domain.DailyRate, error) {
	return r.queryOne(ctx, `SELECT `+dailyRateColumns+` FROM daily_rates WHERE rate_date = $1`, day)
}

// FindLatestRateOnOrBefore retrieves the most recent rate dated on or before
// the given day.
func (r *PgxDailyRateRepository) FindLatestRateOnOrBefore(ctx context.Context, day time.Time) (*domain.DailyRate, error) {
	return r.queryOne(ctx, `
		SELECT `+dailyRateColumns+` FROM daily_rates
		WHERE rate_date <= $1
		ORDER BY rate_date DESC
		LIMIT 1`, day)
}

// FindRateByID retrieves a rate by its identifier.
func (r *PgxDailyRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.DailyRate, error) {
	return r.queryOne(ctx, `SELECT `+dailyRateColumns+` FROM daily_rates WHERE rate_id = $1`, rateID)
}

// ListRates retrieves rates ordered by date descending.
func (r *PgxDailyRateRepository) ListRates(ctx context.Context, limit, offset int) ([]domain.DailyRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+dailyRateColumns+` FROM daily_rates
		ORDER BY rate_date DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list daily rates", err)
	}
	defer rows.Close()

	var rates []domain.DailyRate
	for rows.Next() {
		var modelRate models.DailyRate
		if err := scanDailyRate(rows, &modelRate); err != nil {
			return nil, apperrors.NewTransientError("failed to scan daily rate", err)
		}
		rates = append(rates, mapping.ToDomainDailyRate(modelRate))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating daily rates", err)
	}
	return rates, nil
}

func (r *PgxDailyRateRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.DailyRate, error) {
	var modelRate models.DailyRate
	err := scanDailyRate(r.Pool.QueryRow(ctx, query, args...), &modelRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("daily rate not found")
		}
		return nil, apperrors.NewTransientError("failed to query daily rate", err)
	}
	domainRate := mapping.ToDomainDailyRate(modelRate)
	return &domainRate, nil
}

func scanDailyRate(row pgx.Row, m *models.DailyRate) error {
	return row.Scan(
		&m.RateID, &m.RateDate, &m.RateLocalPerUSD,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
}
