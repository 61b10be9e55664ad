package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boutikapp/caisse-backend/internal/apperrors"
	"github.com/boutikapp/caisse-backend/internal/core/domain"
	portsrepo "github.com/boutikapp/caisse-backend/internal/core/ports/repositories"
	"github.com/boutikapp/caisse-backend/internal/models"
	"github.com/boutikapp/caisse-backend/internal/utils/mapping"
)

// PgxOperationRepository implements the operation repository using pgxpool.
// Float maps are stored as JSONB; immutability is structural (insert only,
// no update or delete statements exist for this table).
type PgxOperationRepository struct {
	BaseRepository
}

// NewPgxOperationRepository creates a new PgxOperationRepository.
func NewPgxOperationRepository(db *pgxpool.Pool) *PgxOperationRepository {
	return &PgxOperationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)

const operationColumns = `operation_id, shop_id, op_date, period, cash_closing, cash_closing_foreign,
	electronic_floats, credit_floats, fx_rate, grand_total, created_at, created_by`

// CreateOperation inserts the closing record. The unique index on
// (shop_id, op_date, period) guarantees at most one closing per triple; the
// losing side of a racing double submission gets ErrDuplicateClosing.
func (r *PgxOperationRepository) CreateOperation(ctx context.Context, op domain.Operation) error {
	modelOp := mapping.ToModelOperation(op)

	electronicJSON, err := json.Marshal(modelOp.ElectronicFloats)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode electronic floats", err)
	}
	creditJSON, err := json.Marshal(modelOp.CreditFloats)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode credit floats", err)
	}

	_, err = r.Pool.Exec(ctx, `
		INSERT INTO operations (`+operationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		modelOp.OperationID, modelOp.ShopID, modelOp.OpDate, modelOp.Period,
		modelOp.CashClosing, modelOp.CashClosingForeign,
		electronicJSON, creditJSON,
		modelOp.FxRate, modelOp.GrandTotal, modelOp.CreatedAt, modelOp.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s for shop %s", apperrors.ErrDuplicateClosing,
				op.OpDate.Format("2006-01-02"), op.Period, op.ShopID)
		}
		return apperrors.NewTransientError("failed to insert operation", err)
	}
	return nil
}

// FindOperation retrieves the closing record for a (shop, date, period) triple.
func (r *PgxOperationRepository) FindOperation(ctx context.Context, shopID string, day time.Time, period domain.Period) (*domain.Operation, error) {
	return r.queryOne(ctx, `
		SELECT `+operationColumns+` FROM operations
		WHERE shop_id = $1 AND op_date = $2 AND period = $3`,
		shopID, day, string(period))
}

// FindOperationByID retrieves a closing record by its identifier.
func (r *PgxOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	return r.queryOne(ctx, `
		SELECT `+operationColumns+` FROM operations
		WHERE operation_id = $1`, operationID)
}

// ListOperations retrieves a shop's closing records, newest first. Zero day
// and empty period mean no filter.
func (r *PgxOperationRepository) ListOperations(ctx context.Context, shopID string, day time.Time, period domain.Period, limit, offset int) ([]domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE shop_id = $1`
	args := []any{shopID}

	if !day.IsZero() {
		args = append(args, day)
		query += fmt.Sprintf(" AND op_date = $%d", len(args))
	}
	if period != "" {
		args = append(args, string(period))
		query += fmt.Sprintf(" AND period = $%d", len(args))
	}

	// Evening follows morning within a day, so rank periods explicitly
	// rather than relying on the alphabetical accident 'm' > 'e'.
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY op_date DESC, CASE WHEN period = 'evening' THEN 1 ELSE 0 END DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list operations", err)
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, apperrors.NewTransientError("failed to scan operation", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating operations", err)
	}
	return ops, nil
}

func (r *PgxOperationRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Operation, error) {
	op, err := scanOperation(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("operation not found")
		}
		return nil, apperrors.NewTransientError("failed to query operation", err)
	}
	return op, nil
}

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var modelOp models.Operation
	var electronicJSON, creditJSON []byte

	err := row.Scan(
		&modelOp.OperationID, &modelOp.ShopID, &modelOp.OpDate, &modelOp.Period,
		&modelOp.CashClosing, &modelOp.CashClosingForeign,
		&electronicJSON, &creditJSON,
		&modelOp.FxRate, &modelOp.GrandTotal, &modelOp.CreatedAt, &modelOp.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(electronicJSON, &modelOp.ElectronicFloats); err != nil {
		return nil, fmt.Errorf("failed to decode electronic floats: %w", err)
	}
	if err := json.Unmarshal(creditJSON, &modelOp.CreditFloats); err != nil {
		return nil, fmt.Errorf("failed to decode credit floats: %w", err)
	}

	domainOp := mapping.ToDomainOperation(modelOp)
	return &domainOp, nil
}
