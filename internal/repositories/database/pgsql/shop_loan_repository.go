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

// PgxShopLoanRepository implements the inter-shop loan repository using
// pgxpool.
type PgxShopLoanRepository struct {
	BaseRepository
}

// NewPgxShopLoanRepository creates a new PgxShopLoanRepository.
func NewPgxShopLoanRepository(db *pgxpool.Pool) *PgxShopLoanRepository {
	return &PgxShopLoanRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ShopLoanRepositoryFacade = (*PgxShopLoanRepository)(nil)

const shopLoanColumns = `loan_id, lender_shop_id, borrower_shop_id, amount, currency_code, note, status,
	settled_at, settled_by, created_at, created_by, last_updated_at, last_updated_by`

// CreateLoan inserts a new loan.
func (r *PgxShopLoanRepository) CreateLoan(ctx context.Context, loan domain.ShopLoan) error {
	modelLoan := mapping.ToModelShopLoan(loan)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO shop_loans (`+shopLoanColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		modelLoan.LoanID, modelLoan.LenderShopID, modelLoan.BorrowerShopID,
		modelLoan.Amount, modelLoan.CurrencyCode, modelLoan.Note, modelLoan.Status,
		modelLoan.SettledAt, modelLoan.SettledBy,
		modelLoan.CreatedAt, modelLoan.CreatedBy, modelLoan.LastUpdatedAt, modelLoan.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewTransientError("failed to insert loan", err)
	}
	return nil
}

// UpdateLoan persists loan settlement.
func (r *PgxShopLoanRepository) UpdateLoan(ctx context.Context, loan domain.ShopLoan) error {
	modelLoan := mapping.ToModelShopLoan(loan)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE shop_loans
		SET status = $1, settled_at = $2, settled_by = $3, last_updated_at = $4, last_updated_by = $5
		WHERE loan_id = $6`,
		modelLoan.Status, modelLoan.SettledAt, modelLoan.SettledBy,
		modelLoan.LastUpdatedAt, modelLoan.LastUpdatedBy, modelLoan.LoanID,
	)
	if err != nil {
		return apperrors.NewTransientError("failed to update loan", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("loan " + loan.LoanID + " not found")
	}
	return nil
}

// FindLoanByID retrieves a loan by identifier.
func (r *PgxShopLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.ShopLoan, error) {
	var modelLoan models.ShopLoan
	err := scanShopLoan(r.Pool.QueryRow(ctx, `SELECT `+shopLoanColumns+` FROM shop_loans WHERE loan_id = $1`, loanID), &modelLoan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("loan " + loanID + " not found")
		}
		return nil, apperrors.NewTransientError("failed to query loan", err)
	}
	domainLoan := mapping.ToDomainShopLoan(modelLoan)
	return &domainLoan, nil
}

// ListLoans retrieves loans where the shop is lender or borrower; an empty
// shopID lists all loans.
func (r *PgxShopLoanRepository) ListLoans(ctx context.Context, shopID string, limit, offset int) ([]domain.ShopLoan, error) {
	query := `SELECT ` + shopLoanColumns + ` FROM shop_loans`
	args := []any{}
	if shopID != "" {
		query += ` WHERE lender_shop_id = $1 OR borrower_shop_id = $1`
		args = append(args, shopID)
	}
	args = append(args, limit, offset)
	switch len(args) {
	case 2:
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	default:
		query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list loans", err)
	}
	defer rows.Close()

	var loans []domain.ShopLoan
	for rows.Next() {
		var modelLoan models.ShopLoan
		if err := scanShopLoan(rows, &modelLoan); err != nil {
			return nil, apperrors.NewTransientError("failed to scan loan", err)
		}
		loans = append(loans, mapping.ToDomainShopLoan(modelLoan))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating loans", err)
	}
	return loans, nil
}

func scanShopLoan(row pgx.Row, m *models.ShopLoan) error {
	return row.Scan(
		&m.LoanID, &m.LenderShopID, &m.BorrowerShopID,
		&m.Amount, &m.CurrencyCode, &m.Note, &m.Status,
		&m.SettledAt, &m.SettledBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
}
