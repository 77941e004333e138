package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
)

type LoanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

const loanColumns = `id, user_id, account_id, principal, interest_rate, term_months, monthly_payment,
	remaining_balance, status, purpose, phone_number, address, identification_type,
	identification_document, created_at, updated_at`

func (r *LoanRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	loan, err := scanLoan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Loan{}, commons.ErrRecordNotFound
		}
		return domain.Loan{}, err
	}
	return loan, nil
}

func (r *LoanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, rows.Err()
}

func scanLoan(row rowScanner) (domain.Loan, error) {
	var loan domain.Loan
	if err := row.Scan(
		&loan.ID,
		&loan.UserID,
		&loan.AccountID,
		&loan.Principal,
		&loan.InterestRate,
		&loan.TermMonths,
		&loan.MonthlyPayment,
		&loan.RemainingBalance,
		&loan.Status,
		&loan.Purpose,
		&loan.PhoneNumber,
		&loan.Address,
		&loan.IdentificationType,
		&loan.IdentificationDocument,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	); err != nil {
		return domain.Loan{}, err
	}
	return loan, nil
}
