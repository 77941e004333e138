package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apexbank/apexbank-api/internal/adapter/repository/repo_interfaces"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRepository applies balance deltas and writes the matching ledger
// entries inside one database transaction per operation. The guarded UPDATE
// on the account row both enforces the non-negative balance invariant and
// serializes concurrent mutations on the same account.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error) {
	var created domain.Transaction
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		newBalance, err := applyDelta(ctx, tx, accountID, amount)
		if err != nil {
			return err
		}
		entry.Balance = newBalance
		created, err = insertEntry(ctx, tx, entry)
		return err
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return created, nil
}

func (r *LedgerRepository) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error) {
	var created domain.Transaction
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		newBalance, err := applyDelta(ctx, tx, accountID, amount.Neg())
		if err != nil {
			return err
		}
		entry.Balance = newBalance
		created, err = insertEntry(ctx, tx, entry)
		return err
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return created, nil
}

// Transfer commits the debit, the credit and both ledger entries together,
// or not at all.
func (r *LedgerRepository) Transfer(ctx context.Context, posting repo_interfaces.TransferPosting) (domain.Transaction, domain.Transaction, error) {
	var debitEntry, creditEntry domain.Transaction
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var debitBalance, creditBalance decimal.Decimal
		for _, leg := range orderTransferLegs(posting) {
			newBalance, err := applyDelta(ctx, tx, leg.accountID, leg.delta)
			if err != nil {
				return err
			}
			if leg.debit {
				debitBalance = newBalance
			} else {
				creditBalance = newBalance
			}
		}

		posting.DebitEntry.Balance = debitBalance
		var err error
		if debitEntry, err = insertEntry(ctx, tx, posting.DebitEntry); err != nil {
			return err
		}

		posting.CreditEntry.Balance = creditBalance
		creditEntry, err = insertEntry(ctx, tx, posting.CreditEntry)
		return err
	})
	if err != nil {
		return domain.Transaction{}, domain.Transaction{}, err
	}

	logger.Info("ledger repository transfer posted", logger.Fields{
		"fromAccountId": posting.FromAccountID,
		"toAccountId":   posting.ToAccountID,
		"debitAmount":   posting.DebitAmount,
		"creditAmount":  posting.CreditAmount,
	})
	return debitEntry, creditEntry, nil
}

func (r *LedgerRepository) DisburseLoan(ctx context.Context, loan domain.Loan, entry domain.Transaction) (domain.Loan, domain.Transaction, error) {
	var created domain.Transaction
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		const query = `
INSERT INTO loans (
	user_id,
	account_id,
	principal,
	interest_rate,
	term_months,
	monthly_payment,
	remaining_balance,
	status,
	purpose,
	phone_number,
	address,
	identification_type,
	identification_document
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, created_at, updated_at`

		if err := tx.QueryRowContext(
			ctx,
			query,
			loan.UserID,
			loan.AccountID,
			loan.Principal,
			loan.InterestRate,
			loan.TermMonths,
			loan.MonthlyPayment,
			loan.RemainingBalance,
			loan.Status,
			loan.Purpose,
			loan.PhoneNumber,
			loan.Address,
			loan.IdentificationType,
			loan.IdentificationDocument,
		).Scan(&loan.ID, &loan.CreatedAt, &loan.UpdatedAt); err != nil {
			return fmt.Errorf("create loan: %w", err)
		}

		newBalance, err := applyDelta(ctx, tx, loan.AccountID, loan.Principal)
		if err != nil {
			return err
		}

		entry.LoanID = &loan.ID
		entry.Balance = newBalance
		created, err = insertEntry(ctx, tx, entry)
		return err
	})
	if err != nil {
		return domain.Loan{}, domain.Transaction{}, err
	}

	logger.Info("ledger repository loan disbursed", logger.Fields{
		"loanId":    loan.ID,
		"accountId": loan.AccountID,
		"principal": loan.Principal,
	})
	return loan, created, nil
}

func (r *LedgerRepository) RepayLoan(ctx context.Context, loanID uuid.UUID, accountID uuid.UUID, payment decimal.Decimal, entry domain.Transaction) (domain.Loan, domain.Transaction, error) {
	var (
		loan    domain.Loan
		created domain.Transaction
	)
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		// Lock the loan row so concurrent repayments serialize.
		const lockQuery = `
SELECT remaining_balance, status
FROM loans
WHERE id = $1
FOR UPDATE`

		var (
			remaining decimal.Decimal
			status    domain.LoanStatus
		)
		if err := tx.QueryRowContext(ctx, lockQuery, loanID).Scan(&remaining, &status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return commons.ErrRecordNotFound
			}
			return fmt.Errorf("lock loan: %w", err)
		}
		if status != domain.LoanStatusApproved {
			return commons.ErrLoanNotOpen
		}

		newBalance, err := applyDelta(ctx, tx, accountID, payment.Neg())
		if err != nil {
			return err
		}

		remaining = decimal.Max(decimal.Zero, remaining.Sub(payment))
		if remaining.IsZero() {
			status = domain.LoanStatusPaid
		}

		const updateQuery = `
UPDATE loans
SET remaining_balance = $2,
    status = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING user_id, account_id, principal, interest_rate, term_months, monthly_payment,
	purpose, phone_number, address, identification_type, identification_document,
	created_at, updated_at`

		loan.ID = loanID
		loan.RemainingBalance = remaining
		loan.Status = status
		if err := tx.QueryRowContext(ctx, updateQuery, loanID, remaining, status).Scan(
			&loan.UserID,
			&loan.AccountID,
			&loan.Principal,
			&loan.InterestRate,
			&loan.TermMonths,
			&loan.MonthlyPayment,
			&loan.Purpose,
			&loan.PhoneNumber,
			&loan.Address,
			&loan.IdentificationType,
			&loan.IdentificationDocument,
			&loan.CreatedAt,
			&loan.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update loan: %w", err)
		}

		entry.LoanID = &loanID
		entry.Balance = newBalance
		created, err = insertEntry(ctx, tx, entry)
		return err
	})
	if err != nil {
		return domain.Loan{}, domain.Transaction{}, err
	}

	return loan, created, nil
}

type transferLeg struct {
	accountID uuid.UUID
	delta     decimal.Decimal
	debit     bool
}

// orderTransferLegs sorts the two legs by account id so that opposing
// concurrent transfers always lock the account rows in the same order and
// cannot deadlock each other.
func orderTransferLegs(posting repo_interfaces.TransferPosting) [2]transferLeg {
	debit := transferLeg{accountID: posting.FromAccountID, delta: posting.DebitAmount.Neg(), debit: true}
	credit := transferLeg{accountID: posting.ToAccountID, delta: posting.CreditAmount}
	if bytes.Compare(credit.accountID[:], debit.accountID[:]) < 0 {
		return [2]transferLeg{credit, debit}
	}
	return [2]transferLeg{debit, credit}
}

func (r *LedgerRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger transaction: %w", err)
	}
	return nil
}

// applyDelta is the only writer of accounts.balance. The guard clause makes
// a debit that would overdraw the account match zero rows instead of
// persisting a negative balance.
func applyDelta(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	const query = `
UPDATE accounts
SET balance = balance + $2::numeric,
    updated_at = NOW()
WHERE id = $1
  AND balance + $2::numeric >= 0
RETURNING balance`

	var newBalance decimal.Decimal
	err := tx.QueryRowContext(ctx, query, accountID, delta).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return decimal.Decimal{}, fmt.Errorf("apply balance delta: %w", err)
	}

	// Zero rows: either the account does not exist or the debit guard fired.
	var exists bool
	if checkErr := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists); checkErr != nil {
		return decimal.Decimal{}, fmt.Errorf("check account existence: %w", checkErr)
	}
	if !exists {
		return decimal.Decimal{}, commons.ErrRecordNotFound
	}
	return decimal.Decimal{}, commons.ErrInsufficientBalance
}

func insertEntry(ctx context.Context, tx *sql.Tx, entry domain.Transaction) (domain.Transaction, error) {
	if entry.Status == "" {
		entry.Status = domain.TransactionStatusCompleted
	}

	const query = `
INSERT INTO transactions (
	user_id,
	account_id,
	type,
	direction,
	amount,
	description,
	balance,
	counterparty_account_id,
	card_id,
	loan_id,
	converted_amount,
	from_currency,
	to_currency,
	exchange_rate,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id, created_at`

	if err := tx.QueryRowContext(
		ctx,
		query,
		entry.UserID,
		entry.AccountID,
		entry.Type,
		entry.Direction,
		entry.Amount,
		entry.Description,
		entry.Balance,
		entry.CounterpartyAccountID,
		entry.CardID,
		entry.LoanID,
		entry.ConvertedAmount,
		entry.FromCurrency,
		entry.ToCurrency,
		entry.ExchangeRate,
		entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return domain.Transaction{}, fmt.Errorf("record ledger entry: %w", err)
	}

	return entry, nil
}
