package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, user_id, account_id, type, direction, amount, description, balance,
	counterparty_account_id, card_id, loan_id, converted_amount, from_currency, to_currency,
	exchange_rate, status, created_at`

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
FROM transactions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *TransactionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM transactions WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (r *TransactionRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error) {
	return r.ListByUser(ctx, userID, limit, 0)
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		txn             domain.Transaction
		counterparty    uuid.NullUUID
		cardID          uuid.NullUUID
		loanID          uuid.NullUUID
		convertedAmount decimal.NullDecimal
		fromCurrency    sql.NullString
		toCurrency      sql.NullString
		exchangeRate    decimal.NullDecimal
	)

	if err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&txn.AccountID,
		&txn.Type,
		&txn.Direction,
		&txn.Amount,
		&txn.Description,
		&txn.Balance,
		&counterparty,
		&cardID,
		&loanID,
		&convertedAmount,
		&fromCurrency,
		&toCurrency,
		&exchangeRate,
		&txn.Status,
		&txn.CreatedAt,
	); err != nil {
		return domain.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	if counterparty.Valid {
		txn.CounterpartyAccountID = &counterparty.UUID
	}
	if cardID.Valid {
		txn.CardID = &cardID.UUID
	}
	if loanID.Valid {
		txn.LoanID = &loanID.UUID
	}
	if convertedAmount.Valid {
		txn.ConvertedAmount = &convertedAmount.Decimal
	}
	txn.FromCurrency = stringPtr(fromCurrency)
	txn.ToCurrency = stringPtr(toCurrency)
	if exchangeRate.Valid {
		txn.ExchangeRate = &exchangeRate.Decimal
	}

	return txn, nil
}
