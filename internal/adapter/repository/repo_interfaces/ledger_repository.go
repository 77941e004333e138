package repo_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferPosting carries both sides of a transfer into one unit of work.
// Debit and Credit are entry templates; the repository fills in ids,
// post-operation balances and timestamps.
type TransferPosting struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	DebitAmount   decimal.Decimal
	CreditAmount  decimal.Decimal
	DebitEntry    domain.Transaction
	CreditEntry   domain.Transaction
}

// LedgerRepository executes every balance mutation together with its ledger
// entry inside a single database transaction. Debits are guarded so the
// balance never goes negative, and the guarded UPDATE serializes concurrent
// mutations on the same account row.
type LedgerRepository interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error)
	Transfer(ctx context.Context, posting TransferPosting) (domain.Transaction, domain.Transaction, error)
	DisburseLoan(ctx context.Context, loan domain.Loan, entry domain.Transaction) (domain.Loan, domain.Transaction, error)
	RepayLoan(ctx context.Context, loanID uuid.UUID, accountID uuid.UUID, payment decimal.Decimal, entry domain.Transaction) (domain.Loan, domain.Transaction, error)
}
