package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeFee        TransactionType = "fee"
	TransactionTypeAdmin      TransactionType = "admin"
)

// TransactionDirection marks which side of a movement a ledger entry
// documents. It is set at creation time; callers never infer it from
// the presence of optional fields.
type TransactionDirection string

const (
	DirectionSent     TransactionDirection = "sent"
	DirectionReceived TransactionDirection = "received"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger entry recording one balance-affecting
// event on one account. Balance holds the account balance observed after
// the mutation the entry documents.
type Transaction struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	AccountID             uuid.UUID
	Type                  TransactionType
	Direction             TransactionDirection
	Amount                decimal.Decimal
	Description           string
	Balance               decimal.Decimal
	CounterpartyAccountID *uuid.UUID
	CardID                *uuid.UUID
	LoanID                *uuid.UUID
	ConvertedAmount       *decimal.Decimal
	FromCurrency          *string
	ToCurrency            *string
	ExchangeRate          *decimal.Decimal
	Status                TransactionStatus
	CreatedAt             time.Time
}
