package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusActive    LoanStatus = "active"
	LoanStatusPaid      LoanStatus = "paid"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

type IdentificationType string

const (
	IdentificationPassport       IdentificationType = "passport"
	IdentificationDriversLicense IdentificationType = "drivers_license"
	IdentificationIDCard         IdentificationType = "id_card"
)

// Loan is a disbursed credit instrument tied to one account.
// RemainingBalance only decreases once the loan is approved; reaching
// zero transitions the status to paid.
type Loan struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	AccountID              uuid.UUID
	Principal              decimal.Decimal
	InterestRate           decimal.Decimal
	TermMonths             int
	MonthlyPayment         decimal.Decimal
	RemainingBalance       decimal.Decimal
	Status                 LoanStatus
	Purpose                string
	PhoneNumber            string
	Address                string
	IdentificationType     IdentificationType
	IdentificationDocument string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
