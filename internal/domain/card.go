package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CardType string

const (
	CardTypeDebit    CardType = "debit"
	CardTypeCredit   CardType = "credit"
	CardTypeVirtual  CardType = "virtual"
	CardTypePhysical CardType = "physical"
)

type CardStatus string

const (
	CardStatusActive         CardStatus = "active"
	CardStatusBlocked        CardStatus = "blocked"
	CardStatusExpired        CardStatus = "expired"
	CardStatusPendingPayment CardStatus = "pending_payment"
	CardStatusRejected       CardStatus = "rejected"
)

type CardPurchaseStatus string

const (
	PurchaseStatusCompleted       CardPurchaseStatus = "completed"
	PurchaseStatusPendingPayment  CardPurchaseStatus = "pending_payment"
	PurchaseStatusPendingApproval CardPurchaseStatus = "pending_approval"
	PurchaseStatusApproved        CardPurchaseStatus = "approved"
	PurchaseStatusDeclined        CardPurchaseStatus = "declined"
)

type CardApprovalStatus string

const (
	ApprovalStatusPending  CardApprovalStatus = "pending"
	ApprovalStatusApproved CardApprovalStatus = "approved"
	ApprovalStatusDeclined CardApprovalStatus = "declined"
)

// Card is a payment instrument tied to one account. An ordered card starts
// pending approval and moves no funds until an admin approves it. The three
// status fields are always updated together.
type Card struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CardNumber      string
	CardType        CardType
	CardName        string
	ExpiryDate      time.Time
	CVV             string
	Status          CardStatus
	PurchaseStatus  CardPurchaseStatus
	ApprovalStatus  CardApprovalStatus
	PurchaseAmount  decimal.Decimal
	PaymentDeadline *time.Time
	ApprovalDate    *time.Time
	ApprovedBy      *uuid.UUID
	RejectionReason *string
	RejectionDate   *time.Time
	RejectedBy      *uuid.UUID
	CreatedAt       time.Time
}
