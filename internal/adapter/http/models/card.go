package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type OrderCardRequest struct {
	CardType string          `json:"cardType"`
	Amount   decimal.Decimal `json:"amount"`
}

func (r OrderCardRequest) Validate() error {
	var errs []string

	switch strings.TrimSpace(r.CardType) {
	case "debit", "credit", "virtual", "physical":
	default:
		errs = append(errs, "cardType must be debit, credit, virtual or physical")
	}
	if r.Amount.IsNegative() {
		errs = append(errs, "amount cannot be negative")
	}

	return validationError(errs)
}

type CardDecisionRequest struct {
	Action          string `json:"action"`
	RejectionReason string `json:"rejectionReason"`
}

func (r CardDecisionRequest) Validate() error {
	switch strings.TrimSpace(r.Action) {
	case "approve", "decline":
		return nil
	default:
		return validationError([]string{"action must be approve or decline"})
	}
}

type CardResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	CardNumber      string          `json:"cardNumber"`
	CardType        string          `json:"cardType"`
	CardName        string          `json:"cardName"`
	ExpiryDate      string          `json:"expiryDate"`
	Status          string          `json:"status"`
	PurchaseStatus  string          `json:"purchaseStatus"`
	ApprovalStatus  string          `json:"approvalStatus"`
	PurchaseAmount  decimal.Decimal `json:"purchaseAmount"`
	PaymentDeadline *string         `json:"paymentDeadline,omitempty"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

type CardListResponse struct {
	Count int            `json:"count"`
	Cards []CardResponse `json:"cards"`
}
