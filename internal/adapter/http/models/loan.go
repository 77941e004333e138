package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type LoanApplicationRequest struct {
	Amount                 decimal.Decimal `json:"amount"`
	Duration               int             `json:"duration"`
	Purpose                string          `json:"purpose"`
	PhoneNumber            string          `json:"phoneNumber"`
	Address                string          `json:"address"`
	IdentificationType     string          `json:"identificationType"`
	IdentificationDocument string          `json:"identificationDocument"`
}

func (r LoanApplicationRequest) Validate() error {
	var errs []string

	if r.Duration <= 0 {
		errs = append(errs, "duration must be a positive number of months")
	}
	if strings.TrimSpace(r.Purpose) == "" {
		errs = append(errs, "purpose is required")
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		errs = append(errs, "phoneNumber is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}
	switch strings.TrimSpace(r.IdentificationType) {
	case "passport", "drivers_license", "id_card":
	default:
		errs = append(errs, "identificationType must be passport, drivers_license or id_card")
	}
	if strings.TrimSpace(r.IdentificationDocument) == "" {
		errs = append(errs, "identificationDocument reference is required")
	}

	return validationError(errs)
}

type LoanPaymentRequest struct {
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
}

type LoanResponse struct {
	ID                string          `json:"id"`
	AccountID         string          `json:"accountId"`
	Principal         decimal.Decimal `json:"principal"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	TermMonths        int             `json:"termMonths"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	RemainingBalance  decimal.Decimal `json:"remainingBalance"`
	Status            string          `json:"status"`
	Purpose           string          `json:"purpose"`
	RepaymentProgress int             `json:"repaymentProgress"`
	CreatedAt         string          `json:"createdAt"`
}

type LoanListResponse struct {
	Count int            `json:"count"`
	Loans []LoanResponse `json:"loans"`
}

type LoanApplicationResponse struct {
	Loan        LoanResponse        `json:"loan"`
	Transaction TransactionResponse `json:"transaction"`
}

type LoanPaymentResponse struct {
	Loan        LoanResponse        `json:"loan"`
	Transaction TransactionResponse `json:"transaction"`
}
