package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountType string `json:"accountType"`
	Currency    string `json:"currency"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	switch strings.TrimSpace(r.AccountType) {
	case "checking", "savings":
	default:
		errs = append(errs, "accountType must be checking or savings")
	}
	if !isCurrencyCode(r.Currency) {
		errs = append(errs, "currency must be a 3-letter code")
	}

	return validationError(errs)
}

type AccountResponse struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     string          `json:"createdAt"`
}

type AccountListResponse struct {
	Count    int               `json:"count"`
	Accounts []AccountResponse `json:"accounts"`
}
