package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	AccountID   string          `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r DepositRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}

	return validationError(errs)
}

type WithdrawRequest struct {
	AccountID   string          `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}

	return validationError(errs)
}

type TransferRequest struct {
	FromAccountID   string          `json:"fromAccountId"`
	ToAccountNumber string          `json:"toAccountNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FromAccountID) == "" {
		errs = append(errs, "fromAccountId is required")
	}
	if !isTenDigits(r.ToAccountNumber) {
		errs = append(errs, "toAccountNumber must be exactly 10 digits")
	}

	return validationError(errs)
}

type TransactionResponse struct {
	ID                    string           `json:"id"`
	AccountID             string           `json:"accountId"`
	Type                  string           `json:"type"`
	Direction             string           `json:"direction"`
	Amount                decimal.Decimal  `json:"amount"`
	Description           string           `json:"description"`
	Balance               decimal.Decimal  `json:"balance"`
	CounterpartyAccountID *string          `json:"counterpartyAccountId,omitempty"`
	CardID                *string          `json:"cardId,omitempty"`
	LoanID                *string          `json:"loanId,omitempty"`
	ConvertedAmount       *decimal.Decimal `json:"convertedAmount,omitempty"`
	FromCurrency          *string          `json:"fromCurrency,omitempty"`
	ToCurrency            *string          `json:"toCurrency,omitempty"`
	ExchangeRate          *decimal.Decimal `json:"exchangeRate,omitempty"`
	Status                string           `json:"status"`
	CreatedAt             string           `json:"createdAt"`
}

type TransferResponse struct {
	FromTransaction TransactionResponse `json:"fromTransaction"`
	ToTransaction   TransactionResponse `json:"toTransaction"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type TransactionListResponse struct {
	Count        int                   `json:"count"`
	Pagination   Pagination            `json:"pagination"`
	Transactions []TransactionResponse `json:"transactions"`
}
