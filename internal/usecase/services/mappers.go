package services

import (
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func mapUserToResponse(user domain.User) models.UserResponse {
	return models.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Country:   user.Country,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:            account.ID.String(),
		AccountNumber: account.AccountNumber,
		AccountType:   string(account.AccountType),
		Currency:      account.Currency,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}
}

func mapTransactionToResponse(txn domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		ID:                    txn.ID.String(),
		AccountID:             txn.AccountID.String(),
		Type:                  string(txn.Type),
		Direction:             string(txn.Direction),
		Amount:                txn.Amount,
		Description:           txn.Description,
		Balance:               txn.Balance,
		CounterpartyAccountID: uuidPtrToString(txn.CounterpartyAccountID),
		CardID:                uuidPtrToString(txn.CardID),
		LoanID:                uuidPtrToString(txn.LoanID),
		ConvertedAmount:       txn.ConvertedAmount,
		FromCurrency:          txn.FromCurrency,
		ToCurrency:            txn.ToCurrency,
		ExchangeRate:          txn.ExchangeRate,
		Status:                string(txn.Status),
		CreatedAt:             txn.CreatedAt.Format(time.RFC3339),
	}
}

func mapLoanToResponse(loan domain.Loan) models.LoanResponse {
	progress := 0
	if loan.Principal.IsPositive() {
		repaid := loan.Principal.Sub(loan.RemainingBalance)
		progress = int(repaid.Div(loan.Principal).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}

	return models.LoanResponse{
		ID:                loan.ID.String(),
		AccountID:         loan.AccountID.String(),
		Principal:         loan.Principal,
		InterestRate:      loan.InterestRate,
		TermMonths:        loan.TermMonths,
		MonthlyPayment:    loan.MonthlyPayment,
		RemainingBalance:  loan.RemainingBalance,
		Status:            string(loan.Status),
		Purpose:           loan.Purpose,
		RepaymentProgress: progress,
		CreatedAt:         loan.CreatedAt.Format(time.RFC3339),
	}
}

func mapCardToResponse(card domain.Card) models.CardResponse {
	return models.CardResponse{
		ID:              card.ID.String(),
		AccountID:       card.AccountID.String(),
		CardNumber:      card.CardNumber,
		CardType:        string(card.CardType),
		CardName:        card.CardName,
		ExpiryDate:      card.ExpiryDate.Format(time.RFC3339),
		Status:          string(card.Status),
		PurchaseStatus:  string(card.PurchaseStatus),
		ApprovalStatus:  string(card.ApprovalStatus),
		PurchaseAmount:  card.PurchaseAmount,
		PaymentDeadline: timePtrToString(card.PaymentDeadline),
		RejectionReason: card.RejectionReason,
		CreatedAt:       card.CreatedAt.Format(time.RFC3339),
	}
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
