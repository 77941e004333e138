package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/adapter/repository/repo_interfaces"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verify that LoanService implements the service_interfaces.LoanService interface
var _ service_interfaces.LoanService = (*LoanService)(nil)

// Every loan carries the same flat annual rate.
var loanAnnualInterestRate = decimal.NewFromFloat(0.08)

type LoanService struct {
	accountRepo repo_interfaces.AccountRepository
	loanRepo    repo_interfaces.LoanRepository
	ledgerRepo  repo_interfaces.LedgerRepository
}

func NewLoanService(
	accountRepo repo_interfaces.AccountRepository,
	loanRepo repo_interfaces.LoanRepository,
	ledgerRepo repo_interfaces.LedgerRepository,
) *LoanService {
	return &LoanService{
		accountRepo: accountRepo,
		loanRepo:    loanRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *LoanService) Apply(ctx context.Context, actor domain.Actor, req models.LoanApplicationRequest) (commons.Response[models.LoanApplicationResponse], error) {
	logger.Info("loan service application request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.LoanApplicationResponse]("validation failed", err.Error()), err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return commons.ErrorResponse[models.LoanApplicationResponse]("validation failed", commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}

	account, err := s.accountRepo.GetCheckingForUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanApplicationResponse]("Checking account not found"), err
		}
		logger.Error("loan service application account lookup failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.LoanApplicationResponse]("failed to process application", "Unable to process application right now"), err
	}

	principal := req.Amount.Round(2)
	loan := domain.Loan{
		UserID:                 actor.UserID,
		AccountID:              account.ID,
		Principal:              principal,
		InterestRate:           loanAnnualInterestRate,
		TermMonths:             req.Duration,
		MonthlyPayment:         monthlyPayment(principal, loanAnnualInterestRate, req.Duration),
		RemainingBalance:       principal,
		Status:                 domain.LoanStatusApproved,
		Purpose:                strings.TrimSpace(req.Purpose),
		PhoneNumber:            strings.TrimSpace(req.PhoneNumber),
		Address:                strings.TrimSpace(req.Address),
		IdentificationType:     domain.IdentificationType(strings.TrimSpace(req.IdentificationType)),
		IdentificationDocument: strings.TrimSpace(req.IdentificationDocument),
	}

	entry := domain.Transaction{
		UserID:      actor.UserID,
		AccountID:   account.ID,
		Type:        domain.TransactionTypeDeposit,
		Direction:   domain.DirectionReceived,
		Amount:      principal,
		Description: fmt.Sprintf("Loan disbursement: %s", loan.Purpose),
	}

	createdLoan, recorded, err := s.ledgerRepo.DisburseLoan(ctx, loan, entry)
	if err != nil {
		logger.Error("loan service disbursement failed", err, logger.Fields{"accountId": account.ID.String()})
		return commons.ErrorResponse[models.LoanApplicationResponse]("failed to process application", "Unable to process application right now"), err
	}

	response := models.LoanApplicationResponse{
		Loan:        mapLoanToResponse(createdLoan),
		Transaction: mapTransactionToResponse(recorded),
	}

	logger.Info("loan service application completed", logger.Fields{
		"loanId":        createdLoan.ID.String(),
		"transactionId": recorded.ID.String(),
	})
	return commons.SuccessResponse("loan approved and disbursed", response), nil
}

func (s *LoanService) Repay(ctx context.Context, actor domain.Actor, loanID string, req models.LoanPaymentRequest) (commons.Response[models.LoanPaymentResponse], error) {
	logger.Info("loan service payment request", logger.Fields{
		"userId":  actor.UserID.String(),
		"loanId":  loanID,
		"payload": logger.SanitizePayload(req),
	})

	if req.PaymentAmount.LessThanOrEqual(decimal.Zero) {
		return commons.ErrorResponse[models.LoanPaymentResponse]("validation failed", commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}

	id, err := uuid.Parse(strings.TrimSpace(loanID))
	if err != nil {
		return commons.ErrorResponse[models.LoanPaymentResponse]("Loan not found"), commons.ErrRecordNotFound
	}

	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanPaymentResponse]("Loan not found"), err
		}
		logger.Error("loan service payment lookup failed", err, logger.Fields{"loanId": loanID})
		return commons.ErrorResponse[models.LoanPaymentResponse]("failed to process payment", "Unable to process payment right now"), err
	}
	if loan.UserID != actor.UserID {
		return commons.ErrorResponse[models.LoanPaymentResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}
	if loan.Status != domain.LoanStatusApproved {
		return commons.ErrorResponse[models.LoanPaymentResponse]("validation failed", commons.ErrLoanNotOpen.Error()), commons.ErrLoanNotOpen
	}

	payment := req.PaymentAmount.Round(2)
	entry := domain.Transaction{
		UserID:      actor.UserID,
		AccountID:   loan.AccountID,
		Type:        domain.TransactionTypePayment,
		Direction:   domain.DirectionSent,
		Amount:      payment,
		Description: "Loan payment",
		LoanID:      &loan.ID,
	}

	updatedLoan, recorded, err := s.ledgerRepo.RepayLoan(ctx, loan.ID, loan.AccountID, payment, entry)
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientBalance) {
			return commons.ErrorResponse[models.LoanPaymentResponse](commons.ErrInsufficientBalance.Error()), err
		}
		// The loan can close between the lookup above and the row lock.
		if errors.Is(err, commons.ErrLoanNotOpen) {
			return commons.ErrorResponse[models.LoanPaymentResponse]("validation failed", commons.ErrLoanNotOpen.Error()), err
		}
		logger.Error("loan service payment failed", err, logger.Fields{"loanId": loanID})
		return commons.ErrorResponse[models.LoanPaymentResponse]("failed to process payment", "Unable to process payment right now"), err
	}

	response := models.LoanPaymentResponse{
		Loan:        mapLoanToResponse(updatedLoan),
		Transaction: mapTransactionToResponse(recorded),
	}

	logger.Info("loan service payment completed", logger.Fields{
		"loanId":           updatedLoan.ID.String(),
		"remainingBalance": updatedLoan.RemainingBalance,
		"status":           string(updatedLoan.Status),
	})
	return commons.SuccessResponse("payment applied", response), nil
}

func (s *LoanService) ListLoans(ctx context.Context, actor domain.Actor) (commons.Response[models.LoanListResponse], error) {
	loans, err := s.loanRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		logger.Error("loan service list failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.LoanListResponse]("failed to fetch loans", "Unable to fetch loans right now"), err
	}

	response := models.LoanListResponse{
		Count: len(loans),
		Loans: make([]models.LoanResponse, 0, len(loans)),
	}
	for _, loan := range loans {
		response.Loans = append(response.Loans, mapLoanToResponse(loan))
	}

	return commons.SuccessResponse("loans fetched", response), nil
}

// monthlyPayment amortizes the principal over the term:
// P * r * (1+r)^n / ((1+r)^n - 1) with r the monthly rate.
func monthlyPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	monthlyRate := annualRate.Div(decimal.NewFromInt(12))
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(int64(termMonths)))
	payment := principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))

	return payment.Round(2)
}
