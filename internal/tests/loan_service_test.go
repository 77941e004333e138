package services_test

import (
	"context"
	"testing"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/usecase/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validLoanApplication(amount int64, months int) models.LoanApplicationRequest {
	return models.LoanApplicationRequest{
		Amount:                 decimal.NewFromInt(amount),
		Duration:               months,
		Purpose:                "home improvement",
		PhoneNumber:            "+2348012345678",
		Address:                "12 Marina Road, Lagos",
		IdentificationType:     "passport",
		IdentificationDocument: "doc-ref-001",
	}
}

func TestLoanServiceApplyDisbursesImmediately(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	var capturedLoan domain.Loan
	var capturedEntry domain.Transaction
	svc := services.NewLoanService(
		accountRepoStub{
			getCheckingForUserFn: func(_ context.Context, id uuid.UUID) (domain.Account, error) {
				require.Equal(t, userID, id)
				return domain.Account{ID: accountID, UserID: userID, AccountType: domain.AccountTypeChecking}, nil
			},
		},
		loanRepoStub{},
		ledgerRepoStub{
			disburseLoanFn: func(_ context.Context, loan domain.Loan, entry domain.Transaction) (domain.Loan, domain.Transaction, error) {
				capturedLoan = loan
				capturedEntry = entry
				loan.ID = uuid.New()
				return loan, entry, nil
			},
		},
	)

	resp, err := svc.Apply(context.Background(), domain.Actor{UserID: userID}, validLoanApplication(10000, 12))
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Equal(t, domain.LoanStatusApproved, capturedLoan.Status)
	require.True(t, capturedLoan.Principal.Equal(decimal.NewFromInt(10000)))
	require.True(t, capturedLoan.RemainingBalance.Equal(decimal.NewFromInt(10000)))
	require.Equal(t, 12, capturedLoan.TermMonths)

	// 10000 over 12 months at 8% amortizes to 869.88 a month.
	require.Equal(t, "869.88", capturedLoan.MonthlyPayment.StringFixed(2))

	require.Equal(t, domain.DirectionReceived, capturedEntry.Direction)
	require.Equal(t, accountID, capturedEntry.AccountID)
	require.Equal(t, "Loan disbursement: home improvement", capturedEntry.Description)
}

func TestLoanServiceApplyRejectsNonPositiveAmount(t *testing.T) {
	svc := services.NewLoanService(accountRepoStub{}, loanRepoStub{}, ledgerRepoStub{})

	req := validLoanApplication(0, 12)
	_, err := svc.Apply(context.Background(), domain.Actor{UserID: uuid.New()}, req)
	require.ErrorIs(t, err, commons.ErrInvalidAmount)
}

func TestLoanServiceApplyRequiresCheckingAccount(t *testing.T) {
	svc := services.NewLoanService(
		accountRepoStub{
			getCheckingForUserFn: func(context.Context, uuid.UUID) (domain.Account, error) {
				return domain.Account{}, commons.ErrRecordNotFound
			},
		},
		loanRepoStub{},
		ledgerRepoStub{},
	)

	_, err := svc.Apply(context.Background(), domain.Actor{UserID: uuid.New()}, validLoanApplication(5000, 6))
	require.ErrorIs(t, err, commons.ErrRecordNotFound)
}

func TestLoanServiceRepayForbiddenForNonOwner(t *testing.T) {
	loanID := uuid.New()
	svc := services.NewLoanService(
		accountRepoStub{},
		loanRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Loan, error) {
				return domain.Loan{ID: loanID, UserID: uuid.New()}, nil
			},
		},
		ledgerRepoStub{},
	)

	_, err := svc.Repay(context.Background(), domain.Actor{UserID: uuid.New()}, loanID.String(), models.LoanPaymentRequest{
		PaymentAmount: decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, commons.ErrForbidden)
}

func TestLoanServiceRepayAppliesPayment(t *testing.T) {
	userID := uuid.New()
	loanID := uuid.New()
	accountID := uuid.New()

	svc := services.NewLoanService(
		accountRepoStub{},
		loanRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Loan, error) {
				return domain.Loan{
					ID:               loanID,
					UserID:           userID,
					AccountID:        accountID,
					Principal:        decimal.NewFromInt(1000),
					RemainingBalance: decimal.NewFromInt(400),
					Status:           domain.LoanStatusApproved,
				}, nil
			},
		},
		ledgerRepoStub{
			repayLoanFn: func(_ context.Context, id, acct uuid.UUID, payment decimal.Decimal, entry domain.Transaction) (domain.Loan, domain.Transaction, error) {
				require.Equal(t, loanID, id)
				require.Equal(t, accountID, acct)
				require.True(t, payment.Equal(decimal.NewFromInt(400)))
				require.Equal(t, domain.TransactionTypePayment, entry.Type)
				require.Equal(t, domain.DirectionSent, entry.Direction)
				require.Equal(t, loanID, *entry.LoanID)
				return domain.Loan{
					ID:               loanID,
					UserID:           userID,
					AccountID:        acct,
					Principal:        decimal.NewFromInt(1000),
					RemainingBalance: decimal.Zero,
					Status:           domain.LoanStatusPaid,
				}, entry, nil
			},
		},
	)

	resp, err := svc.Repay(context.Background(), domain.Actor{UserID: userID}, loanID.String(), models.LoanPaymentRequest{
		PaymentAmount: decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	require.Equal(t, "paid", resp.Data.Loan.Status)
	require.Equal(t, 100, resp.Data.Loan.RepaymentProgress)
}

func TestLoanServiceRepayPassesThroughInsufficientBalance(t *testing.T) {
	userID := uuid.New()
	loanID := uuid.New()
	svc := services.NewLoanService(
		accountRepoStub{},
		loanRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Loan, error) {
				return domain.Loan{ID: loanID, UserID: userID, Status: domain.LoanStatusApproved}, nil
			},
		},
		ledgerRepoStub{
			repayLoanFn: func(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal, domain.Transaction) (domain.Loan, domain.Transaction, error) {
				return domain.Loan{}, domain.Transaction{}, commons.ErrInsufficientBalance
			},
		},
	)

	_, err := svc.Repay(context.Background(), domain.Actor{UserID: userID}, loanID.String(), models.LoanPaymentRequest{
		PaymentAmount: decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, commons.ErrInsufficientBalance)
}

func TestLoanServiceRepayRejectsLoanClosedConcurrently(t *testing.T) {
	userID := uuid.New()
	loanID := uuid.New()
	svc := services.NewLoanService(
		accountRepoStub{},
		loanRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Loan, error) {
				return domain.Loan{ID: loanID, UserID: userID, Status: domain.LoanStatusApproved}, nil
			},
		},
		ledgerRepoStub{
			repayLoanFn: func(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal, domain.Transaction) (domain.Loan, domain.Transaction, error) {
				return domain.Loan{}, domain.Transaction{}, commons.ErrLoanNotOpen
			},
		},
	)

	resp, err := svc.Repay(context.Background(), domain.Actor{UserID: userID}, loanID.String(), models.LoanPaymentRequest{
		PaymentAmount: decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, commons.ErrLoanNotOpen)
	require.Equal(t, "validation failed", resp.Message)
}
