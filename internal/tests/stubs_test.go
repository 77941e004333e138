package services_test

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/adapter/repository/repo_interfaces"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type providerStub struct {
	fetchRateFn func(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

func (s providerStub) FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if s.fetchRateFn != nil {
		return s.fetchRateFn(ctx, fromCurrency, toCurrency)
	}
	return decimal.Decimal{}, nil
}

type rateServiceStub struct {
	getRateFn func(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	convertFn func(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, decimal.Decimal, error)
}

func (s rateServiceStub) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if s.getRateFn != nil {
		return s.getRateFn(ctx, fromCurrency, toCurrency)
	}
	return decimal.NewFromInt(1), nil
}

func (s rateServiceStub) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, decimal.Decimal, error) {
	if s.convertFn != nil {
		return s.convertFn(ctx, amount, fromCurrency, toCurrency)
	}
	return amount, decimal.NewFromInt(1), nil
}

type userRepoStub struct {
	createFn     func(ctx context.Context, user domain.User) (domain.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (domain.User, error)
	listFn       func(ctx context.Context) ([]domain.User, error)
	updateFn     func(ctx context.Context, user domain.User) (domain.User, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s userRepoStub) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return user, nil
}

func (s userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.User{}, nil
}

func (s userRepoStub) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return domain.User{}, nil
}

func (s userRepoStub) List(ctx context.Context) ([]domain.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s userRepoStub) Update(ctx context.Context, user domain.User) (domain.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return user, nil
}

func (s userRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type accountRepoStub struct {
	createFn             func(ctx context.Context, account domain.Account) (domain.Account, error)
	getByIDFn            func(ctx context.Context, id uuid.UUID) (domain.Account, error)
	getByAccountNumberFn func(ctx context.Context, accountNumber string) (domain.Account, error)
	getCheckingForUserFn func(ctx context.Context, userID uuid.UUID) (domain.Account, error)
	listByUserFn         func(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
}

func (s accountRepoStub) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	if s.createFn != nil {
		return s.createFn(ctx, account)
	}
	return account, nil
}

func (s accountRepoStub) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Account{}, nil
}

func (s accountRepoStub) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	if s.getByAccountNumberFn != nil {
		return s.getByAccountNumberFn(ctx, accountNumber)
	}
	return domain.Account{}, nil
}

func (s accountRepoStub) GetCheckingForUser(ctx context.Context, userID uuid.UUID) (domain.Account, error) {
	if s.getCheckingForUserFn != nil {
		return s.getCheckingForUserFn(ctx, userID)
	}
	return domain.Account{}, nil
}

func (s accountRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type transactionRepoStub struct {
	listByUserFn       func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	countByUserFn      func(ctx context.Context, userID uuid.UUID) (int, error)
	listRecentByUserFn func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error)
}

func (s transactionRepoStub) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (s transactionRepoStub) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if s.countByUserFn != nil {
		return s.countByUserFn(ctx, userID)
	}
	return 0, nil
}

func (s transactionRepoStub) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error) {
	if s.listRecentByUserFn != nil {
		return s.listRecentByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

type loanRepoStub struct {
	getByIDFn    func(ctx context.Context, id uuid.UUID) (domain.Loan, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]domain.Loan, error)
}

func (s loanRepoStub) GetByID(ctx context.Context, id uuid.UUID) (domain.Loan, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Loan{}, nil
}

func (s loanRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Loan, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type cardRepoStub struct {
	createFn              func(ctx context.Context, card domain.Card) (domain.Card, error)
	getByIDFn             func(ctx context.Context, id uuid.UUID) (domain.Card, error)
	listByUserFn          func(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	listPendingApprovalFn func(ctx context.Context) ([]domain.Card, error)
	updateApprovalFn      func(ctx context.Context, card domain.Card) (domain.Card, error)
}

func (s cardRepoStub) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	if s.createFn != nil {
		return s.createFn(ctx, card)
	}
	return card, nil
}

func (s cardRepoStub) GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Card{}, nil
}

func (s cardRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s cardRepoStub) ListPendingApproval(ctx context.Context) ([]domain.Card, error) {
	if s.listPendingApprovalFn != nil {
		return s.listPendingApprovalFn(ctx)
	}
	return nil, nil
}

func (s cardRepoStub) UpdateApproval(ctx context.Context, card domain.Card) (domain.Card, error) {
	if s.updateApprovalFn != nil {
		return s.updateApprovalFn(ctx, card)
	}
	return card, nil
}

type ledgerRepoStub struct {
	depositFn      func(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error)
	withdrawFn     func(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error)
	transferFn     func(ctx context.Context, posting repo_interfaces.TransferPosting) (domain.Transaction, domain.Transaction, error)
	disburseLoanFn func(ctx context.Context, loan domain.Loan, entry domain.Transaction) (domain.Loan, domain.Transaction, error)
	repayLoanFn    func(ctx context.Context, loanID, accountID uuid.UUID, payment decimal.Decimal, entry domain.Transaction) (domain.Loan, domain.Transaction, error)
}

func (s ledgerRepoStub) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error) {
	if s.depositFn != nil {
		return s.depositFn(ctx, accountID, amount, entry)
	}
	return entry, nil
}

func (s ledgerRepoStub) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, entry domain.Transaction) (domain.Transaction, error) {
	if s.withdrawFn != nil {
		return s.withdrawFn(ctx, accountID, amount, entry)
	}
	return entry, nil
}

func (s ledgerRepoStub) Transfer(ctx context.Context, posting repo_interfaces.TransferPosting) (domain.Transaction, domain.Transaction, error) {
	if s.transferFn != nil {
		return s.transferFn(ctx, posting)
	}
	return posting.DebitEntry, posting.CreditEntry, nil
}

func (s ledgerRepoStub) DisburseLoan(ctx context.Context, loan domain.Loan, entry domain.Transaction) (domain.Loan, domain.Transaction, error) {
	if s.disburseLoanFn != nil {
		return s.disburseLoanFn(ctx, loan, entry)
	}
	return loan, entry, nil
}

func (s ledgerRepoStub) RepayLoan(ctx context.Context, loanID, accountID uuid.UUID, payment decimal.Decimal, entry domain.Transaction) (domain.Loan, domain.Transaction, error) {
	if s.repayLoanFn != nil {
		return s.repayLoanFn(ctx, loanID, accountID, payment, entry)
	}
	return domain.Loan{}, entry, nil
}
