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

// Verify that TransactionService implements the service_interfaces.TransactionService interface
var _ service_interfaces.TransactionService = (*TransactionService)(nil)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type TransactionService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
	ledgerRepo      repo_interfaces.LedgerRepository
	rateService     service_interfaces.RateService
}

func NewTransactionService(
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
	ledgerRepo repo_interfaces.LedgerRepository,
	rateService service_interfaces.RateService,
) *TransactionService {
	return &TransactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
		rateService:     rateService,
	}
}

func (s *TransactionService) Deposit(ctx context.Context, actor domain.Actor, req models.DepositRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service deposit request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}

	account, err := s.ownedAccount(ctx, actor, req.AccountID)
	if err != nil {
		return transactionErrorResponse(err, "deposit"), err
	}

	entry := domain.Transaction{
		UserID:      account.UserID,
		AccountID:   account.ID,
		Type:        domain.TransactionTypeDeposit,
		Direction:   domain.DirectionReceived,
		Amount:      req.Amount,
		Description: descriptionOrDefault(req.Description, "Deposit"),
	}

	recorded, err := s.ledgerRepo.Deposit(ctx, account.ID, req.Amount, entry)
	if err != nil {
		logger.Error("transaction service deposit failed", err, logger.Fields{"accountId": account.ID.String()})
		return transactionErrorResponse(err, "deposit"), err
	}

	logger.Info("transaction service deposit completed", logger.Fields{
		"transactionId": recorded.ID.String(),
		"accountId":     account.ID.String(),
	})
	return commons.SuccessResponse("deposit completed", mapTransactionToResponse(recorded)), nil
}

func (s *TransactionService) Withdraw(ctx context.Context, actor domain.Actor, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service withdraw request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}

	account, err := s.ownedAccount(ctx, actor, req.AccountID)
	if err != nil {
		return transactionErrorResponse(err, "withdrawal"), err
	}

	entry := domain.Transaction{
		UserID:      account.UserID,
		AccountID:   account.ID,
		Type:        domain.TransactionTypeWithdrawal,
		Direction:   domain.DirectionSent,
		Amount:      req.Amount,
		Description: descriptionOrDefault(req.Description, "Withdrawal"),
	}

	recorded, err := s.ledgerRepo.Withdraw(ctx, account.ID, req.Amount, entry)
	if err != nil {
		logger.Error("transaction service withdraw failed", err, logger.Fields{"accountId": account.ID.String()})
		return transactionErrorResponse(err, "withdrawal"), err
	}

	logger.Info("transaction service withdraw completed", logger.Fields{
		"transactionId": recorded.ID.String(),
		"accountId":     account.ID.String(),
	})
	return commons.SuccessResponse("withdrawal completed", mapTransactionToResponse(recorded)), nil
}

func (s *TransactionService) Transfer(ctx context.Context, actor domain.Actor, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transaction service transfer request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}

	fromAccount, err := s.ownedAccount(ctx, actor, req.FromAccountID)
	if err != nil {
		return transferErrorResponse(err), err
	}

	toAccount, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(req.ToAccountNumber))
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		logger.Error("transaction service transfer destination lookup failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if fromAccount.ID == toAccount.ID {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", commons.ErrSelfTransfer.Error()), commons.ErrSelfTransfer
	}

	// The debit leg is denominated in the source currency, the credit leg in
	// the destination currency. Same-currency pairs convert at 1.
	creditAmount, rate, err := s.rateService.Convert(ctx, req.Amount, fromAccount.Currency, toAccount.Currency)
	if err != nil {
		logger.Error("transaction service transfer conversion failed", err, logger.Fields{
			"fromCurrency": fromAccount.Currency,
			"toCurrency":   toAccount.Currency,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	creditAmount = creditAmount.Round(2)

	posting := repo_interfaces.TransferPosting{
		FromAccountID: fromAccount.ID,
		ToAccountID:   toAccount.ID,
		DebitAmount:   req.Amount,
		CreditAmount:  creditAmount,
		DebitEntry: domain.Transaction{
			UserID:                fromAccount.UserID,
			AccountID:             fromAccount.ID,
			Type:                  domain.TransactionTypeTransfer,
			Direction:             domain.DirectionSent,
			Amount:                req.Amount,
			Description:           descriptionOrDefault(req.Description, fmt.Sprintf("Transfer to %s", toAccount.AccountNumber)),
			CounterpartyAccountID: &toAccount.ID,
		},
		CreditEntry: domain.Transaction{
			UserID:                toAccount.UserID,
			AccountID:             toAccount.ID,
			Type:                  domain.TransactionTypeTransfer,
			Direction:             domain.DirectionReceived,
			Amount:                creditAmount,
			Description:           descriptionOrDefault(req.Description, fmt.Sprintf("Transfer from %s", fromAccount.AccountNumber)),
			CounterpartyAccountID: &fromAccount.ID,
		},
	}

	if fromAccount.Currency != toAccount.Currency {
		posting.DebitEntry.ConvertedAmount = &creditAmount
		posting.DebitEntry.FromCurrency = &fromAccount.Currency
		posting.DebitEntry.ToCurrency = &toAccount.Currency
		posting.DebitEntry.ExchangeRate = &rate
		posting.CreditEntry.ConvertedAmount = &creditAmount
		posting.CreditEntry.FromCurrency = &fromAccount.Currency
		posting.CreditEntry.ToCurrency = &toAccount.Currency
		posting.CreditEntry.ExchangeRate = &rate
	}

	debitRecorded, creditRecorded, err := s.ledgerRepo.Transfer(ctx, posting)
	if err != nil {
		logger.Error("transaction service transfer failed", err, logger.Fields{
			"fromAccountId": fromAccount.ID.String(),
			"toAccountId":   toAccount.ID.String(),
		})
		return transferErrorResponse(err), err
	}

	response := models.TransferResponse{
		FromTransaction: mapTransactionToResponse(debitRecorded),
		ToTransaction:   mapTransactionToResponse(creditRecorded),
	}

	logger.Info("transaction service transfer completed", logger.Fields{
		"fromTransactionId": debitRecorded.ID.String(),
		"toTransactionId":   creditRecorded.ID.String(),
	})
	return commons.SuccessResponse("transfer completed", response), nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, actor domain.Actor, page, limit int) (commons.Response[models.TransactionListResponse], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.transactionRepo.CountByUser(ctx, actor.UserID)
	if err != nil {
		logger.Error("transaction service list count failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.TransactionListResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}

	transactions, err := s.transactionRepo.ListByUser(ctx, actor.UserID, limit, (page-1)*limit)
	if err != nil {
		logger.Error("transaction service list failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.TransactionListResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}

	response := models.TransactionListResponse{
		Count: len(transactions),
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
		Transactions: make([]models.TransactionResponse, 0, len(transactions)),
	}
	for _, txn := range transactions {
		response.Transactions = append(response.Transactions, mapTransactionToResponse(txn))
	}

	return commons.SuccessResponse("transactions fetched", response), nil
}

// ownedAccount loads an account by id and rejects access unless the actor
// owns it. Admins get no bypass here: money moves only through the owner.
func (s *TransactionService) ownedAccount(ctx context.Context, actor domain.Actor, accountID string) (domain.Account, error) {
	id, err := uuid.Parse(strings.TrimSpace(accountID))
	if err != nil {
		return domain.Account{}, commons.ErrRecordNotFound
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	if account.UserID != actor.UserID {
		return domain.Account{}, commons.ErrForbidden
	}

	return account, nil
}

func descriptionOrDefault(description, fallback string) string {
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		return trimmed
	}

	return fallback
}

func transactionErrorResponse(err error, operation string) commons.Response[models.TransactionResponse] {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return commons.ErrorResponse[models.TransactionResponse]("Account not found")
	case errors.Is(err, commons.ErrForbidden):
		return commons.ErrorResponse[models.TransactionResponse](commons.ErrForbidden.Error())
	case errors.Is(err, commons.ErrInsufficientBalance):
		return commons.ErrorResponse[models.TransactionResponse](commons.ErrInsufficientBalance.Error())
	default:
		return commons.ErrorResponse[models.TransactionResponse]("failed to process "+operation, "Unable to process "+operation+" right now")
	}
}

func transferErrorResponse(err error) commons.Response[models.TransferResponse] {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return commons.ErrorResponse[models.TransferResponse]("Account not found")
	case errors.Is(err, commons.ErrForbidden):
		return commons.ErrorResponse[models.TransferResponse](commons.ErrForbidden.Error())
	case errors.Is(err, commons.ErrInsufficientBalance):
		return commons.ErrorResponse[models.TransferResponse](commons.ErrInsufficientBalance.Error())
	default:
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now")
	}
}
