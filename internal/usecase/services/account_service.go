package services

import (
	"context"
	"errors"
	"strings"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/adapter/repository/repo_interfaces"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, actor domain.Actor, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account := domain.Account{
		UserID:      actor.UserID,
		AccountType: domain.AccountType(strings.TrimSpace(req.AccountType)),
		Currency:    strings.ToUpper(strings.TrimSpace(req.Currency)),
	}

	var created domain.Account
	var err error
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		account.AccountNumber = generateAccountNumber()
		created, err = s.accountRepo.Create(ctx, account)
		if err == nil || !errors.Is(err, commons.ErrDuplicateRecord) {
			break
		}
	}
	if err != nil {
		logger.Error("account service create account failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account completed", logger.Fields{
		"accountId":     created.ID.String(),
		"accountNumber": created.AccountNumber,
	})
	return commons.SuccessResponse("account created", mapAccountToResponse(created)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context, actor domain.Actor) (commons.Response[models.AccountListResponse], error) {
	accounts, err := s.accountRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		logger.Error("account service list accounts failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.AccountListResponse]("failed to fetch accounts", "Unable to fetch accounts right now"), err
	}

	response := models.AccountListResponse{
		Count:    len(accounts),
		Accounts: make([]models.AccountResponse, 0, len(accounts)),
	}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("accounts fetched", response), nil
}
