package service_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
)

type TransactionService interface {
	Deposit(ctx context.Context, actor domain.Actor, req models.DepositRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, actor domain.Actor, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error)
	Transfer(ctx context.Context, actor domain.Actor, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	ListTransactions(ctx context.Context, actor domain.Actor, page, limit int) (commons.Response[models.TransactionListResponse], error)
}
