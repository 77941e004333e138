package service_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
)

type AccountService interface {
	CreateAccount(ctx context.Context, actor domain.Actor, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context, actor domain.Actor) (commons.Response[models.AccountListResponse], error)
}
