package service_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
)

type LoanService interface {
	Apply(ctx context.Context, actor domain.Actor, req models.LoanApplicationRequest) (commons.Response[models.LoanApplicationResponse], error)
	Repay(ctx context.Context, actor domain.Actor, loanID string, req models.LoanPaymentRequest) (commons.Response[models.LoanPaymentResponse], error)
	ListLoans(ctx context.Context, actor domain.Actor) (commons.Response[models.LoanListResponse], error)
}
