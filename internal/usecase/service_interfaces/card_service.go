package service_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
)

type CardService interface {
	OrderCard(ctx context.Context, actor domain.Actor, req models.OrderCardRequest) (commons.Response[models.CardResponse], error)
	ListCards(ctx context.Context, actor domain.Actor) (commons.Response[models.CardListResponse], error)
	ListPendingCards(ctx context.Context, actor domain.Actor) (commons.Response[models.CardListResponse], error)
	DecideCard(ctx context.Context, actor domain.Actor, cardID string, req models.CardDecisionRequest) (commons.Response[models.CardResponse], error)
}
