package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/adapter/repository/repo_interfaces"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

// Verify that CardService implements the service_interfaces.CardService interface
var _ service_interfaces.CardService = (*CardService)(nil)

const (
	cardValidityYears   = 4
	paymentDeadlineDays = 7

	defaultRejectionReason = "No reason provided"
)

type CardService struct {
	userRepo    repo_interfaces.UserRepository
	accountRepo repo_interfaces.AccountRepository
	cardRepo    repo_interfaces.CardRepository
}

func NewCardService(
	userRepo repo_interfaces.UserRepository,
	accountRepo repo_interfaces.AccountRepository,
	cardRepo repo_interfaces.CardRepository,
) *CardService {
	return &CardService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
	}
}

func (s *CardService) OrderCard(ctx context.Context, actor domain.Actor, req models.OrderCardRequest) (commons.Response[models.CardResponse], error) {
	logger.Info("card service order request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.CardResponse]("validation failed", err.Error()), err
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		logger.Error("card service order user lookup failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.CardResponse]("failed to order card", "Unable to order card right now"), err
	}

	account, err := s.accountRepo.GetCheckingForUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CardResponse]("Checking account not found"), err
		}
		logger.Error("card service order account lookup failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.CardResponse]("failed to order card", "Unable to order card right now"), err
	}

	now := time.Now()
	deadline := now.AddDate(0, 0, paymentDeadlineDays)
	card := domain.Card{
		UserID:          actor.UserID,
		AccountID:       account.ID,
		CardNumber:      generateCardNumber(),
		CardType:        domain.CardType(strings.TrimSpace(req.CardType)),
		CardName:        strings.TrimSpace(user.FirstName + " " + user.LastName),
		ExpiryDate:      now.AddDate(cardValidityYears, 0, 0),
		CVV:             generateCVV(),
		Status:          domain.CardStatusPendingPayment,
		PurchaseStatus:  domain.PurchaseStatusPendingApproval,
		ApprovalStatus:  domain.ApprovalStatusPending,
		PurchaseAmount:  req.Amount.Round(2),
		PaymentDeadline: &deadline,
	}

	created, err := s.cardRepo.Create(ctx, card)
	if err != nil {
		logger.Error("card service order create failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.CardResponse]("failed to order card", "Unable to order card right now"), err
	}

	logger.Info("card service order completed", logger.Fields{"cardId": created.ID.String()})
	return commons.SuccessResponse("card ordered, pending approval", mapCardToResponse(created)), nil
}

func (s *CardService) ListCards(ctx context.Context, actor domain.Actor) (commons.Response[models.CardListResponse], error) {
	cards, err := s.cardRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		logger.Error("card service list failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.CardListResponse]("failed to fetch cards", "Unable to fetch cards right now"), err
	}

	return commons.SuccessResponse("cards fetched", mapCardList(cards)), nil
}

func (s *CardService) ListPendingCards(ctx context.Context, actor domain.Actor) (commons.Response[models.CardListResponse], error) {
	if !actor.IsAdmin() {
		return commons.ErrorResponse[models.CardListResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}

	cards, err := s.cardRepo.ListPendingApproval(ctx)
	if err != nil {
		logger.Error("card service list pending failed", err, nil)
		return commons.ErrorResponse[models.CardListResponse]("failed to fetch cards", "Unable to fetch cards right now"), err
	}

	return commons.SuccessResponse("pending cards fetched", mapCardList(cards)), nil
}

func (s *CardService) DecideCard(ctx context.Context, actor domain.Actor, cardID string, req models.CardDecisionRequest) (commons.Response[models.CardResponse], error) {
	logger.Info("card service decision request", logger.Fields{
		"adminId": actor.UserID.String(),
		"cardId":  cardID,
		"payload": logger.SanitizePayload(req),
	})

	if !actor.IsAdmin() {
		return commons.ErrorResponse[models.CardResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.CardResponse]("validation failed", err.Error()), err
	}

	id, err := uuid.Parse(strings.TrimSpace(cardID))
	if err != nil {
		return commons.ErrorResponse[models.CardResponse]("Card not found"), commons.ErrRecordNotFound
	}

	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CardResponse]("Card not found"), err
		}
		logger.Error("card service decision lookup failed", err, logger.Fields{"cardId": cardID})
		return commons.ErrorResponse[models.CardResponse]("failed to process decision", "Unable to process decision right now"), err
	}

	if card.ApprovalStatus != domain.ApprovalStatusPending {
		err := fmt.Errorf("card is not pending approval")
		return commons.ErrorResponse[models.CardResponse]("validation failed", err.Error()), err
	}

	// The three status fields always move in lockstep.
	now := time.Now()
	if strings.TrimSpace(req.Action) == "approve" {
		card.Status = domain.CardStatusActive
		card.PurchaseStatus = domain.PurchaseStatusApproved
		card.ApprovalStatus = domain.ApprovalStatusApproved
		card.ApprovalDate = &now
		card.ApprovedBy = &actor.UserID
	} else {
		reason := strings.TrimSpace(req.RejectionReason)
		if reason == "" {
			reason = defaultRejectionReason
		}
		card.Status = domain.CardStatusRejected
		card.PurchaseStatus = domain.PurchaseStatusDeclined
		card.ApprovalStatus = domain.ApprovalStatusDeclined
		card.RejectionReason = &reason
		card.RejectionDate = &now
		card.RejectedBy = &actor.UserID
	}

	updated, err := s.cardRepo.UpdateApproval(ctx, card)
	if err != nil {
		logger.Error("card service decision update failed", err, logger.Fields{"cardId": cardID})
		return commons.ErrorResponse[models.CardResponse]("failed to process decision", "Unable to process decision right now"), err
	}

	logger.Info("card service decision completed", logger.Fields{
		"cardId": updated.ID.String(),
		"status": string(updated.ApprovalStatus),
	})
	return commons.SuccessResponse("card decision recorded", mapCardToResponse(updated)), nil
}

func mapCardList(cards []domain.Card) models.CardListResponse {
	response := models.CardListResponse{
		Count: len(cards),
		Cards: make([]models.CardResponse, 0, len(cards)),
	}
	for _, card := range cards {
		response.Cards = append(response.Cards, mapCardToResponse(card))
	}

	return response
}
