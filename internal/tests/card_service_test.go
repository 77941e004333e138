package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/usecase/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCardServiceOrderStartsPendingApproval(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	var captured domain.Card
	svc := services.NewCardService(
		userRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.User, error) {
				return domain.User{ID: userID, FirstName: "Ada", LastName: "Obi"}, nil
			},
		},
		accountRepoStub{
			getCheckingForUserFn: func(context.Context, uuid.UUID) (domain.Account, error) {
				return domain.Account{ID: accountID, UserID: userID}, nil
			},
		},
		cardRepoStub{
			createFn: func(_ context.Context, card domain.Card) (domain.Card, error) {
				captured = card
				card.ID = uuid.New()
				return card, nil
			},
		},
	)

	resp, err := svc.OrderCard(context.Background(), domain.Actor{UserID: userID}, models.OrderCardRequest{
		CardType: "debit",
		Amount:   decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Equal(t, domain.CardStatusPendingPayment, captured.Status)
	require.Equal(t, domain.PurchaseStatusPendingApproval, captured.PurchaseStatus)
	require.Equal(t, domain.ApprovalStatusPending, captured.ApprovalStatus)
	require.Equal(t, "Ada Obi", captured.CardName)
	require.Len(t, captured.CardNumber, 16)
	require.Len(t, captured.CVV, 3)

	require.NotNil(t, captured.PaymentDeadline)
	deadline := time.Until(*captured.PaymentDeadline)
	require.InDelta(t, 7*24, deadline.Hours(), 1)

	yearsOut := time.Until(captured.ExpiryDate).Hours() / 24 / 365
	require.InDelta(t, 4, yearsOut, 0.1)
}

func TestCardServiceDecideRequiresAdmin(t *testing.T) {
	svc := services.NewCardService(userRepoStub{}, accountRepoStub{}, cardRepoStub{})

	_, err := svc.DecideCard(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}, uuid.New().String(), models.CardDecisionRequest{Action: "approve"})
	require.ErrorIs(t, err, commons.ErrForbidden)

	_, err = svc.ListPendingCards(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleUser})
	require.ErrorIs(t, err, commons.ErrForbidden)
}

func TestCardServiceApproveMovesStatusesInLockstep(t *testing.T) {
	adminID := uuid.New()
	cardID := uuid.New()

	var updated domain.Card
	svc := services.NewCardService(
		userRepoStub{},
		accountRepoStub{},
		cardRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Card, error) {
				return domain.Card{
					ID:             cardID,
					Status:         domain.CardStatusPendingPayment,
					PurchaseStatus: domain.PurchaseStatusPendingApproval,
					ApprovalStatus: domain.ApprovalStatusPending,
				}, nil
			},
			updateApprovalFn: func(_ context.Context, card domain.Card) (domain.Card, error) {
				updated = card
				return card, nil
			},
		},
	)

	resp, err := svc.DecideCard(context.Background(), domain.Actor{UserID: adminID, Role: domain.RoleAdmin}, cardID.String(), models.CardDecisionRequest{Action: "approve"})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Equal(t, domain.CardStatusActive, updated.Status)
	require.Equal(t, domain.PurchaseStatusApproved, updated.PurchaseStatus)
	require.Equal(t, domain.ApprovalStatusApproved, updated.ApprovalStatus)
	require.Equal(t, adminID, *updated.ApprovedBy)
	require.NotNil(t, updated.ApprovalDate)
	require.Nil(t, updated.RejectionReason)
}

func TestCardServiceDeclineDefaultsRejectionReason(t *testing.T) {
	adminID := uuid.New()
	cardID := uuid.New()

	var updated domain.Card
	svc := services.NewCardService(
		userRepoStub{},
		accountRepoStub{},
		cardRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Card, error) {
				return domain.Card{ID: cardID, ApprovalStatus: domain.ApprovalStatusPending}, nil
			},
			updateApprovalFn: func(_ context.Context, card domain.Card) (domain.Card, error) {
				updated = card
				return card, nil
			},
		},
	)

	_, err := svc.DecideCard(context.Background(), domain.Actor{UserID: adminID, Role: domain.RoleAdmin}, cardID.String(), models.CardDecisionRequest{Action: "decline"})
	require.NoError(t, err)

	require.Equal(t, domain.CardStatusRejected, updated.Status)
	require.Equal(t, domain.PurchaseStatusDeclined, updated.PurchaseStatus)
	require.Equal(t, domain.ApprovalStatusDeclined, updated.ApprovalStatus)
	require.Equal(t, "No reason provided", *updated.RejectionReason)
	require.Equal(t, adminID, *updated.RejectedBy)
}

func TestCardServiceDecideRejectsAlreadyDecidedCard(t *testing.T) {
	svc := services.NewCardService(
		userRepoStub{},
		accountRepoStub{},
		cardRepoStub{
			getByIDFn: func(context.Context, uuid.UUID) (domain.Card, error) {
				return domain.Card{ID: uuid.New(), ApprovalStatus: domain.ApprovalStatusApproved}, nil
			},
		},
	)

	resp, err := svc.DecideCard(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}, uuid.New().String(), models.CardDecisionRequest{Action: "approve"})
	require.Error(t, err)
	require.Equal(t, "validation failed", resp.Message)
}
