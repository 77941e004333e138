package repo_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
)

type CardRepository interface {
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	ListPendingApproval(ctx context.Context) ([]domain.Card, error)
	// UpdateApproval persists the three approval-related status fields and
	// the approval/rejection metadata in one statement.
	UpdateApproval(ctx context.Context, card domain.Card) (domain.Card, error)
}
