package repo_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
)

type TransactionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error)
}
