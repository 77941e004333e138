package repo_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
	// GetByAccountNumber is a global lookup, not ownership-scoped. It is how
	// a transfer reaches another user's account.
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	GetCheckingForUser(ctx context.Context, userID uuid.UUID) (domain.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
}
