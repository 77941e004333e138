package repo_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
)

type LoanRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Loan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Loan, error)
}
