package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/google/uuid"
)

type CardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = `id, user_id, account_id, card_number, card_type, card_name, expiry_date, cvv,
	status, purchase_status, approval_status, purchase_amount, payment_deadline,
	approval_date, approved_by, rejection_reason, rejection_date, rejected_by, created_at`

func (r *CardRepository) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	const query = `
INSERT INTO cards (
	user_id,
	account_id,
	card_number,
	card_type,
	card_name,
	expiry_date,
	cvv,
	status,
	purchase_status,
	approval_status,
	purchase_amount,
	payment_deadline
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		card.UserID,
		card.AccountID,
		card.CardNumber,
		card.CardType,
		card.CardName,
		card.ExpiryDate,
		card.CVV,
		card.Status,
		card.PurchaseStatus,
		card.ApprovalStatus,
		card.PurchaseAmount,
		card.PaymentDeadline,
	).Scan(&card.ID, &card.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Card{}, commons.ErrDuplicateRecord
		}
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}

	return card, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Card{}, commons.ErrRecordNotFound
		}
		return domain.Card{}, err
	}
	return card, nil
}

func (r *CardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listCards(ctx, query, userID)
}

func (r *CardRepository) ListPendingApproval(ctx context.Context) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE approval_status = 'pending' ORDER BY created_at ASC`
	return r.listCards(ctx, query)
}

func (r *CardRepository) UpdateApproval(ctx context.Context, card domain.Card) (domain.Card, error) {
	const query = `
UPDATE cards
SET status = $2,
    purchase_status = $3,
    approval_status = $4,
    approval_date = $5,
    approved_by = $6,
    rejection_reason = $7,
    rejection_date = $8,
    rejected_by = $9
WHERE id = $1
RETURNING created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		card.ID,
		card.Status,
		card.PurchaseStatus,
		card.ApprovalStatus,
		card.ApprovalDate,
		card.ApprovedBy,
		card.RejectionReason,
		card.RejectionDate,
		card.RejectedBy,
	).Scan(&card.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Card{}, commons.ErrRecordNotFound
		}
		return domain.Card{}, fmt.Errorf("update card approval: %w", err)
	}

	return card, nil
}

func (r *CardRepository) listCards(ctx context.Context, query string, args ...any) ([]domain.Card, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func scanCard(row rowScanner) (domain.Card, error) {
	var (
		card            domain.Card
		paymentDeadline sql.NullTime
		approvalDate    sql.NullTime
		approvedBy      uuid.NullUUID
		rejectionReason sql.NullString
		rejectionDate   sql.NullTime
		rejectedBy      uuid.NullUUID
	)

	if err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.AccountID,
		&card.CardNumber,
		&card.CardType,
		&card.CardName,
		&card.ExpiryDate,
		&card.CVV,
		&card.Status,
		&card.PurchaseStatus,
		&card.ApprovalStatus,
		&card.PurchaseAmount,
		&paymentDeadline,
		&approvalDate,
		&approvedBy,
		&rejectionReason,
		&rejectionDate,
		&rejectedBy,
		&card.CreatedAt,
	); err != nil {
		return domain.Card{}, err
	}

	if paymentDeadline.Valid {
		card.PaymentDeadline = &paymentDeadline.Time
	}
	if approvalDate.Valid {
		card.ApprovalDate = &approvalDate.Time
	}
	if approvedBy.Valid {
		card.ApprovedBy = &approvedBy.UUID
	}
	card.RejectionReason = stringPtr(rejectionReason)
	if rejectionDate.Valid {
		card.RejectionDate = &rejectionDate.Time
	}
	if rejectedBy.Valid {
		card.RejectedBy = &rejectedBy.UUID
	}

	return card, nil
}
