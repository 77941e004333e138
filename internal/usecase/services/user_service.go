package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/adapter/repository/repo_interfaces"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/apexbank/apexbank-api/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

// Verify that UserService implements the service_interfaces.UserService interface
var _ service_interfaces.UserService = (*UserService)(nil)

// recentTransactionsLimit caps the transaction slice in the admin details view.
const recentTransactionsLimit = 10

type UserService struct {
	userRepo        repo_interfaces.UserRepository
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
	cardRepo        repo_interfaces.CardRepository
	loanRepo        repo_interfaces.LoanRepository
}

func NewUserService(
	userRepo repo_interfaces.UserRepository,
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
	cardRepo repo_interfaces.CardRepository,
	loanRepo repo_interfaces.LoanRepository,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		loanRepo:        loanRepo,
	}
}

// UpdateProfile lets the authenticated user edit their own name and
// country. Email, username and role stay admin-managed.
func (s *UserService) UpdateProfile(ctx context.Context, actor domain.Actor, req models.UpdateProfileRequest) (commons.Response[models.UserResponse], error) {
	logger.Info("user service profile update request", logger.Fields{
		"userId":  actor.UserID.String(),
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.UserResponse]("validation failed", err.Error()), err
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		if !errors.Is(err, commons.ErrRecordNotFound) {
			logger.Error("user service profile lookup failed", err, logger.Fields{"userId": actor.UserID.String()})
		}
		return userErrorResponse(err), err
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Country != nil {
		user.Country = strings.TrimSpace(*req.Country)
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		logger.Error("user service profile update failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.UserResponse]("failed to update profile", "Unable to update profile right now"), err
	}

	logger.Info("user service profile update completed", logger.Fields{"userId": updated.ID.String()})
	return commons.SuccessResponse("profile updated", mapUserToResponse(updated)), nil
}

func (s *UserService) ListUsers(ctx context.Context, actor domain.Actor) (commons.Response[models.UserListResponse], error) {
	if !actor.IsAdmin() {
		return commons.ErrorResponse[models.UserListResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("user service list failed", err, nil)
		return commons.ErrorResponse[models.UserListResponse]("failed to fetch users", "Unable to fetch users right now"), err
	}

	response := models.UserListResponse{
		Count: len(users),
		Users: make([]models.UserResponse, 0, len(users)),
	}
	for _, user := range users {
		response.Users = append(response.Users, mapUserToResponse(user))
	}

	return commons.SuccessResponse("users fetched", response), nil
}

func (s *UserService) GetUser(ctx context.Context, actor domain.Actor, id string) (commons.Response[models.UserResponse], error) {
	if !actor.IsAdmin() {
		return commons.ErrorResponse[models.UserResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}

	user, err := s.lookupUser(ctx, id)
	if err != nil {
		return userErrorResponse(err), err
	}

	return commons.SuccessResponse("user fetched", mapUserToResponse(user)), nil
}

func (s *UserService) UpdateUser(ctx context.Context, actor domain.Actor, id string, req models.UpdateUserRequest) (commons.Response[models.UserResponse], error) {
	logger.Info("user service update request", logger.Fields{
		"adminId": actor.UserID.String(),
		"userId":  id,
		"payload": logger.SanitizePayload(req),
	})

	if !actor.IsAdmin() {
		return commons.ErrorResponse[models.UserResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.UserResponse]("validation failed", err.Error()), err
	}

	user, err := s.lookupUser(ctx, id)
	if err != nil {
		return userErrorResponse(err), err
	}

	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Username = strings.TrimSpace(req.Username)
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Country = strings.TrimSpace(req.Country)
	user.Role = domain.Role(strings.TrimSpace(req.Role))

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, commons.ErrDuplicateRecord) {
			return commons.ErrorResponse[models.UserResponse]("validation failed", "email or username is already taken"), err
		}
		logger.Error("user service update failed", err, logger.Fields{"userId": id})
		return commons.ErrorResponse[models.UserResponse]("failed to update user", "Unable to update user right now"), err
	}

	logger.Info("user service update completed", logger.Fields{"userId": updated.ID.String()})
	return commons.SuccessResponse("user updated", mapUserToResponse(updated)), nil
}

func (s *UserService) DeleteUser(ctx context.Context, actor domain.Actor, id string) (commons.Response[struct{}], error) {
	logger.Info("user service delete request", logger.Fields{
		"adminId": actor.UserID.String(),
		"userId":  id,
	})

	if !actor.IsAdmin() {
		return commons.ErrorResponse[struct{}](commons.ErrForbidden.Error()), commons.ErrForbidden
	}

	user, err := s.lookupUser(ctx, id)
	if err != nil {
		return userDeleteErrorResponse(err), err
	}
	if user.ID == actor.UserID {
		err := fmt.Errorf("cannot delete your own account")
		return commons.ErrorResponse[struct{}]("validation failed", err.Error()), err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		logger.Error("user service delete failed", err, logger.Fields{"userId": id})
		return commons.ErrorResponse[struct{}]("failed to delete user", "Unable to delete user right now"), err
	}

	logger.Info("user service delete completed", logger.Fields{"userId": id})
	return commons.SuccessResponse("user deleted", struct{}{}), nil
}

func (s *UserService) GetUserDetails(ctx context.Context, actor domain.Actor, id string) (commons.Response[models.UserDetailsResponse], error) {
	if !actor.IsAdmin() {
		return commons.ErrorResponse[models.UserDetailsResponse](commons.ErrForbidden.Error()), commons.ErrForbidden
	}

	user, err := s.lookupUser(ctx, id)
	if err != nil {
		return userDetailsErrorResponse(err), err
	}

	accounts, err := s.accountRepo.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Error("user service details accounts failed", err, logger.Fields{"userId": id})
		return commons.ErrorResponse[models.UserDetailsResponse]("failed to fetch user details", "Unable to fetch user details right now"), err
	}
	transactions, err := s.transactionRepo.ListRecentByUser(ctx, user.ID, recentTransactionsLimit)
	if err != nil {
		logger.Error("user service details transactions failed", err, logger.Fields{"userId": id})
		return commons.ErrorResponse[models.UserDetailsResponse]("failed to fetch user details", "Unable to fetch user details right now"), err
	}
	cards, err := s.cardRepo.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Error("user service details cards failed", err, logger.Fields{"userId": id})
		return commons.ErrorResponse[models.UserDetailsResponse]("failed to fetch user details", "Unable to fetch user details right now"), err
	}
	loans, err := s.loanRepo.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Error("user service details loans failed", err, logger.Fields{"userId": id})
		return commons.ErrorResponse[models.UserDetailsResponse]("failed to fetch user details", "Unable to fetch user details right now"), err
	}

	details := models.UserDetailsResponse{
		User:         mapUserToResponse(user),
		Accounts:     make([]models.AccountResponse, 0, len(accounts)),
		Transactions: make([]models.TransactionResponse, 0, len(transactions)),
		Cards:        make([]models.CardResponse, 0, len(cards)),
		Loans:        make([]models.LoanResponse, 0, len(loans)),
	}
	for _, account := range accounts {
		details.Accounts = append(details.Accounts, mapAccountToResponse(account))
	}
	for _, txn := range transactions {
		details.Transactions = append(details.Transactions, mapTransactionToResponse(txn))
	}
	for _, card := range cards {
		details.Cards = append(details.Cards, mapCardToResponse(card))
	}
	for _, loan := range loans {
		details.Loans = append(details.Loans, mapLoanToResponse(loan))
	}

	return commons.SuccessResponse("user details fetched", details), nil
}

func (s *UserService) lookupUser(ctx context.Context, id string) (domain.User, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return domain.User{}, commons.ErrRecordNotFound
	}

	return s.userRepo.GetByID(ctx, parsed)
}

func userErrorResponse(err error) commons.Response[models.UserResponse] {
	if errors.Is(err, commons.ErrRecordNotFound) {
		return commons.ErrorResponse[models.UserResponse]("User not found")
	}

	return commons.ErrorResponse[models.UserResponse]("failed to fetch user", "Unable to fetch user right now")
}

func userDeleteErrorResponse(err error) commons.Response[struct{}] {
	if errors.Is(err, commons.ErrRecordNotFound) {
		return commons.ErrorResponse[struct{}]("User not found")
	}

	return commons.ErrorResponse[struct{}]("failed to delete user", "Unable to delete user right now")
}

func userDetailsErrorResponse(err error) commons.Response[models.UserDetailsResponse] {
	if errors.Is(err, commons.ErrRecordNotFound) {
		return commons.ErrorResponse[models.UserDetailsResponse]("User not found")
	}

	return commons.ErrorResponse[models.UserDetailsResponse]("failed to fetch user details", "Unable to fetch user details right now")
}
