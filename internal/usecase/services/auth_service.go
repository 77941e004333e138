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
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Verify that AuthService implements the service_interfaces.AuthService interface
var _ service_interfaces.AuthService = (*AuthService)(nil)

const defaultAccountCurrency = "USD"

// accountNumberAttempts bounds the retry loop for the generated default
// account number before registration gives up.
const accountNumberAttempts = 5

type AuthService struct {
	userRepo    repo_interfaces.UserRepository
	accountRepo repo_interfaces.AccountRepository
	jwtSecret   []byte
	jwtTTL      time.Duration
}

func NewAuthService(
	userRepo repo_interfaces.UserRepository,
	accountRepo repo_interfaces.AccountRepository,
	jwtSecret string,
	jwtTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		jwtSecret:   []byte(jwtSecret),
		jwtTTL:      jwtTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error) {
	logger.Info("auth service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("auth service register validation failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error()), err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	firstName, lastName := splitFullName(req.Name)

	hash, err := bcrypt.GenerateFromPassword([]byte(normalizeSeedPhrase(req.SeedPhrase)), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("auth service register hash failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	user := domain.User{
		Email:          email,
		Username:       usernameFromEmail(email),
		FirstName:      firstName,
		LastName:       lastName,
		Country:        strings.TrimSpace(req.Country),
		Role:           domain.RoleUser,
		SeedPhraseHash: string(hash),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, commons.ErrDuplicateRecord) {
			return commons.ErrorResponse[models.AuthResponse]("validation failed", "email is already registered"), err
		}
		logger.Error("auth service register create user failed", err, logger.Fields{"email": email})
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	// Every new user gets a default checking account. The generated number
	// can collide, so retry on the unique constraint.
	account := domain.Account{
		UserID:      created.ID,
		AccountType: domain.AccountTypeChecking,
		Currency:    defaultAccountCurrency,
	}
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		account.AccountNumber = generateAccountNumber()
		_, err = s.accountRepo.Create(ctx, account)
		if err == nil || !errors.Is(err, commons.ErrDuplicateRecord) {
			break
		}
	}
	if err != nil {
		logger.Error("auth service register create default account failed", err, logger.Fields{"userId": created.ID.String()})
		// The user and the account live in different repositories, so undo
		// the user insert rather than leave an account-less registration.
		if deleteErr := s.userRepo.Delete(ctx, created.ID); deleteErr != nil {
			logger.Error("auth service register rollback user failed", deleteErr, logger.Fields{"userId": created.ID.String()})
		}
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	token, err := s.issueToken(created)
	if err != nil {
		logger.Error("auth service register issue token failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	response := models.AuthResponse{
		Token: token,
		User:  mapUserToResponse(created),
	}

	logger.Info("auth service register completed", logger.Fields{
		"userId": created.ID.String(),
		"email":  created.Email,
	})
	return commons.SuccessResponse("registration successful", response), nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error) {
	logger.Info("auth service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error()), err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			err := fmt.Errorf("invalid credentials")
			return commons.ErrorResponse[models.AuthResponse]("authentication failed", err.Error()), err
		}
		logger.Error("auth service login lookup failed", err, logger.Fields{"email": email})
		return commons.ErrorResponse[models.AuthResponse]("failed to login", "Unable to login right now"), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SeedPhraseHash), []byte(normalizeSeedPhrase(req.SeedPhrase))); err != nil {
		err := fmt.Errorf("invalid credentials")
		return commons.ErrorResponse[models.AuthResponse]("authentication failed", err.Error()), err
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("auth service login issue token failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("failed to login", "Unable to login right now"), err
	}

	response := models.AuthResponse{
		Token: token,
		User:  mapUserToResponse(user),
	}

	logger.Info("auth service login completed", logger.Fields{"userId": user.ID.String()})
	return commons.SuccessResponse("login successful", response), nil
}

func (s *AuthService) Me(ctx context.Context, actor domain.Actor) (commons.Response[models.UserResponse], error) {
	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.UserResponse]("User not found"), err
		}
		logger.Error("auth service me lookup failed", err, logger.Fields{"userId": actor.UserID.String()})
		return commons.ErrorResponse[models.UserResponse]("failed to fetch profile", "Unable to fetch profile right now"), err
	}

	return commons.SuccessResponse("profile fetched", mapUserToResponse(user)), nil
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.jwtTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// normalizeSeedPhrase makes whitespace and casing differences irrelevant so
// the same words always verify against the stored hash.
func normalizeSeedPhrase(seedPhrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(seedPhrase)), " ")
}

func splitFullName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}

	return parts[0], strings.Join(parts[1:], " ")
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return email
}
