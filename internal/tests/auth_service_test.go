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
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSeedPhrase = "apple banana cherry date elder fig grape honey iris jade kiwi lemon"

func TestAuthServiceRegisterCreatesUserAndDefaultAccount(t *testing.T) {
	userID := uuid.New()

	var createdUser domain.User
	var createdAccount domain.Account
	svc := services.NewAuthService(
		userRepoStub{
			createFn: func(_ context.Context, user domain.User) (domain.User, error) {
				createdUser = user
				user.ID = userID
				user.CreatedAt = time.Now()
				return user, nil
			},
		},
		accountRepoStub{
			createFn: func(_ context.Context, account domain.Account) (domain.Account, error) {
				createdAccount = account
				account.ID = uuid.New()
				return account, nil
			},
		},
		"test-secret",
		time.Hour,
	)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:       "Ada Lovelace Obi",
		Email:      "Ada@Example.com",
		Country:    "NG",
		SeedPhrase: testSeedPhrase,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Token)
	require.Equal(t, "ada@example.com", resp.Data.User.Email)

	require.Equal(t, "Ada", createdUser.FirstName)
	require.Equal(t, "Lovelace Obi", createdUser.LastName)
	require.Equal(t, "ada", createdUser.Username)
	require.Equal(t, domain.RoleUser, createdUser.Role)
	require.NotEqual(t, testSeedPhrase, createdUser.SeedPhraseHash)

	require.Equal(t, userID, createdAccount.UserID)
	require.Equal(t, domain.AccountTypeChecking, createdAccount.AccountType)
	require.Equal(t, "USD", createdAccount.Currency)
	require.Len(t, createdAccount.AccountNumber, 10)
}

func TestAuthServiceRegisterRejectsShortSeedPhrase(t *testing.T) {
	svc := services.NewAuthService(userRepoStub{}, accountRepoStub{}, "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		SeedPhrase: "only five words right here",
	})
	require.Error(t, err)
}

func TestAuthServiceRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := services.NewAuthService(
		userRepoStub{
			createFn: func(context.Context, domain.User) (domain.User, error) {
				return domain.User{}, commons.ErrDuplicateRecord
			},
		},
		accountRepoStub{},
		"test-secret",
		time.Hour,
	)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		SeedPhrase: testSeedPhrase,
	})
	require.ErrorIs(t, err, commons.ErrDuplicateRecord)
	require.False(t, resp.Success)
}

func TestAuthServiceRegisterRemovesUserWhenAccountCreationFails(t *testing.T) {
	userID := uuid.New()

	var deletedID uuid.UUID
	svc := services.NewAuthService(
		userRepoStub{
			createFn: func(_ context.Context, user domain.User) (domain.User, error) {
				user.ID = userID
				return user, nil
			},
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				deletedID = id
				return nil
			},
		},
		accountRepoStub{
			createFn: func(context.Context, domain.Account) (domain.Account, error) {
				return domain.Account{}, commons.ErrDuplicateRecord
			},
		},
		"test-secret",
		time.Hour,
	)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		SeedPhrase: testSeedPhrase,
	})
	require.Error(t, err)
	require.False(t, resp.Success)
	require.Equal(t, userID, deletedID)
}

func TestAuthServiceLoginVerifiesSeedPhrase(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testSeedPhrase), bcrypt.MinCost)
	require.NoError(t, err)

	user := domain.User{
		ID:             uuid.New(),
		Email:          "ada@example.com",
		Role:           domain.RoleUser,
		SeedPhraseHash: string(hash),
	}
	svc := services.NewAuthService(
		userRepoStub{
			getByEmailFn: func(context.Context, string) (domain.User, error) {
				return user, nil
			},
		},
		accountRepoStub{},
		"test-secret",
		time.Hour,
	)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:      "ada@example.com",
		SeedPhrase: "  Apple banana cherry date elder fig grape honey iris jade kiwi LEMON ",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Data.Token)

	badResp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:      "ada@example.com",
		SeedPhrase: "wrong words entirely but still twelve of them to pass validation here now",
	})
	require.Error(t, err)
	require.Equal(t, "authentication failed", badResp.Message)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := services.NewAuthService(
		userRepoStub{
			getByEmailFn: func(context.Context, string) (domain.User, error) {
				return domain.User{}, commons.ErrRecordNotFound
			},
		},
		accountRepoStub{},
		"test-secret",
		time.Hour,
	)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:      "ghost@example.com",
		SeedPhrase: testSeedPhrase,
	})
	require.Error(t, err)
	require.Equal(t, "authentication failed", resp.Message)
}
