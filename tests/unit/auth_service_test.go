package unit_test

import (
	"context"
	"testing"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/service/auth"
	"compliance-tracker/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{SessionSecret: "test-secret"}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	admin := &domain.AdminUser{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		adminRepo := new(mocks.AdminUserRepository)
		svc := auth.NewService(adminRepo, testAuthConfig())

		adminRepo.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()

		tokens, err := svc.Login(ctx, domain.LoginInput{Username: "admin", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.Greater(t, tokens.ExpiresIn, int64(0))

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, admin.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		adminRepo := new(mocks.AdminUserRepository)
		svc := auth.NewService(adminRepo, testAuthConfig())

		adminRepo.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()

		tokens, err := svc.Login(ctx, domain.LoginInput{Username: "admin", Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, tokens)
	})

	t.Run("Unknown User", func(t *testing.T) {
		adminRepo := new(mocks.AdminUserRepository)
		svc := auth.NewService(adminRepo, testAuthConfig())

		adminRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil).Once()

		tokens, err := svc.Login(ctx, domain.LoginInput{Username: "ghost", Password: "whatever"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, tokens)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	svc := auth.NewService(new(mocks.AdminUserRepository), testAuthConfig())

	t.Run("Garbage Token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := auth.NewService(new(mocks.AdminUserRepository), &config.Config{SessionSecret: "other-secret"})

		adminRepo := new(mocks.AdminUserRepository)
		hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		adminRepo.On("GetByUsername", mock.Anything, "admin").
			Return(&domain.AdminUser{ID: uuid.New(), Username: "admin", PasswordHash: string(hash)}, nil).Once()

		issuer := auth.NewService(adminRepo, testAuthConfig())
		tokens, err := issuer.Login(context.Background(), domain.LoginInput{Username: "admin", Password: "pw"})
		assert.NoError(t, err)

		claims, err := other.ValidateAccessToken(tokens.AccessToken)

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	adminRepo := new(mocks.AdminUserRepository)
	svc := auth.NewService(adminRepo, testAuthConfig())

	adminRepo.On("Upsert", ctx, mock.MatchedBy(func(u *domain.AdminUser) bool {
		if u.Username != "admin" || u.PasswordHash == "" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("boot-password")) == nil
	})).Return(nil).Once()

	err := svc.EnsureAdmin(ctx, "admin", "boot-password")

	assert.NoError(t, err)
	adminRepo.AssertExpectations(t)
}
