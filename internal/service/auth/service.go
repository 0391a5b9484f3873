package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
)

const accessTokenExpiry = 12 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Service interface {
	Login(ctx context.Context, input domain.LoginInput) (*domain.TokenResponse, error)
	ValidateAccessToken(token string) (*Claims, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

type service struct {
	adminUserRepo repository.AdminUserRepository
	cfg           *config.Config
}

func NewService(adminUserRepo repository.AdminUserRepository, cfg *config.Config) Service {
	return &service{
		adminUserRepo: adminUserRepo,
		cfg:           cfg,
	}
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.TokenResponse, error) {
	user, err := s.adminUserRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, err
	}

	return &domain.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int64(accessTokenExpiry.Seconds()),
	}, nil
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// EnsureAdmin provisions the configured admin account at startup. The
// password hash is rewritten on every boot so a changed ADMIN_PASSWORD
// takes effect without manual intervention.
func (s *service) EnsureAdmin(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.adminUserRepo.Upsert(ctx, &domain.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashed),
	})
}
