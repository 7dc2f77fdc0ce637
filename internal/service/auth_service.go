package service

import (
	"context"
	"errors"
	"time"

	"github.com/ayune/ayune-backend/internal/config"
	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/ayune/ayune-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	accountRepo    repository.AccountRepository
	credentialRepo repository.CredentialRepository
	cfg            *config.Config
}

func NewAuthService(accountRepo repository.AccountRepository, credentialRepo repository.CredentialRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accountRepo:    accountRepo,
		credentialRepo: credentialRepo,
		cfg:            cfg,
	}
}

type SignupInput struct {
	Name          string
	Email         string
	Phone         string
	Secret        string
	ConfirmSecret string
	Gender        string
	Birthdate     string
}

type LoginInput struct {
	Email  string
	Secret string
}

type LoginResult struct {
	Account *domain.Account
	Token   string
}

// Signup creates the account and its credential atomically and returns
// the new account id. No token is issued; callers log in separately.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (uuid.UUID, error) {
	if input.Secret != input.ConfirmSecret {
		return uuid.Nil, domain.ErrPasswordMismatch
	}

	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	account := &domain.Account{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Gender:    domain.NormalizeGender(input.Gender),
		Birthdate: input.Birthdate,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	credential := &domain.Credential{
		ID:         uuid.New(),
		SecretHash: string(hashedSecret),
		CreatedAt:  time.Now(),
	}

	if err := s.accountRepo.CreateWithCredential(ctx, account, credential); err != nil {
		return uuid.Nil, err
	}

	return account.ID, nil
}

// Login verifies the presented secret against the stored credential
// hash. An unknown email and a wrong secret are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	credential, err := s.credentialRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.SecretHash), []byte(input.Secret)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Account: account, Token: token}, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
		"exp":   now.Add(s.cfg.TokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *AuthService) GetAccountByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}
