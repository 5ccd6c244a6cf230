package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/internal/repository"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type AuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthResponse, error)
	Signin(ctx context.Context, input dto.SigninInput) (*dto.AuthResponse, error)
	// Verify resolves an already-authenticated account id back to its account.
	Verify(ctx context.Context, accountID uuid.UUID) (*model.Account, error)
}

type authService struct {
	repo     repository.AccountRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.AccountRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthResponse, error) {
	if len(input.Password) < minPasswordLength {
		return nil, apperror.Wrap(apperror.ErrInvalidInput, "password must be at least 6 characters")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperror.Wrap(apperror.ErrConflict, "account already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	phone := strings.TrimSpace(input.Phone)

	account := &model.Account{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    &firstName,
		LastName:     &lastName,
		Phone:        &phone,
		AccountType:  input.UserType,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		// Two signups racing on the same email: the loser lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Wrap(apperror.ErrConflict, "account already exists")
		}
		return nil, err
	}

	return s.buildAuthResponse(account, "Account created successfully")
}

func (s *authService) Signin(ctx context.Context, input dto.SigninInput) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUnauthorized, "invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.Wrap(apperror.ErrUnauthorized, "invalid credentials")
	}

	return s.buildAuthResponse(account, "Login successful")
}

func (s *authService) Verify(ctx context.Context, accountID uuid.UUID) (*model.Account, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "account not found")
		}
		return nil, err
	}
	return account, nil
}

func (s *authService) buildAuthResponse(account *model.Account, message string) (*dto.AuthResponse, error) {
	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:     message,
		Account:     account,
		AccessToken: token,
	}, nil
}

func (s *authService) generateToken(account *model.Account) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   account.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
