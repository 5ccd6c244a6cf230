package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/pkg/apperror"
)

// fakeAccountRepo is an in-memory AccountRepository for service tests.
type fakeAccountRepo struct {
	byID    map[uuid.UUID]*model.Account
	byEmail map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:    make(map[uuid.UUID]*model.Account),
		byEmail: make(map[string]*model.Account),
	}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if _, ok := r.byEmail[account.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.byID[account.ID] = account
	r.byEmail[account.Email] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Account, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*model.Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *model.Account, _ *model.BodyProfile) error {
	r.byID[account.ID] = account
	r.byEmail[account.Email] = account
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	account, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byEmail, account.Email)
	delete(r.byID, id)
	return nil
}

const testSecret = "test-secret"

func signupInput() dto.SignupInput {
	return dto.SignupInput{
		Email:     "Jane@Example.com",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+123456",
		UserType:  model.AccountTypeIndividual,
	}
}

func TestAuthService_Signup(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	res, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	assert.Equal(t, "Account created successfully", res.Message)
	assert.NotEmpty(t, res.AccessToken)
	require.NotNil(t, res.Account)
	assert.Equal(t, "jane@example.com", res.Account.Email)
	assert.NotEqual(t, "secret123", res.Account.PasswordHash)

	// Token subject is the account id.
	token, err := jwt.ParseWithClaims(res.AccessToken, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, res.Account.ID.String(), claims.Subject)
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	input := signupInput()
	input.Password = "short"

	_, err := svc.Signup(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Empty(t, repo.byEmail)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestAuthService_Signin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	res, err := svc.Signin(context.Background(), dto.SigninInput{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)
	assert.NotEmpty(t, res.AccessToken)
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	_, err = svc.Signin(context.Background(), dto.SigninInput{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestAuthService_Signin_UnknownEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Signin(context.Background(), dto.SigninInput{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	// Unknown email and wrong password are indistinguishable.
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestAuthService_Verify(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	res, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	account, err := svc.Verify(context.Background(), res.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, account.ID)

	_, err = svc.Verify(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
