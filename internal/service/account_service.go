package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/internal/repository"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/jsonx"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountService interface {
	Get(ctx context.Context, accountID uuid.UUID) (*model.Account, error)
	Update(ctx context.Context, accountID uuid.UUID, patch dto.AccountPatch) (*model.Account, error)
	// Delete removes the account; the store cascades to the body profile,
	// designs, conversations and their messages.
	Delete(ctx context.Context, accountID uuid.UUID) (*model.Account, error)
}

type accountService struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Get(ctx context.Context, accountID uuid.UUID) (*model.Account, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "account not found")
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) Update(ctx context.Context, accountID uuid.UUID, patch dto.AccountPatch) (*model.Account, error) {
	account, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := applyAccountPatch(account, patch); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, account, nil); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *accountService) Delete(ctx context.Context, accountID uuid.UUID) (*model.Account, error) {
	account, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, accountID); err != nil {
		return nil, err
	}

	return account, nil
}

// applyAccountPatch applies the two-tier rule to account fields: overwrite
// when the key is present (names and phone trimmed of whitespace, empty
// clears), preserve when absent. account_type must be a recognized category.
func applyAccountPatch(account *model.Account, patch dto.AccountPatch) error {
	textFields := []struct {
		in    jsonx.String
		field **string
	}{
		{patch.FirstName, &account.FirstName},
		{patch.LastName, &account.LastName},
		{patch.Phone, &account.Phone},
	}
	for _, f := range textFields {
		if !f.in.Set {
			continue
		}
		if trimmed := strings.TrimSpace(f.in.Value); f.in.Valid && trimmed != "" {
			*f.field = &trimmed
		} else {
			*f.field = nil
		}
	}

	if patch.AccountType.Set {
		if !patch.AccountType.Valid || !model.ValidAccountType(patch.AccountType.Value) {
			return apperror.Wrap(apperror.ErrInvalidInput,
				"invalid account_type, must be one of: individual, business, student")
		}
		account.AccountType = patch.AccountType.Value
	}

	return nil
}
