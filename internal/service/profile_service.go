package service

import (
	"context"
	"errors"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService serves the combined /profiles surface: account fields plus
// the nested body-profile patch, committed together.
type ProfileService interface {
	Get(ctx context.Context, accountID uuid.UUID) (*model.Account, *model.BodyProfile, error)
	Update(ctx context.Context, accountID uuid.UUID, input dto.ProfileUpdateInput) (*model.Account, *model.BodyProfile, error)
}

type profileService struct {
	accountRepo repository.AccountRepository
	bodyRepo    repository.BodyProfileRepository
	accounts    AccountService
}

func NewProfileService(accountRepo repository.AccountRepository, bodyRepo repository.BodyProfileRepository) ProfileService {
	return &profileService{
		accountRepo: accountRepo,
		bodyRepo:    bodyRepo,
		accounts:    NewAccountService(accountRepo),
	}
}

func (s *profileService) Get(ctx context.Context, accountID uuid.UUID) (*model.Account, *model.BodyProfile, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.bodyRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		profile = nil
	}

	return account, profile, nil
}

func (s *profileService) Update(ctx context.Context, accountID uuid.UUID, input dto.ProfileUpdateInput) (*model.Account, *model.BodyProfile, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	if err := applyAccountPatch(account, input.AccountPatch); err != nil {
		return nil, nil, err
	}

	var profile *model.BodyProfile
	if input.BodyProfile != nil {
		profile, err = s.bodyRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, err
			}
			profile = model.NewBodyProfile(accountID)
		}

		if err := applyBodyPatch(profile, *input.BodyProfile); err != nil {
			return nil, nil, err
		}
	}

	// One transaction for both rows; nothing is half-written.
	if err := s.accountRepo.Update(ctx, account, profile); err != nil {
		return nil, nil, err
	}

	if profile == nil {
		profile, err = s.bodyRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, err
			}
			profile = nil
		}
	}

	return account, profile, nil
}
