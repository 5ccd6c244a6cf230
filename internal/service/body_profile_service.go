package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/internal/repository"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/jsonx"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BodyProfileService interface {
	// Get returns the stored profile or ErrNotFound; no row is created.
	Get(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error)
	// GetOrCreate returns the stored profile, lazily persisting a default one.
	GetOrCreate(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error)
	// Upsert merges the patch into the stored profile, creating it with
	// defaults first if absent. created reports which of the two happened.
	Upsert(ctx context.Context, accountID uuid.UUID, patch dto.BodyProfilePatch) (profile *model.BodyProfile, created bool, err error)
	// Reset restores every field to its default.
	Reset(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error)
}

type bodyProfileService struct {
	repo repository.BodyProfileRepository
}

func NewBodyProfileService(repo repository.BodyProfileRepository) BodyProfileService {
	return &bodyProfileService{repo: repo}
}

func (s *bodyProfileService) Get(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error) {
	profile, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "body profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (s *bodyProfileService) GetOrCreate(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error) {
	profile, err := s.repo.FindByAccountID(ctx, accountID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = model.NewBodyProfile(accountID)
	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *bodyProfileService) Upsert(ctx context.Context, accountID uuid.UUID, patch dto.BodyProfilePatch) (*model.BodyProfile, bool, error) {
	profile, err := s.repo.FindByAccountID(ctx, accountID)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		profile = model.NewBodyProfile(accountID)
		created = true
	}

	if err := applyBodyPatch(profile, patch); err != nil {
		return nil, false, err
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, false, err
	}

	return profile, created, nil
}

func (s *bodyProfileService) Reset(ctx context.Context, accountID uuid.UUID) (*model.BodyProfile, error) {
	profile, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "body profile not found")
		}
		return nil, err
	}

	profile.ResetToDefaults()

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// applyBodyPatch is the profile merge engine. It mutates profile in place
// according to the field-category rules and reports the first invalid field;
// callers must not persist anything when it errors.
func applyBodyPatch(profile *model.BodyProfile, patch dto.BodyProfilePatch) error {
	// Avatar proportions: overwrite when present, null not allowed.
	scalars := []struct {
		name  string
		in    jsonx.Float
		field *float64
	}{
		{"height", patch.Height, &profile.Height},
		{"width", patch.Width, &profile.Width},
		{"build", patch.Build, &profile.Build},
		{"head", patch.Head, &profile.Head},
	}
	for _, sc := range scalars {
		if !sc.in.Set {
			continue
		}
		if !sc.in.Valid {
			return apperror.Wrap(apperror.ErrInvalidInput, fmt.Sprintf("%s must be a number", sc.name))
		}
		*sc.field = sc.in.Value
	}

	// Nullable measurements: overwrite when present, clear on null.
	measurements := []struct {
		in    jsonx.Float
		field **float64
	}{
		{patch.Weight, &profile.Weight},
		{patch.Chest, &profile.Chest},
		{patch.Waist, &profile.Waist},
		{patch.Hips, &profile.Hips},
		{patch.ShoulderWidth, &profile.ShoulderWidth},
		{patch.ArmLength, &profile.ArmLength},
		{patch.Inseam, &profile.Inseam},
		{patch.Thigh, &profile.Thigh},
		{patch.Neck, &profile.Neck},
		{patch.Calf, &profile.Calf},
		{patch.Wrist, &profile.Wrist},
	}
	for _, m := range measurements {
		if !m.in.Set {
			continue
		}
		if m.in.Valid {
			v := m.in.Value
			*m.field = &v
		} else {
			*m.field = nil
		}
	}

	if patch.Gender.Set {
		if trimmed := strings.TrimSpace(patch.Gender.Value); patch.Gender.Valid && trimmed != "" {
			profile.Gender = &trimmed
		} else {
			profile.Gender = nil
		}
	}

	if patch.Age.Set {
		if patch.Age.Valid {
			v := patch.Age.Value
			profile.Age = &v
		} else {
			profile.Age = nil
		}
	}

	// Preference collections: full replacement, null means empty.
	collections := []struct {
		in    jsonx.StringList
		field *string
	}{
		{patch.Patterns, &profile.Patterns},
		{patch.Necklines, &profile.Necklines},
		{patch.Sleeves, &profile.Sleeves},
		{patch.TopStyles, &profile.TopStyles},
		{patch.FabricTextures, &profile.FabricTextures},
	}
	for _, col := range collections {
		if !col.in.Set {
			continue
		}
		*col.field = jsonx.EncodeList(col.in.Value)
	}

	if patch.FabricTypes.Set {
		profile.FabricTypes = jsonx.EncodeMap(patch.FabricTypes.Value)
	}

	if patch.MeasurementUnit.Set {
		if !patch.MeasurementUnit.Valid || !model.ValidMeasurementUnit(patch.MeasurementUnit.Value) {
			return apperror.Wrap(apperror.ErrInvalidInput,
				"invalid measurement_unit, must be one of: cm, inches")
		}
		profile.MeasurementUnit = patch.MeasurementUnit.Value
	}

	return nil
}
