package service

import (
	"context"
	"encoding/base64"
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

type DesignService interface {
	List(ctx context.Context, accountID uuid.UUID) ([]*model.Design, error)
	Get(ctx context.Context, id, accountID uuid.UUID) (*model.Design, error)
	Create(ctx context.Context, accountID uuid.UUID, input dto.CreateDesignInput) (*model.Design, error)
	Update(ctx context.Context, id, accountID uuid.UUID, patch dto.DesignPatch) (*model.Design, error)
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}

type designService struct {
	repo repository.DesignRepository
}

func NewDesignService(repo repository.DesignRepository) DesignService {
	return &designService{repo: repo}
}

func (s *designService) List(ctx context.Context, accountID uuid.UUID) ([]*model.Design, error) {
	return s.repo.FindAllByAccount(ctx, accountID)
}

func (s *designService) Get(ctx context.Context, id, accountID uuid.UUID) (*model.Design, error) {
	design, err := s.repo.FindByID(ctx, id, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "design not found")
		}
		return nil, err
	}
	return design, nil
}

func (s *designService) Create(ctx context.Context, accountID uuid.UUID, input dto.CreateDesignInput) (*model.Design, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Wrap(apperror.ErrInvalidInput, "name is required")
	}

	design := model.NewDesign(accountID, name)

	patch := dto.DesignPatch{
		Prompt:           input.Prompt,
		Color:            input.Color,
		Pattern:          input.Pattern,
		SleeveLength:     input.SleeveLength,
		Neckline:         input.Neckline,
		TrainLength:      input.TrainLength,
		Texture:          input.Texture,
		TextureIntensity: input.TextureIntensity,
		SkirtVolume:      input.SkirtVolume,
		SVG:              input.SVG,
		Thumbnail:        input.Thumbnail,
		ImageURL:         input.ImageURL,
	}
	if err := applyDesignPatch(design, patch); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, design); err != nil {
		return nil, err
	}

	return design, nil
}

func (s *designService) Update(ctx context.Context, id, accountID uuid.UUID, patch dto.DesignPatch) (*model.Design, error) {
	design, err := s.Get(ctx, id, accountID)
	if err != nil {
		return nil, err
	}

	if err := applyDesignPatch(design, patch); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, design); err != nil {
		return nil, err
	}

	return design, nil
}

func (s *designService) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	if _, err := s.Get(ctx, id, accountID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, accountID)
}

// applyDesignPatch applies present keys onto the design. Styling parameters
// are non-nullable; the free-text artifacts clear on null.
func applyDesignPatch(design *model.Design, patch dto.DesignPatch) error {
	if patch.Name.Set {
		name := strings.TrimSpace(patch.Name.Value)
		if !patch.Name.Valid || name == "" {
			return apperror.Wrap(apperror.ErrInvalidInput, "name cannot be empty")
		}
		design.Name = name
	}

	if patch.Prompt.Set {
		if patch.Prompt.Valid {
			v := patch.Prompt.Value
			design.Prompt = &v
		} else {
			design.Prompt = nil
		}
	}

	styleText := []struct {
		name  string
		in    jsonx.String
		field *string
	}{
		{"color", patch.Color, &design.Color},
		{"pattern", patch.Pattern, &design.Pattern},
		{"neckline", patch.Neckline, &design.Neckline},
		{"texture", patch.Texture, &design.Texture},
	}
	for _, f := range styleText {
		if !f.in.Set {
			continue
		}
		if !f.in.Valid || strings.TrimSpace(f.in.Value) == "" {
			return apperror.Wrap(apperror.ErrInvalidInput, f.name+" cannot be empty")
		}
		*f.field = f.in.Value
	}

	styleNumbers := []struct {
		name  string
		in    jsonx.Float
		field *float64
	}{
		{"sleeve_length", patch.SleeveLength, &design.SleeveLength},
		{"train_length", patch.TrainLength, &design.TrainLength},
		{"texture_intensity", patch.TextureIntensity, &design.TextureIntensity},
		{"skirt_volume", patch.SkirtVolume, &design.SkirtVolume},
	}
	for _, f := range styleNumbers {
		if !f.in.Set {
			continue
		}
		if !f.in.Valid {
			return apperror.Wrap(apperror.ErrInvalidInput, f.name+" must be a number")
		}
		*f.field = f.in.Value
	}

	if patch.SVG.Set {
		if patch.SVG.Valid {
			v := patch.SVG.Value
			design.SVG = &v
		} else {
			design.SVG = nil
		}
	}

	if patch.Thumbnail.Set {
		if patch.Thumbnail.Valid && patch.Thumbnail.Value != "" {
			raw, err := base64.StdEncoding.DecodeString(patch.Thumbnail.Value)
			if err != nil {
				return apperror.Wrap(apperror.ErrInvalidInput, "thumbnail must be base64-encoded")
			}
			design.Thumbnail = raw
		} else {
			design.Thumbnail = nil
		}
	}

	if patch.ImageURL.Set {
		if patch.ImageURL.Valid && patch.ImageURL.Value != "" {
			v := patch.ImageURL.Value
			design.ImageURL = &v
		} else {
			design.ImageURL = nil
		}
	}

	return nil
}
