package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/genimage"
	"github.com/dresslab/dresslab-api/pkg/jsonx"
	"github.com/dresslab/dresslab-api/pkg/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const generateImageAction = "generate_image"

// ImageService is the passthrough to the external image-generation provider.
type ImageService interface {
	GenerateImage(ctx context.Context, accountID uuid.UUID, input dto.GenerateImageInput) (*dto.GenerateImageResponse, error)
	Describe(ctx context.Context, accountID uuid.UUID, input dto.DescribeInput) (*dto.DescribeResponse, error)
}

type imageService struct {
	generator    genimage.ImageGenerator // nil when no provider credential is configured
	imageStorage storage.ImageStorage    // nil when hosting is not configured
	designs      DesignService
	rdb          *redis.Client
	cooldown     time.Duration
	uploadFolder string
}

func NewImageService(
	generator genimage.ImageGenerator,
	imageStorage storage.ImageStorage,
	designs DesignService,
	rdb *redis.Client,
	cooldown time.Duration,
	uploadFolder string,
) ImageService {
	if uploadFolder == "" {
		uploadFolder = "designs"
	}
	return &imageService{
		generator:    generator,
		imageStorage: imageStorage,
		designs:      designs,
		rdb:          rdb,
		cooldown:     cooldown,
		uploadFolder: uploadFolder,
	}
}

func (s *imageService) GenerateImage(ctx context.Context, accountID uuid.UUID, input dto.GenerateImageInput) (*dto.GenerateImageResponse, error) {
	if s.generator == nil {
		return nil, apperror.Wrap(apperror.ErrUnavailable,
			"image provider not configured, set GOOGLE_API_KEY")
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, accountID, generateImageAction, s.cooldown)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.Wrap(apperror.ErrRateLimitExceeded,
			"image generation is on cooldown, try again shortly")
	}

	prompt := BuildDressPrompt(input.Prompt, input.Params)

	imageBytes, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		// The claimed slot did no work; release it so the client can retry.
		if clearErr := ClearRateLimit(ctx, s.rdb, accountID, generateImageAction); clearErr != nil {
			log.Printf("failed to clear rate limit: %v", clearErr)
		}
		if errors.Is(err, genimage.ErrNoImage) {
			return nil, apperror.Wrap(apperror.ErrInvalidInput, "no image generated, try a different prompt")
		}
		if errors.Is(err, genimage.ErrUnexpectedResponse) {
			return nil, apperror.Wrap(apperror.ErrBadUpstream, err.Error())
		}
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	resp := &dto.GenerateImageResponse{
		Success: true,
		Image:   "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes),
		Prompt:  input.Prompt,
		Message: "Image generated successfully",
	}

	if input.DesignID != nil && s.imageStorage != nil {
		url, err := s.attachToDesign(ctx, accountID, *input.DesignID, imageBytes)
		if err != nil {
			return nil, err
		}
		resp.ImageURL = &url
	}

	return resp, nil
}

func (s *imageService) Describe(ctx context.Context, accountID uuid.UUID, input dto.DescribeInput) (*dto.DescribeResponse, error) {
	if s.generator == nil {
		return nil, apperror.Wrap(apperror.ErrUnavailable,
			"image provider not configured, set GOOGLE_API_KEY")
	}

	prompt := fmt.Sprintf(
		"Describe a fashion illustration of: %s. Give detailed visual description suitable for an artist.",
		input.Prompt,
	)

	description, err := s.generator.Describe(ctx, prompt)
	if err != nil {
		if errors.Is(err, genimage.ErrUnexpectedResponse) {
			return nil, apperror.Wrap(apperror.ErrBadUpstream, err.Error())
		}
		return nil, fmt.Errorf("description failed: %w", err)
	}

	return &dto.DescribeResponse{
		Success:     true,
		Description: description,
		Prompt:      input.Prompt,
	}, nil
}

// attachToDesign hosts the render and persists its URL on the owned design.
func (s *imageService) attachToDesign(ctx context.Context, accountID uuid.UUID, designID string, imageBytes []byte) (string, error) {
	id, err := uuid.Parse(designID)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrInvalidInput, "design_id must be a valid id")
	}

	design, err := s.designs.Get(ctx, id, accountID)
	if err != nil {
		return "", err
	}

	fileName := design.ID.String() + ".png"
	url, err := s.imageStorage.UploadImage(ctx, bytes.NewReader(imageBytes), s.uploadFolder, fileName)
	if err != nil {
		return "", fmt.Errorf("failed to host generated image: %w", err)
	}

	patch := dto.DesignPatch{ImageURL: jsonx.String{Set: true, Valid: true, Value: url}}
	if _, err := s.designs.Update(ctx, id, accountID, patch); err != nil {
		return "", err
	}

	return url, nil
}
