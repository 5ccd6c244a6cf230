package service

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/genimage"
)

type fakeGenerator struct {
	imageBytes []byte
	imageErr   error
	text       string
	textErr    error
	lastPrompt string
}

func (g *fakeGenerator) GenerateImage(_ context.Context, prompt string) ([]byte, error) {
	g.lastPrompt = prompt
	return g.imageBytes, g.imageErr
}

func (g *fakeGenerator) Describe(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.text, g.textErr
}

type fakeImageStorage struct {
	uploadedName string
	url          string
}

func (s *fakeImageStorage) UploadImage(_ context.Context, r io.Reader, folder, fileName string) (string, error) {
	io.Copy(io.Discard, r)
	s.uploadedName = folder + "/" + fileName
	return s.url, nil
}

func (s *fakeImageStorage) DeleteImage(context.Context, string) error { return nil }

func TestImageService_GenerateImage(t *testing.T) {
	gen := &fakeGenerator{imageBytes: []byte("png-bytes")}
	svc := NewImageService(gen, nil, nil, nil, 0, "")

	res, err := svc.GenerateImage(context.Background(), uuid.New(), dto.GenerateImageInput{
		Prompt: "A red dress",
		Params: dto.DressParams{SleeveLength: 15},
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "A red dress", res.Prompt)
	assert.Nil(t, res.ImageURL)

	wantDataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	assert.Equal(t, wantDataURI, res.Image)

	// The provider saw the composed prompt, not the raw one.
	assert.Contains(t, gen.lastPrompt, "User description: A red dress")
	assert.Contains(t, gen.lastPrompt, "sleeves: sleeveless")
}

func TestImageService_GenerateImage_NotConfigured(t *testing.T) {
	svc := NewImageService(nil, nil, nil, nil, 0, "")

	_, err := svc.GenerateImage(context.Background(), uuid.New(), dto.GenerateImageInput{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnavailable))
}

func TestImageService_GenerateImage_BadUpstream(t *testing.T) {
	gen := &fakeGenerator{imageErr: genimage.ErrUnexpectedResponse}
	svc := NewImageService(gen, nil, nil, nil, 0, "")

	_, err := svc.GenerateImage(context.Background(), uuid.New(), dto.GenerateImageInput{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrBadUpstream))
}

func TestImageService_GenerateImage_NoImage(t *testing.T) {
	gen := &fakeGenerator{imageErr: genimage.ErrNoImage}
	svc := NewImageService(gen, nil, nil, nil, 0, "")

	// An empty candidate list is the prompt's fault, not the provider's.
	_, err := svc.GenerateImage(context.Background(), uuid.New(), dto.GenerateImageInput{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Contains(t, err.Error(), "different prompt")
}

func TestImageService_GenerateImage_AttachesToDesign(t *testing.T) {
	designRepo := newFakeDesignRepo()
	designSvc := NewDesignService(designRepo)

	accountID := uuid.New()
	design, err := designSvc.Create(context.Background(), accountID, dto.CreateDesignInput{Name: "Gown"})
	require.NoError(t, err)

	gen := &fakeGenerator{imageBytes: []byte("png-bytes")}
	store := &fakeImageStorage{url: "https://cdn.example.com/designs/render.png"}
	svc := NewImageService(gen, store, designSvc, nil, 0, "designs")

	designID := design.ID.String()
	res, err := svc.GenerateImage(context.Background(), accountID, dto.GenerateImageInput{
		Prompt:   "A red dress",
		DesignID: &designID,
	})
	require.NoError(t, err)

	require.NotNil(t, res.ImageURL)
	assert.Equal(t, store.url, *res.ImageURL)
	assert.True(t, strings.HasPrefix(store.uploadedName, "designs/"))

	stored, err := designSvc.Get(context.Background(), design.ID, accountID)
	require.NoError(t, err)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, store.url, *stored.ImageURL)
}

func TestImageService_GenerateImage_ForeignDesign(t *testing.T) {
	designRepo := newFakeDesignRepo()
	designSvc := NewDesignService(designRepo)

	owner := uuid.New()
	design, err := designSvc.Create(context.Background(), owner, dto.CreateDesignInput{Name: "Gown"})
	require.NoError(t, err)

	gen := &fakeGenerator{imageBytes: []byte("png-bytes")}
	store := &fakeImageStorage{url: "https://cdn.example.com/x.png"}
	svc := NewImageService(gen, store, designSvc, nil, 0, "designs")

	designID := design.ID.String()
	_, err = svc.GenerateImage(context.Background(), uuid.New(), dto.GenerateImageInput{
		Prompt:   "A red dress",
		DesignID: &designID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestImageService_Describe(t *testing.T) {
	gen := &fakeGenerator{text: "A flowing crimson gown with a long train."}
	svc := NewImageService(gen, nil, nil, nil, 0, "")

	res, err := svc.Describe(context.Background(), uuid.New(), dto.DescribeInput{Prompt: "red gown"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "red gown", res.Prompt)
	assert.Equal(t, gen.text, res.Description)
	assert.Contains(t, gen.lastPrompt, "red gown")
}

func TestImageService_Describe_NotConfigured(t *testing.T) {
	svc := NewImageService(nil, nil, nil, nil, 0, "")

	_, err := svc.Describe(context.Background(), uuid.New(), dto.DescribeInput{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnavailable))
}
