package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/pkg/apperror"
)

type fakeDesignRepo struct {
	designs map[uuid.UUID]*model.Design
}

func newFakeDesignRepo() *fakeDesignRepo {
	return &fakeDesignRepo{designs: make(map[uuid.UUID]*model.Design)}
}

func (r *fakeDesignRepo) Create(_ context.Context, design *model.Design) error {
	if design.ID == uuid.Nil {
		design.ID = uuid.New()
	}
	r.designs[design.ID] = design
	return nil
}

func (r *fakeDesignRepo) FindByID(_ context.Context, id, accountID uuid.UUID) (*model.Design, error) {
	design, ok := r.designs[id]
	if !ok || design.AccountID != accountID {
		return nil, gorm.ErrRecordNotFound
	}
	return design, nil
}

func (r *fakeDesignRepo) FindAllByAccount(_ context.Context, accountID uuid.UUID) ([]*model.Design, error) {
	var out []*model.Design
	for _, d := range r.designs {
		if d.AccountID == accountID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDesignRepo) Save(_ context.Context, design *model.Design) error {
	r.designs[design.ID] = design
	return nil
}

func (r *fakeDesignRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.designs, id)
	return nil
}

func TestDesignService_Create_Defaults(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())
	accountID := uuid.New()

	design, err := svc.Create(context.Background(), accountID, dto.CreateDesignInput{Name: "Evening gown"})
	require.NoError(t, err)

	assert.Equal(t, "Evening gown", design.Name)
	assert.Equal(t, "#EC4899", design.Color)
	assert.Equal(t, "solid", design.Pattern)
	assert.Equal(t, float64(70), design.SleeveLength)
	assert.Equal(t, "v-neck", design.Neckline)
	assert.Equal(t, float64(50), design.TrainLength)
	assert.Equal(t, "satin", design.Texture)
	assert.Equal(t, float64(40), design.TextureIntensity)
	assert.Equal(t, float64(60), design.SkirtVolume)
	assert.Nil(t, design.Prompt)
	assert.Nil(t, design.ImageURL)
}

func TestDesignService_Create_NameRequired(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateDesignInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestDesignService_Create_Overrides(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())

	design, err := svc.Create(context.Background(), uuid.New(), dto.CreateDesignInput{
		Name:         "Custom",
		Color:        stringSet("#112233"),
		SleeveLength: floatSet(15),
		Prompt:       stringSet("flowy silhouette"),
	})
	require.NoError(t, err)

	assert.Equal(t, "#112233", design.Color)
	assert.Equal(t, float64(15), design.SleeveLength)
	require.NotNil(t, design.Prompt)
	assert.Equal(t, "flowy silhouette", *design.Prompt)
	// Untouched parameters keep their defaults.
	assert.Equal(t, "solid", design.Pattern)
}

func TestDesignService_Update_StylingRejectsNull(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())
	accountID := uuid.New()

	design, err := svc.Create(context.Background(), accountID, dto.CreateDesignInput{Name: "Gown"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), design.ID, accountID, dto.DesignPatch{
		SleeveLength: floatNull(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sleeve_length must be a number")

	_, err = svc.Update(context.Background(), design.ID, accountID, dto.DesignPatch{
		Color: stringNull(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color cannot be empty")
}

func TestDesignService_Update_ArtifactsClearOnNull(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())
	accountID := uuid.New()

	design, err := svc.Create(context.Background(), accountID, dto.CreateDesignInput{
		Name:   "Gown",
		Prompt: stringSet("original"),
		SVG:    stringSet("<svg/>"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), design.ID, accountID, dto.DesignPatch{
		Prompt: stringNull(),
		SVG:    stringNull(),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Prompt)
	assert.Nil(t, updated.SVG)
}

func TestDesignService_Thumbnail(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())
	accountID := uuid.New()

	raw := []byte("png-bytes")
	design, err := svc.Create(context.Background(), accountID, dto.CreateDesignInput{
		Name:      "Gown",
		Thumbnail: stringSet(base64.StdEncoding.EncodeToString(raw)),
	})
	require.NoError(t, err)
	assert.Equal(t, raw, design.Thumbnail)

	_, err = svc.Update(context.Background(), design.ID, accountID, dto.DesignPatch{
		Thumbnail: stringSet("not base64!!!"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
}

func TestDesignService_OwnerScoping(t *testing.T) {
	svc := NewDesignService(newFakeDesignRepo())
	owner := uuid.New()
	stranger := uuid.New()

	design, err := svc.Create(context.Background(), owner, dto.CreateDesignInput{Name: "Gown"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), design.ID, stranger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	err = svc.Delete(context.Background(), design.ID, stranger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
