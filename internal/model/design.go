package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Styling parameter defaults assigned when a design is created without them.
const (
	DefaultColor            = "#EC4899"
	DefaultPattern          = "solid"
	DefaultSleeveLength     = 70
	DefaultNeckline         = "v-neck"
	DefaultTrainLength      = 50
	DefaultTexture          = "satin"
	DefaultTextureIntensity = 40
	DefaultSkirtVolume      = 60
)

type Design struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	Account   *Account  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name   string  `gorm:"size:255;not null" json:"name"`
	Prompt *string `gorm:"type:text" json:"prompt"`

	// Styling parameters.
	Color            string  `gorm:"size:7;not null;default:'#EC4899'" json:"color"`
	Pattern          string  `gorm:"size:50;not null;default:'solid'" json:"pattern"`
	SleeveLength     float64 `gorm:"not null;default:70" json:"sleeve_length"`
	Neckline         string  `gorm:"size:50;not null;default:'v-neck'" json:"neckline"`
	TrainLength      float64 `gorm:"not null;default:50" json:"train_length"`
	Texture          string  `gorm:"size:50;not null;default:'satin'" json:"texture"`
	TextureIntensity float64 `gorm:"not null;default:40" json:"texture_intensity"`
	SkirtVolume      float64 `gorm:"not null;default:60" json:"skirt_volume"`

	// Rendered artifacts. The vector payload and thumbnail are opaque blobs
	// and never serialized into list/detail responses.
	SVG       *string `gorm:"type:text" json:"-"`
	Thumbnail []byte  `gorm:"type:bytea" json:"-"`
	ImageURL  *string `gorm:"size:512" json:"image_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Design) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// NewDesign returns a design carrying every styling default.
func NewDesign(accountID uuid.UUID, name string) *Design {
	return &Design{
		AccountID:        accountID,
		Name:             name,
		Color:            DefaultColor,
		Pattern:          DefaultPattern,
		SleeveLength:     DefaultSleeveLength,
		Neckline:         DefaultNeckline,
		TrainLength:      DefaultTrainLength,
		Texture:          DefaultTexture,
		TextureIntensity: DefaultTextureIntensity,
		SkirtVolume:      DefaultSkirtVolume,
	}
}
