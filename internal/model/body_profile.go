package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UnitCentimeters = "cm"
	UnitInches      = "inches"
)

// ValidMeasurementUnit reports whether s is an accepted measurement unit.
func ValidMeasurementUnit(s string) bool {
	return s == UnitCentimeters || s == UnitInches
}

// Default avatar proportions assigned when a profile is created without them.
const (
	DefaultHeight = 100
	DefaultWidth  = 100
	DefaultBuild  = 0
	DefaultHead   = 100
)

// BodyProfile holds one account's avatar proportions, measurements and
// styling preferences. The preference collections are stored as JSON text
// columns and must only be touched through their typed encode/decode helpers.
type BodyProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Account   *Account  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// Avatar proportions, always present.
	Height float64 `gorm:"not null;default:100" json:"height"`
	Width  float64 `gorm:"not null;default:100" json:"width"`
	Build  float64 `gorm:"not null;default:0" json:"build"`
	Head   float64 `gorm:"not null;default:100" json:"head"`

	// Personal information, each independently optional.
	Gender *string  `gorm:"size:20" json:"gender"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`

	// Body measurements, each independently optional.
	Chest         *float64 `json:"chest"`
	Waist         *float64 `json:"waist"`
	Hips          *float64 `json:"hips"`
	ShoulderWidth *float64 `json:"shoulder_width"`
	ArmLength     *float64 `json:"arm_length"`
	Inseam        *float64 `json:"inseam"`
	Thigh         *float64 `json:"thigh"`
	Neck          *float64 `json:"neck"`
	Calf          *float64 `json:"calf"`
	Wrist         *float64 `json:"wrist"`

	// Styling preferences, serialized JSON.
	Patterns       string `gorm:"type:text;not null;default:'[]'" json:"-"`
	Necklines      string `gorm:"type:text;not null;default:'[]'" json:"-"`
	Sleeves        string `gorm:"type:text;not null;default:'[]'" json:"-"`
	TopStyles      string `gorm:"type:text;not null;default:'[]'" json:"-"`
	FabricTextures string `gorm:"type:text;not null;default:'[]'" json:"-"`
	FabricTypes    string `gorm:"type:text;not null;default:'{}'" json:"-"`

	MeasurementUnit string `gorm:"size:10;not null;default:'cm'" json:"measurement_unit"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *BodyProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewBodyProfile returns a profile carrying every default.
func NewBodyProfile(accountID uuid.UUID) *BodyProfile {
	return &BodyProfile{
		AccountID:       accountID,
		Height:          DefaultHeight,
		Width:           DefaultWidth,
		Build:           DefaultBuild,
		Head:            DefaultHead,
		Patterns:        "[]",
		Necklines:       "[]",
		Sleeves:         "[]",
		TopStyles:       "[]",
		FabricTextures:  "[]",
		FabricTypes:     "{}",
		MeasurementUnit: UnitCentimeters,
	}
}

// ResetToDefaults restores every field except identity and timestamps.
func (p *BodyProfile) ResetToDefaults() {
	p.Height = DefaultHeight
	p.Width = DefaultWidth
	p.Build = DefaultBuild
	p.Head = DefaultHead
	p.Gender = nil
	p.Age = nil
	p.Weight = nil
	p.Chest = nil
	p.Waist = nil
	p.Hips = nil
	p.ShoulderWidth = nil
	p.ArmLength = nil
	p.Inseam = nil
	p.Thigh = nil
	p.Neck = nil
	p.Calf = nil
	p.Wrist = nil
	p.Patterns = "[]"
	p.Necklines = "[]"
	p.Sleeves = "[]"
	p.TopStyles = "[]"
	p.FabricTextures = "[]"
	p.FabricTypes = "{}"
	p.MeasurementUnit = UnitCentimeters
}
