package dto

import (
	"time"

	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/pkg/jsonx"
	"github.com/google/uuid"
)

// BodyProfilePatch is a partial body-profile update. Field categories follow
// the merge contract: the avatar proportions and measurement unit reject
// null, the measurements clear on null, and the preference collections are
// full replacements.
type BodyProfilePatch struct {
	Height jsonx.Float `json:"height"`
	Width  jsonx.Float `json:"width"`
	Build  jsonx.Float `json:"build"`
	Head   jsonx.Float `json:"head"`

	Gender jsonx.String `json:"gender"`
	Age    jsonx.Int    `json:"age"`
	Weight jsonx.Float  `json:"weight"`

	Chest         jsonx.Float `json:"chest"`
	Waist         jsonx.Float `json:"waist"`
	Hips          jsonx.Float `json:"hips"`
	ShoulderWidth jsonx.Float `json:"shoulder_width"`
	ArmLength     jsonx.Float `json:"arm_length"`
	Inseam        jsonx.Float `json:"inseam"`
	Thigh         jsonx.Float `json:"thigh"`
	Neck          jsonx.Float `json:"neck"`
	Calf          jsonx.Float `json:"calf"`
	Wrist         jsonx.Float `json:"wrist"`

	Patterns       jsonx.StringList `json:"patterns"`
	Necklines      jsonx.StringList `json:"necklines"`
	Sleeves        jsonx.StringList `json:"sleeves"`
	TopStyles      jsonx.StringList `json:"top_styles"`
	FabricTextures jsonx.StringList `json:"fabric_textures"`
	FabricTypes    jsonx.StringMap  `json:"fabric_types"`

	MeasurementUnit jsonx.String `json:"measurement_unit"`
}

// BodyProfileResponse is the serialized body profile with the preference
// columns decoded back into collections.
type BodyProfileResponse struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`

	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Build  float64 `json:"build"`
	Head   float64 `json:"head"`

	Gender *string  `json:"gender"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`

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

	Patterns       []string          `json:"patterns"`
	Necklines      []string          `json:"necklines"`
	Sleeves        []string          `json:"sleeves"`
	TopStyles      []string          `json:"top_styles"`
	FabricTextures []string          `json:"fabric_textures"`
	FabricTypes    map[string]string `json:"fabric_types"`

	MeasurementUnit string `json:"measurement_unit"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewBodyProfileResponse decodes a persisted profile into its wire shape.
func NewBodyProfileResponse(p *model.BodyProfile) *BodyProfileResponse {
	if p == nil {
		return nil
	}

	resp := &BodyProfileResponse{
		Height:          p.Height,
		Width:           p.Width,
		Build:           p.Build,
		Head:            p.Head,
		Gender:          p.Gender,
		Age:             p.Age,
		Weight:          p.Weight,
		Chest:           p.Chest,
		Waist:           p.Waist,
		Hips:            p.Hips,
		ShoulderWidth:   p.ShoulderWidth,
		ArmLength:       p.ArmLength,
		Inseam:          p.Inseam,
		Thigh:           p.Thigh,
		Neck:            p.Neck,
		Calf:            p.Calf,
		Wrist:           p.Wrist,
		Patterns:        jsonx.DecodeList(p.Patterns),
		Necklines:       jsonx.DecodeList(p.Necklines),
		Sleeves:         jsonx.DecodeList(p.Sleeves),
		TopStyles:       jsonx.DecodeList(p.TopStyles),
		FabricTextures:  jsonx.DecodeList(p.FabricTextures),
		FabricTypes:     jsonx.DecodeMap(p.FabricTypes),
		MeasurementUnit: p.MeasurementUnit,
	}

	if p.ID != uuid.Nil {
		id := p.ID
		accountID := p.AccountID
		createdAt := p.CreatedAt
		updatedAt := p.UpdatedAt
		resp.ID = &id
		resp.AccountID = &accountID
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// DefaultBodyProfileResponse is what GET /body-profiles returns for an
// account that never stored a profile. No row is created for it.
func DefaultBodyProfileResponse() *BodyProfileResponse {
	return NewBodyProfileResponse(model.NewBodyProfile(uuid.Nil))
}
