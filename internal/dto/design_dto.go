package dto

import "github.com/dresslab/dresslab-api/pkg/jsonx"

// CreateDesignInput creates a design. Name is the only required field; every
// absent styling parameter gets its fixed default.
type CreateDesignInput struct {
	Name   string       `json:"name" binding:"required"`
	Prompt jsonx.String `json:"prompt"`

	Color            jsonx.String `json:"color"`
	Pattern          jsonx.String `json:"pattern"`
	SleeveLength     jsonx.Float  `json:"sleeve_length"`
	Neckline         jsonx.String `json:"neckline"`
	TrainLength      jsonx.Float  `json:"train_length"`
	Texture          jsonx.String `json:"texture"`
	TextureIntensity jsonx.Float  `json:"texture_intensity"`
	SkirtVolume      jsonx.Float  `json:"skirt_volume"`

	SVG       jsonx.String `json:"svg"`
	Thumbnail jsonx.String `json:"thumbnail"` // base64-encoded raster bytes
	ImageURL  jsonx.String `json:"image_url"`
}

// DesignPatch is a partial design update; only present keys are applied.
// Styling parameters are non-nullable and reject null; prompt, svg,
// thumbnail and image_url clear on null.
type DesignPatch struct {
	Name   jsonx.String `json:"name"`
	Prompt jsonx.String `json:"prompt"`

	Color            jsonx.String `json:"color"`
	Pattern          jsonx.String `json:"pattern"`
	SleeveLength     jsonx.Float  `json:"sleeve_length"`
	Neckline         jsonx.String `json:"neckline"`
	TrainLength      jsonx.Float  `json:"train_length"`
	Texture          jsonx.String `json:"texture"`
	TextureIntensity jsonx.Float  `json:"texture_intensity"`
	SkirtVolume      jsonx.Float  `json:"skirt_volume"`

	SVG       jsonx.String `json:"svg"`
	Thumbnail jsonx.String `json:"thumbnail"`
	ImageURL  jsonx.String `json:"image_url"`
}
