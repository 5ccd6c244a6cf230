package service

import (
	"fmt"
	"strings"

	"github.com/dresslab/dresslab-api/internal/dto"
)

// BuildDressPrompt composes the provider prompt from the user's description
// and the styling parameters. Numeric parameters are translated into
// human-readable clauses by threshold band; zero-valued parameters are
// treated as unset and skipped.
func BuildDressPrompt(prompt string, params dto.DressParams) string {
	var details []string

	if params.Color != "" {
		details = append(details, "color: "+params.Color)
	}
	if params.Pattern != "" {
		details = append(details, "pattern: "+params.Pattern)
	}
	if params.Neckline != "" {
		details = append(details, "neckline: "+params.Neckline)
	}
	if params.SleeveLength != 0 {
		details = append(details, "sleeves: "+sleeveDescription(params.SleeveLength))
	}
	if params.TrainLength != 0 {
		details = append(details, "train: "+trainDescription(params.TrainLength))
	}
	if params.Texture != "" {
		details = append(details, "fabric: "+params.Texture)
	}
	if params.SkirtVolume != 0 {
		details = append(details, "skirt: "+skirtDescription(params.SkirtVolume))
	}

	if prompt == "" {
		prompt = "Elegant dress"
	}

	return fmt.Sprintf(`Generate a beautiful, elegant dress design image.
User description: %s
Design parameters: %s

Style: Fashion illustration, professional design, haute couture, elegant, luxurious
Medium: Digital art
Aspect ratio: Portrait (dress from shoulders to hem)
Quality: High detail, professional lighting, clear colors
`, prompt, strings.Join(details, ", "))
}

func sleeveDescription(length float64) string {
	switch {
	case length < 20:
		return "sleeveless"
	case length < 50:
		return "short sleeves"
	default:
		return "long sleeves"
	}
}

func trainDescription(length float64) string {
	switch {
	case length < 20:
		return "no train"
	case length < 50:
		return "short train"
	default:
		return "long train"
	}
}

func skirtDescription(volume float64) string {
	switch {
	case volume < 30:
		return "fitted"
	case volume < 70:
		return "moderate fullness"
	default:
		return "very full"
	}
}
