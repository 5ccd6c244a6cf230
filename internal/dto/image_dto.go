package dto

// DressParams are the styling knobs forwarded to the prompt builder. Numeric
// parameters are mapped onto human-readable clauses via threshold bands; a
// zero value means "unset" and the clause is skipped.
type DressParams struct {
	Color            string  `json:"color"`
	Pattern          string  `json:"pattern"`
	Neckline         string  `json:"neckline"`
	SleeveLength     float64 `json:"sleeve_length"`
	TrainLength      float64 `json:"train_length"`
	Texture          string  `json:"texture"`
	TextureIntensity float64 `json:"texture_intensity"`
	SkirtVolume      float64 `json:"skirt_volume"`
}

type GenerateImageInput struct {
	Prompt string      `json:"prompt" binding:"required"`
	Params DressParams `json:"params"`
	// DesignID optionally names an owned design; when image hosting is
	// configured the generated render is uploaded and its URL saved there.
	DesignID *string `json:"design_id"`
}

type GenerateImageResponse struct {
	Success  bool    `json:"success"`
	Image    string  `json:"image"`
	Prompt   string  `json:"prompt"`
	ImageURL *string `json:"image_url,omitempty"`
	Message  string  `json:"message"`
}

type DescribeInput struct {
	Prompt string `json:"prompt" binding:"required"`
}

type DescribeResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}
