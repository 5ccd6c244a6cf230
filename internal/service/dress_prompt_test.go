package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dresslab/dresslab-api/internal/dto"
)

func TestSleeveDescription(t *testing.T) {
	tests := []struct {
		length float64
		want   string
	}{
		{15, "sleeveless"},
		{19.9, "sleeveless"},
		{20, "short sleeves"},
		{49, "short sleeves"},
		{50, "long sleeves"},
		{100, "long sleeves"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sleeveDescription(tt.length), "length %v", tt.length)
	}
}

func TestTrainDescription(t *testing.T) {
	tests := []struct {
		length float64
		want   string
	}{
		{10, "no train"},
		{20, "short train"},
		{49, "short train"},
		{50, "long train"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trainDescription(tt.length), "length %v", tt.length)
	}
}

func TestSkirtDescription(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{10, "fitted"},
		{29, "fitted"},
		{30, "moderate fullness"},
		{69, "moderate fullness"},
		{70, "very full"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, skirtDescription(tt.volume), "volume %v", tt.volume)
	}
}

func TestBuildDressPrompt_AllParams(t *testing.T) {
	prompt := BuildDressPrompt("A summer wedding gown", dto.DressParams{
		Color:        "#EC4899",
		Pattern:      "solid",
		Neckline:     "v-neck",
		SleeveLength: 15,
		TrainLength:  60,
		Texture:      "satin",
		SkirtVolume:  45,
	})

	assert.Contains(t, prompt, "User description: A summer wedding gown")
	assert.Contains(t, prompt, "color: #EC4899")
	assert.Contains(t, prompt, "pattern: solid")
	assert.Contains(t, prompt, "neckline: v-neck")
	assert.Contains(t, prompt, "sleeves: sleeveless")
	assert.Contains(t, prompt, "train: long train")
	assert.Contains(t, prompt, "fabric: satin")
	assert.Contains(t, prompt, "skirt: moderate fullness")
}

func TestBuildDressPrompt_ZeroParamsSkipped(t *testing.T) {
	prompt := BuildDressPrompt("Something simple", dto.DressParams{})

	assert.NotContains(t, prompt, "color:")
	assert.NotContains(t, prompt, "pattern:")
	assert.NotContains(t, prompt, "sleeves:")
	assert.NotContains(t, prompt, "train:")
	assert.NotContains(t, prompt, "skirt:")
	assert.Contains(t, prompt, "User description: Something simple")
}

func TestBuildDressPrompt_EmptyPromptFallsBack(t *testing.T) {
	prompt := BuildDressPrompt("", dto.DressParams{Color: "red"})

	assert.Contains(t, prompt, "User description: Elegant dress")
	assert.Contains(t, prompt, "color: red")
}
