package dto

import "github.com/adcopy-studio/backend/internal/models"

type GenerateCopyRequest struct {
	BrandName          string `json:"brand_name"`
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience"`
	Tone               string `json:"tone,omitempty"` // empty = auto-detect
}

type ClassifyToneRequest struct {
	Text string `json:"text"`
}

type DownloadCopyRequest struct {
	BrandName string        `json:"brand_name"`
	Copy      models.AdCopy `json:"copy"`
}
