package dto

import "github.com/adcopy-studio/backend/internal/models"

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type GenerateCopyResponse struct {
	Tone         models.Tone   `json:"tone"`
	ToneDetected bool          `json:"tone_detected"`
	Copy         models.AdCopy `json:"copy"`
}

type ToneResponse struct {
	Tone models.Tone `json:"tone"`
}
