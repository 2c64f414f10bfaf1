package models

import (
	"fmt"
	"strings"
)

// Tone is one of the three fixed marketing-voice labels.
type Tone string

const (
	ToneExciting     Tone = "Exciting"
	ToneProfessional Tone = "Professional"
	ToneCasual       Tone = "Casual"
)

var AllTones = []Tone{ToneExciting, ToneProfessional, ToneCasual}

// ParseTone maps user input to a Tone, case-insensitively.
func ParseTone(s string) (Tone, error) {
	for _, t := range AllTones {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q (expected Exciting, Professional, or Casual)", s)
}

// CampaignBrief is the user-supplied input for one generation request.
// Tone is nil when the caller wants it auto-detected.
type CampaignBrief struct {
	BrandName          string `json:"brand_name"`
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience"`
	Tone               *Tone  `json:"tone,omitempty"`
}

func (b CampaignBrief) Validate() error {
	if strings.TrimSpace(b.BrandName) == "" {
		return fmt.Errorf("brand name is required")
	}
	if strings.TrimSpace(b.ProductDescription) == "" {
		return fmt.Errorf("product description is required")
	}
	if strings.TrimSpace(b.TargetAudience) == "" {
		return fmt.Errorf("target audience is required")
	}
	return nil
}

// CombinedText is the text fed to the tone classifier.
func (b CampaignBrief) CombinedText() string {
	return fmt.Sprintf("%s %s %s", b.BrandName, b.ProductDescription, b.TargetAudience)
}

// AdCopy is the result of a single generation request. It is never
// updated in place; a failed generation produces a fresh degraded record.
type AdCopy struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
	CTA         string   `json:"cta"`
}

// DegradedCopy converts a generation failure into the uniform
// AdCopy-shaped record both front-ends display.
func DegradedCopy(err error) AdCopy {
	return AdCopy{
		Headline:    fmt.Sprintf("Error generating content: %v", err),
		Description: "Please try again or check your API key.",
		Hashtags:    []string{},
		CTA:         "",
	}
}
