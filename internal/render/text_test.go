package render

import (
	"strings"
	"testing"

	"github.com/adcopy-studio/backend/internal/models"
)

func TestNormalizeHashtag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{" marketing ", "#marketing"},
		{"#marketing", "#marketing"},
		{"Eco Glow", "#EcoGlow"},
		{"##double", "#double"},
		{"clean", "#clean"},
		{"", "#"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeHashtag(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeHashtag(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHashtags(t *testing.T) {
	got := Hashtags([]string{"#EcoGlow", " go green ", "sustainable"})
	want := "#EcoGlow #gogreen #sustainable"
	if got != want {
		t.Errorf("Hashtags() = %q, want %q", got, want)
	}

	if got := Hashtags(nil); got != "" {
		t.Errorf("Hashtags(nil) = %q, want empty", got)
	}
}

func TestText(t *testing.T) {
	ad := models.AdCopy{
		Headline:    "Glow Green, Live Clean",
		Description: "Bottles that last.",
		Hashtags:    []string{"#EcoGlow", "#GoGreen", "#Sustainable"},
		CTA:         "Shop now",
	}

	got := Text(ad)
	want := "HEADLINE: Glow Green, Live Clean\n\n" +
		"DESCRIPTION: Bottles that last.\n\n" +
		"HASHTAGS: #EcoGlow #GoGreen #Sustainable\n\n" +
		"CALL TO ACTION: Shop now"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestBlockContainsAllSections(t *testing.T) {
	ad := models.AdCopy{Headline: "h", Description: "d", Hashtags: []string{"x"}, CTA: "c"}
	out := Block(ad)
	for _, want := range []string{"HEADLINE:", "DESCRIPTION:", "HASHTAGS:", "CALL TO ACTION:", strings.Repeat("=", 50)} {
		if !strings.Contains(out, want) {
			t.Errorf("Block() missing %q", want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		brand    string
		expected string
	}{
		{"EcoGlow", "ecoglow_marketing_copy.txt"},
		{"Eco Glow Co", "eco_glow_co_marketing_copy.txt"},
		{"Brand/Name?", "brandname_marketing_copy.txt"},
		{"  spaced  ", "spaced_marketing_copy.txt"},
		{"///", "ad_marketing_copy.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.brand, func(t *testing.T) {
			got := FileName(tt.brand)
			if got != tt.expected {
				t.Errorf("FileName(%q) = %q, want %q", tt.brand, got, tt.expected)
			}
		})
	}
}
