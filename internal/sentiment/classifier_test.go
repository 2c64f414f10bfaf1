package sentiment

import (
	"testing"

	"github.com/adcopy-studio/backend/internal/models"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		name     string
		score    Score
		expected models.Tone
	}{
		// Rule 1 short-circuits regardless of the split.
		{"high compound", Score{Compound: 0.6, Positive: 0.1, Negative: 0.8, Neutral: 0.1}, models.ToneExciting},
		{"compound at threshold", Score{Compound: 0.5}, models.ToneExciting},
		{"professional", Score{Compound: 0.2, Positive: 0.5, Negative: 0.1, Neutral: 0.7}, models.ToneProfessional},
		{"casual low neutral", Score{Compound: 0.1, Positive: 0.2, Negative: 0.3, Neutral: 0.5}, models.ToneCasual},
		{"casual negative dominant", Score{Compound: 0.3, Positive: 0.1, Negative: 0.2, Neutral: 0.7}, models.ToneCasual},
		{"neutral at boundary", Score{Compound: 0.0, Positive: 0.3, Negative: 0.1, Neutral: 0.6}, models.ToneCasual},
		{"very negative", Score{Compound: -0.9, Positive: 0.0, Negative: 0.9, Neutral: 0.1}, models.ToneCasual},
		{"zero value", Score{}, models.ToneCasual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToneFor(tt.score)
			if got != tt.expected {
				t.Errorf("ToneFor(%+v) = %q, want %q", tt.score, got, tt.expected)
			}
		})
	}
}

type stubAnalyzer struct {
	score Score
}

func (s stubAnalyzer) PolarityScores(string) Score { return s.score }

func TestClassifyWithStubAnalyzer(t *testing.T) {
	c := NewClassifierWithAnalyzer(stubAnalyzer{score: Score{Compound: 0.7}})
	got := c.Classify("EcoGlow bamboo bottles eco-conscious professionals")
	if got != models.ToneExciting {
		t.Errorf("Classify() = %q, want %q", got, models.ToneExciting)
	}
}

func TestClassifyAlwaysReturnsKnownLabel(t *testing.T) {
	c := NewClassifier()

	inputs := []string{
		"Amazing incredible fantastic product you will love!!!",
		"Quarterly compliance report for enterprise stakeholders",
		"meh, it's a bottle",
		"terrible awful disappointing waste of money",
		"",
		"12345 !!! ???",
		"EcoGlow bamboo bottles eco-conscious professionals",
	}

	for _, input := range inputs {
		tone := c.Classify(input)
		switch tone {
		case models.ToneExciting, models.ToneProfessional, models.ToneCasual:
		default:
			t.Errorf("Classify(%q) = %q, not a known tone", input, tone)
		}
	}
}
