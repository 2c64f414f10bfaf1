package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/adcopy-studio/backend/internal/models"
)

// Score is a four-component polarity measurement. Positive, Negative and
// Neutral form a normalized distribution; Compound is in [-1, 1].
type Score struct {
	Positive float64
	Negative float64
	Neutral  float64
	Compound float64
}

// Analyzer produces a polarity score for a piece of text.
type Analyzer interface {
	PolarityScores(text string) Score
}

type vaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func (a vaderAnalyzer) PolarityScores(text string) Score {
	s := a.sia.PolarityScores(text)
	return Score{
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Compound: s.Compound,
	}
}

// Classifier maps free text to one of the three tone labels.
type Classifier struct {
	analyzer Analyzer
}

// NewClassifier builds a classifier backed by the VADER lexicon. The
// lexicon is compiled in, so there is no provisioning step to fail.
func NewClassifier() *Classifier {
	return &Classifier{analyzer: vaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}}
}

// NewClassifierWithAnalyzer accepts a custom analyzer.
func NewClassifierWithAnalyzer(a Analyzer) *Classifier {
	return &Classifier{analyzer: a}
}

// Classify is total: it always returns one of the three labels.
func (c *Classifier) Classify(text string) models.Tone {
	return ToneFor(c.analyzer.PolarityScores(text))
}

// ToneFor applies the tone decision policy, first match wins.
func ToneFor(s Score) models.Tone {
	switch {
	case s.Compound >= 0.5:
		return models.ToneExciting
	case s.Positive > s.Negative && s.Neutral > 0.6:
		return models.ToneProfessional
	default:
		return models.ToneCasual
	}
}
