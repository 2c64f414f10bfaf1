package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/models"
)

// Classifier maps free text to a tone label.
type Classifier interface {
	Classify(text string) models.Tone
}

// Generator produces ad copy for a brief with a resolved tone.
type Generator interface {
	Generate(ctx context.Context, brief models.CampaignBrief, tone *models.Tone) (models.AdCopy, error)
}

// CopyService is the one shared pipeline behind both front-ends:
// validate, resolve the tone, then make exactly one generation call.
type CopyService struct {
	classifier Classifier
	generator  Generator
	log        *zap.Logger
}

func NewCopyService(classifier Classifier, generator Generator, log *zap.Logger) *CopyService {
	return &CopyService{classifier: classifier, generator: generator, log: log}
}

// ResolveTone returns the brief's explicit tone, or classifies the
// combined brief text when none was chosen. The second return reports
// whether the tone was auto-detected.
func (s *CopyService) ResolveTone(brief models.CampaignBrief) (models.Tone, bool) {
	if brief.Tone != nil {
		return *brief.Tone, false
	}
	tone := s.classifier.Classify(brief.CombinedText())
	s.log.Info("tone detected", zap.String("tone", string(tone)))
	return tone, true
}

// ClassifyText exposes the classifier for tone-only requests.
func (s *CopyService) ClassifyText(text string) models.Tone {
	return s.classifier.Classify(text)
}

// Result is the outcome of one generation request.
type Result struct {
	Tone         models.Tone
	ToneDetected bool
	Copy         models.AdCopy
}

// Generate runs the full pipeline. On generation failure the typed
// error is returned; callers wanting the legacy uniform display shape
// convert it with models.DegradedCopy.
func (s *CopyService) Generate(ctx context.Context, brief models.CampaignBrief) (*Result, error) {
	if err := brief.Validate(); err != nil {
		return nil, err
	}

	tone, detected := s.ResolveTone(brief)

	copy, err := s.generator.Generate(ctx, brief, &tone)
	if err != nil {
		s.log.Warn("copy generation failed",
			zap.String("brand", brief.BrandName),
			zap.Error(err),
		)
		return &Result{Tone: tone, ToneDetected: detected}, err
	}

	s.log.Info("copy generated",
		zap.String("brand", brief.BrandName),
		zap.String("tone", string(tone)),
	)
	return &Result{Tone: tone, ToneDetected: detected, Copy: copy}, nil
}
