package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/models"
)

type stubClassifier struct {
	tone  models.Tone
	calls int
}

func (s *stubClassifier) Classify(text string) models.Tone {
	s.calls++
	return s.tone
}

type stubGenerator struct {
	copy  models.AdCopy
	err   error
	calls int
	tone  *models.Tone
	brief models.CampaignBrief
}

func (s *stubGenerator) Generate(_ context.Context, brief models.CampaignBrief, tone *models.Tone) (models.AdCopy, error) {
	s.calls++
	s.brief = brief
	s.tone = tone
	return s.copy, s.err
}

var ecoGlow = models.CampaignBrief{
	BrandName:          "EcoGlow",
	ProductDescription: "bamboo bottles",
	TargetAudience:     "eco-conscious professionals",
}

func TestGenerateAutoDetectsTone(t *testing.T) {
	classifier := &stubClassifier{tone: models.ToneExciting}
	generator := &stubGenerator{copy: models.AdCopy{Headline: "h"}}
	svc := NewCopyService(classifier, generator, zap.NewNop())

	res, err := svc.Generate(context.Background(), ecoGlow)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if res.Tone != models.ToneExciting || !res.ToneDetected {
		t.Errorf("result tone = %q detected=%v, want Exciting detected", res.Tone, res.ToneDetected)
	}
	if classifier.calls != 1 {
		t.Errorf("classifier called %d times, want 1", classifier.calls)
	}
	if generator.calls != 1 {
		t.Errorf("generator called %d times, want 1", generator.calls)
	}
	if generator.tone == nil || *generator.tone != models.ToneExciting {
		t.Errorf("generator received tone %v, want Exciting", generator.tone)
	}
}

func TestGenerateExplicitToneSkipsClassifier(t *testing.T) {
	classifier := &stubClassifier{tone: models.ToneExciting}
	generator := &stubGenerator{}
	svc := NewCopyService(classifier, generator, zap.NewNop())

	tone := models.ToneCasual
	brief := ecoGlow
	brief.Tone = &tone

	res, err := svc.Generate(context.Background(), brief)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if classifier.calls != 0 {
		t.Errorf("classifier called %d times, want 0", classifier.calls)
	}
	if res.Tone != models.ToneCasual || res.ToneDetected {
		t.Errorf("result tone = %q detected=%v, want Casual not detected", res.Tone, res.ToneDetected)
	}
	if generator.tone == nil || *generator.tone != models.ToneCasual {
		t.Errorf("generator received tone %v, want Casual", generator.tone)
	}
}

func TestGenerateValidationStopsBeforeCall(t *testing.T) {
	classifier := &stubClassifier{tone: models.ToneCasual}
	generator := &stubGenerator{}
	svc := NewCopyService(classifier, generator, zap.NewNop())

	brief := ecoGlow
	brief.TargetAudience = ""

	if _, err := svc.Generate(context.Background(), brief); err == nil {
		t.Fatal("Generate() expected validation error")
	}
	if classifier.calls != 0 || generator.calls != 0 {
		t.Errorf("collaborators called on invalid input: classifier=%d generator=%d", classifier.calls, generator.calls)
	}
}

func TestGenerateFailureKeepsTone(t *testing.T) {
	classifier := &stubClassifier{tone: models.ToneProfessional}
	genErr := errors.New("api unavailable")
	generator := &stubGenerator{err: genErr}
	svc := NewCopyService(classifier, generator, zap.NewNop())

	res, err := svc.Generate(context.Background(), ecoGlow)
	if !errors.Is(err, genErr) {
		t.Fatalf("Generate() error = %v, want %v", err, genErr)
	}
	if res == nil || res.Tone != models.ToneProfessional || !res.ToneDetected {
		t.Errorf("failure result = %+v, want detected Professional tone preserved", res)
	}
}
