package llm

import (
	"fmt"

	"github.com/adcopy-studio/backend/internal/models"
)

// SystemPrompt establishes the copywriter persona for every request.
const SystemPrompt = "You are a professional marketing copywriter who creates compelling, brand-appropriate ad copy."

const promptTemplate = `Generate marketing content for the following:

Brand Name: %s
Product/Service Description: %s
Target Audience: %s%s

Please provide:
1. A short, catchy ad headline (maximum 10 words)
2. A marketing description (2-3 sentences highlighting key benefits)
3. Three relevant hashtags
4. A compelling call-to-action phrase

Format the response as JSON with keys: headline, description, hashtags, and cta.`

// BuildPrompt renders the fixed generation prompt. When tone is non-nil
// an explicit tone directive sentence is appended to the audience line.
func BuildPrompt(brief models.CampaignBrief, tone *models.Tone) string {
	var directive string
	if tone != nil {
		directive = fmt.Sprintf(" The tone should be %s.", *tone)
	}
	return fmt.Sprintf(promptTemplate,
		brief.BrandName,
		brief.ProductDescription,
		brief.TargetAudience,
		directive,
	)
}
