package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/adcopy-studio/backend/internal/config"
	"github.com/adcopy-studio/backend/internal/models"
)

const (
	maxTokens   = 250
	temperature = 0.7
)

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	// ErrKindRequest covers transport, auth and API errors.
	ErrKindRequest ErrorKind = "request"
	// ErrKindEmpty means the API answered with no choices.
	ErrKindEmpty ErrorKind = "empty"
	// ErrKindDecode means the model reply was not the expected JSON object.
	ErrKindDecode ErrorKind = "decode"
)

// GenerationError is the typed failure returned by Generator.Generate.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator renders the prompt and calls the chat completions endpoint.
type Generator struct {
	client openai.Client
	model  string
	log    *zap.Logger
}

func NewGenerator(cfg *config.Config, log *zap.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithRequestTimeout(cfg.OpenAITimeout),
		// One outbound call per request, the SDK must not retry behind our back.
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	return &Generator{
		client: openai.NewClient(opts...),
		model:  cfg.OpenAIModel,
		log:    log,
	}
}

// adCopyPayload mirrors the JSON object the prompt asks the model for.
// Pointer fields let us tell a missing key from an empty value.
type adCopyPayload struct {
	Headline    *string  `json:"headline"`
	Description *string  `json:"description"`
	Hashtags    []string `json:"hashtags"`
	CTA         *string  `json:"cta"`
}

// Generate performs one chat completion and maps the reply verbatim into
// an AdCopy. Exactly one outbound call, no retries.
func (g *Generator) Generate(ctx context.Context, brief models.CampaignBrief, tone *models.Tone) (models.AdCopy, error) {
	prompt := BuildPrompt(brief, tone)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	}

	res, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		g.log.Warn("chat completion failed", zap.Error(err))
		return models.AdCopy{}, &GenerationError{Kind: ErrKindRequest, Err: err}
	}
	if len(res.Choices) == 0 {
		return models.AdCopy{}, &GenerationError{Kind: ErrKindEmpty, Err: fmt.Errorf("no choices in response")}
	}

	content := res.Choices[0].Message.Content

	var payload adCopyPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		g.log.Warn("model reply is not valid JSON", zap.Error(err))
		return models.AdCopy{}, &GenerationError{Kind: ErrKindDecode, Err: err}
	}
	if payload.Headline == nil || payload.Description == nil || payload.CTA == nil {
		return models.AdCopy{}, &GenerationError{
			Kind: ErrKindDecode,
			Err:  fmt.Errorf("reply missing one of headline, description, cta"),
		}
	}

	hashtags := payload.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	return models.AdCopy{
		Headline:    *payload.Headline,
		Description: *payload.Description,
		Hashtags:    hashtags,
		CTA:         *payload.CTA,
	}, nil
}
