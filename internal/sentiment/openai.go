package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/yourname/serenedesk/internal"
)

const analyzeSystemPrompt = `You are a workplace wellness assistant. Read the user's check-in and classify it.
Respond with a single JSON object and nothing else, using exactly these keys:
  "mood_score": number from 0 (very low) to 10 (excellent),
  "stress_level": one of "Low", "Moderate", "High",
  "energy_level": one of "Low", "Medium", "High",
  "stress_triggers": array of short lowercase tags naming sources of stress (e.g. "deadline", "meetings"); empty if none.`

const suggestSystemPrompt = `You are a workplace wellness coach. Given a check-in and its classification,
suggest small, practical actions. Respond with a single JSON object and nothing else, using these keys:
  "break_suggestion": one short break activity,
  "focus_tip": one short focus technique,
  "journaling_prompt": one reflective question.
Keep each value under 30 words.`

type OpenAIConfig struct {
	APIKey              string
	BaseURL             string
	Model               string
	MaxTokens           int
	Temperature         float32
	TimeoutMS           int
	MaxRetries          int
	MaxTranscriptTokens int
}

// OpenAIAnalyzer calls a chat completion endpoint in JSON mode.
type OpenAIAnalyzer struct {
	client    *openai.Client
	cfg       OpenAIConfig
	tokenizer *Tokenizer
	logger    internal.Logger
}

func NewOpenAIAnalyzer(cfg OpenAIConfig, tokenizer *Tokenizer, logger internal.Logger) *OpenAIAnalyzer {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	httpClient := &http.Client{}
	if cfg.TimeoutMS > 0 {
		httpClient.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	oc.HTTPClient = httpClient

	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if tokenizer == nil {
		tokenizer = NewTokenizerForModel(cfg.Model)
	}
	return &OpenAIAnalyzer{
		client:    openai.NewClientWithConfig(oc),
		cfg:       cfg,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

func (a *OpenAIAnalyzer) Name() string { return "openai:" + a.cfg.Model }

type rawClassification struct {
	MoodScore      *float64 `json:"mood_score"`
	StressLevel    string   `json:"stress_level"`
	EnergyLevel    string   `json:"energy_level"`
	StressTriggers []string `json:"stress_triggers"`
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (internal.Classification, error) {
	content, err := a.complete(ctx, analyzeSystemPrompt, a.tokenizer.Truncate(text, a.cfg.MaxTranscriptTokens))
	if err != nil {
		return internal.Classification{}, internal.NewExternalServiceError("analyze", err)
	}

	var raw rawClassification
	if err := decodeJSONObject(content, &raw); err != nil {
		return internal.Classification{}, internal.NewExternalServiceError("analyze", err)
	}

	c := internal.Classification{
		MoodScore:      internal.DefaultMoodScore,
		StressLevel:    raw.StressLevel,
		EnergyLevel:    raw.EnergyLevel,
		StressTriggers: raw.StressTriggers,
	}
	if raw.MoodScore != nil {
		c.MoodScore = *raw.MoodScore
	}
	return c, nil
}

type rawSuggestions struct {
	BreakSuggestion  string `json:"break_suggestion"`
	FocusTip         string `json:"focus_tip"`
	FocusTips        string `json:"focus_tips"`
	JournalingPrompt string `json:"journaling_prompt"`
}

func (a *OpenAIAnalyzer) GenerateSuggestions(ctx context.Context, text string, c internal.Classification) (internal.Suggestions, error) {
	var user strings.Builder
	user.WriteString("Check-in:\n")
	user.WriteString(a.tokenizer.Truncate(text, a.cfg.MaxTranscriptTokens))
	fmt.Fprintf(&user, "\n\nClassification: mood_score=%.1f stress_level=%s energy_level=%s",
		c.MoodScore, c.StressLevel, c.EnergyLevel)
	if len(c.StressTriggers) > 0 {
		fmt.Fprintf(&user, " stress_triggers=%s", strings.Join(c.StressTriggers, ", "))
	}

	content, err := a.complete(ctx, suggestSystemPrompt, user.String())
	if err != nil {
		return internal.Suggestions{}, internal.NewExternalServiceError("suggestions", err)
	}

	var raw rawSuggestions
	if err := decodeJSONObject(content, &raw); err != nil {
		return internal.Suggestions{}, internal.NewExternalServiceError("suggestions", err)
	}
	focus := raw.FocusTip
	if focus == "" {
		focus = raw.FocusTips
	}
	return internal.Suggestions{
		BreakSuggestion:  strings.TrimSpace(raw.BreakSuggestion),
		FocusTip:         strings.TrimSpace(focus),
		JournalingPrompt: strings.TrimSpace(raw.JournalingPrompt),
	}, nil
}

// complete runs one chat completion with retries on transient failures.
func (a *OpenAIAnalyzer) complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	var lastErr error
	for attempt := 0; attempt <= a.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(150*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := a.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", errors.New("model returned no choices")
			}
			return resp.Choices[0].Message.Content, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
		if a.logger != nil {
			a.logger.Warnf("openai attempt %d failed: %v", attempt+1, err)
		}
	}
	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	return true
}

// decodeJSONObject tolerates a markdown code fence around the object.
func decodeJSONObject(content string, v any) error {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	if s == "" {
		return errors.New("empty model response")
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("malformed model response: %w", err)
	}
	return nil
}
