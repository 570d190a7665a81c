// Package openai implements the language-model query parsing strategy on an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// instructionTemplate is the fixed system instruction. The model is asked
// for strictly-JSON output matching the ParsedFilters shape; anything else
// is treated as a parse failure and handled by the rule-based fallback.
const instructionTemplate = `You are a search query parser for Indian coworking spaces and incubators.

Given a user's natural language query, extract structured search filters.

Available filters:
- type: "coworking" or "incubator" (coworking = shared office, co-working space, hot desk; incubator = startup incubator, accelerator, innovation hub)
- city: Indian city name, properly capitalized (e.g., "Mumbai", "Bangalore", "Delhi", "Hyderabad", "Pune", "Chennai")
- minCapacity: minimum number of seats/people (integer)
- maxPrice: maximum monthly price in INR (integer)
- zeroEquity: true if user wants no-equity / zero-equity incubators
- wifi: true if user specifically asks for WiFi
- meeting: true if user mentions meeting rooms / conference rooms
- governmentScheme: "AIM" for Atal Incubation Centres, "SISFS" for Seed Fund Scheme, "DST" for DST-TBIs, "state" for state government incubators
- textSearch: any specific name or keyword to match (e.g., venue name, area name)

Rules:
1. Only include filters that are clearly implied by the query
2. For city names, use the canonical Indian city name (e.g., "Bengaluru" -> "Bangalore", "Bombay" -> "Mumbai")
3. If user says "cheap" or "affordable", set maxPrice to 5000
4. If user says "large" or "big", set minCapacity to 100
5. If user mentions "government" or "govt", set governmentScheme to "state"
6. Return ONLY valid JSON, no markdown, no explanation

Examples:
Query: "coworking space in mumbai with 20 seats"
{"type":"coworking","city":"Mumbai","minCapacity":20}

Query: "zero equity incubators in delhi"
{"type":"incubator","city":"Delhi","zeroEquity":true}

Query: "IIT incubators"
{"type":"incubator","textSearch":"IIT"}`

// jsonObject pulls the first JSON object out of a completion, tolerating
// markdown fences around it.
var jsonObject = regexp.MustCompile(`(?s)\{.*?\}`)

// Parser parses queries by delegating to a chat completion model.
type Parser struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// Config holds the language-model provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewParser creates the LLM parsing strategy. Returns an error if no
// credential is configured, so the caller can wire the rule parser alone.
func NewParser(cfg *Config) (*Parser, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required: %w", domain.ErrParserUnavailable)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Parser{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Parse sends the query with the fixed instruction and decodes the JSON
// reply. Every failure mode (transport, timeout, empty choice, malformed
// JSON) comes back as an error wrapping domain.ErrParserUnavailable; the
// composite strategy turns that into a rule-based parse. No retries.
func (p *Parser) Parse(ctx context.Context, text string) (domain.ParsedFilters, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructionTemplate},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Query: %q\nJSON:", text)},
		},
		Temperature: 0,
		MaxTokens:   200,
	})
	if err != nil {
		return domain.ParsedFilters{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return domain.ParsedFilters{}, fmt.Errorf("empty completion response: %w", domain.ErrParserUnavailable)
	}

	parsed, err := decodeFilters(resp.Choices[0].Message.Content)
	if err != nil {
		return domain.ParsedFilters{}, err
	}

	p.logger.Debug("llm query parse",
		zap.String("model", p.model),
		zap.Duration("latency", time.Since(start)),
	)
	return parsed, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (p *Parser) HealthCheck(ctx context.Context) error {
	if _, err := p.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// decodeFilters extracts and decodes the first JSON object in a completion.
// Unknown fields are ignored, missing fields stay empty.
func decodeFilters(completion string) (domain.ParsedFilters, error) {
	raw := jsonObject.FindString(completion)
	if raw == "" {
		return domain.ParsedFilters{}, fmt.Errorf("no JSON object in completion: %w", domain.ErrParserUnavailable)
	}

	var parsed domain.ParsedFilters
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.ParsedFilters{}, fmt.Errorf("decode completion: %w: %w", domain.ErrParserUnavailable, err)
	}
	return parsed, nil
}

// parseAPIError extracts a readable error from the API response. Everything
// is wrapped with domain.ErrParserUnavailable so callers treat all provider
// failures identically.
func parseAPIError(err error) error {
	wrap := domain.ErrParserUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("completion request failed: %w: %w", wrap, err)
}
