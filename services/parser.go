package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Vaaraprasad44/movies2/config"
	"github.com/Vaaraprasad44/movies2/models"
	sharedhttp "github.com/Vaaraprasad44/movies2/shared/http"
)

// ErrParseFailed marks any failure of the extraction service: transport
// errors, non-JSON model output, anything. Handlers map it to a 400 so
// callers can distinguish "your text could not be parsed" from server
// faults. The service gets exactly one attempt per request, no retries.
var ErrParseFailed = errors.New("failed to parse user information")

const extractionSystemPrompt = `
You are an expert data parser. Parse the given text to extract user information.
Return ONLY a JSON object with the following exact structure:
{
    "first_name": "extracted first name",
    "last_name": "extracted last name",
    "phone_number": "extracted phone number",
    "street_address": "extracted street address including number",
    "apartment_number": "extracted apartment/unit number or null",
    "city": "extracted city",
    "state": "extracted state/province",
    "country": "extracted country",
    "zip_code": "extracted zip/postal code"
}

Rules:
- Extract information as accurately as possible from the text
- If apartment number is not mentioned, use null
- Format phone numbers consistently (e.g., +1-555-123-4567)
- Use proper capitalization for names and places
- For any required field that cannot be determined from the text:
  * For names: use "Unknown"
  * For phone_number: use "Not provided"
  * For addresses: use "Not provided"
  * For city/state/country: use "Unknown"
  * For zip_code: use "00000"
- NEVER use null for required string fields - always provide a string value
- Return ONLY the JSON, no other text
`

// requiredFieldDefaults are the sentinel values coerced in whenever the
// model leaves a required field empty despite the prompt. Required fields
// are never stored as empty strings.
var requiredFieldDefaults = map[string]string{
	"first_name":     "Unknown",
	"last_name":      "Unknown",
	"phone_number":   "Not provided",
	"street_address": "Not provided",
	"city":           "Unknown",
	"state":          "Unknown",
	"country":        "Unknown",
	"zip_code":       "00000",
}

// AIParser extracts structured sign-up data from free text through an
// OpenAI-compatible chat-completions endpoint (Groq by default).
type AIParser struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewAIParser(cfg *config.Config) *AIParser {
	return &AIParser{
		apiKey:  cfg.GroqAPIKey,
		model:   cfg.GroqModel,
		baseURL: strings.TrimSuffix(cfg.GroqBaseURL, "/"),
		client:  sharedhttp.LongTimeoutClient,
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ParseUserInfo sends the user text to the model and returns the
// extracted fields with sentinel defaults filled in. Malformed model
// output is a hard ErrParseFailed, never a silent default-fill; defaults
// only apply to a structurally valid but incomplete response.
func (p *AIParser) ParseUserInfo(ctx context.Context, userInput string) (models.ParsedUserInfo, error) {
	content, err := p.complete(ctx, userInput)
	if err != nil {
		return models.ParsedUserInfo{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return models.ParsedUserInfo{}, fmt.Errorf("%w: response is not valid JSON: %v", ErrParseFailed, err)
	}

	return cleanParsedFields(raw), nil
}

func (p *AIParser) complete(ctx context.Context, userInput string) (string, error) {
	reqBody, err := json.Marshal(chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: userInput},
		},
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// cleanParsedFields applies the sentinel defaults to required fields and
// normalizes the optional apartment number ("" and "null" mean absent).
func cleanParsedFields(raw map[string]any) models.ParsedUserInfo {
	field := func(name string) string {
		v, ok := raw[name].(string)
		if !ok {
			return requiredFieldDefaults[name]
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return requiredFieldDefaults[name]
		}
		return v
	}

	info := models.ParsedUserInfo{
		FirstName:     field("first_name"),
		LastName:      field("last_name"),
		PhoneNumber:   field("phone_number"),
		StreetAddress: field("street_address"),
		City:          field("city"),
		State:         field("state"),
		Country:       field("country"),
		ZipCode:       field("zip_code"),
	}

	if apt, ok := raw["apartment_number"].(string); ok {
		apt = strings.TrimSpace(apt)
		if apt != "" && apt != "null" {
			info.ApartmentNumber = &apt
		}
	}
	return info
}
