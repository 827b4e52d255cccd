package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const identifyPrompt = `You are an expert at identifying food ingredients from photos. ` +
	`Look at the provided photo and list every visible food ingredient. ` +
	`Respond only with JSON of the form {"ingredients": ["ingredient name", ...]}. ` +
	`Use plain ingredient names without quantities. If no food ingredients are visible, return {"ingredients": []}.`

const suggestPrompt = `You are a world-class chef specializing in creating recipes based on a given list of ingredients. ` +
	`Generate recipes that utilize as many of the provided ingredients as possible, avoid any excluded ingredients, ` +
	`and honor any additional instructions. Assign each recipe a matchQuality score between 0 and 1, where 1 means ` +
	`the recipe uses all of the provided ingredients and 0 means the recipe is not a good fit. Respond only with JSON of the form:
{
    "recipes": [
        {
            "name": "Recipe name",
            "ingredients": ["2 cups flour", "3 eggs"],
            "instructions": ["Step 1: ...", "Step 2: ..."],
            "matchQuality": 0.85,
            "nutrients": {
                "calories": "350 kcal",
                "protein": "20g",
                "fat": "15g",
                "carbohydrates": "30g"
            }
        }
    ]
}
Nutrient values are per-serving estimates formatted as display strings, for example "350 kcal".
If no sensible recipe exists for the ingredients, return {"recipes": []}.`

// LLMService handles the two calls to the hosted model: ingredient
// identification from a photo and recipe suggestion from an ingredient set.
type LLMService struct {
	apiKey      string
	apiURL      string
	model       string
	visionModel string
	client      *http.Client
}

// NewLLMService creates a new LLMService instance. The API key comes from
// MODEL_API_KEY or a MODEL_API_KEY_FILE secret file.
func NewLLMService() (*LLMService, error) {
	apiKey := os.Getenv("MODEL_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("MODEL_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("MODEL_API_KEY or MODEL_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("MODEL_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}

	model := os.Getenv("MODEL_NAME")
	if model == "" {
		model = "gpt-4o-mini"
	}

	visionModel := os.Getenv("VISION_MODEL_NAME")
	if visionModel == "" {
		visionModel = model
	}

	return &LLMService{
		apiKey:      apiKey,
		apiURL:      apiURL,
		model:       model,
		visionModel: visionModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Message represents a message in the chat. Content is either a plain
// string or a list of content parts for vision requests.
type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type textPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type imagePart struct {
	Type     string   `json:"type"`
	ImageURL imageURL `json:"image_url"`
}

type imageURL struct {
	URL string `json:"url"`
}

// Request represents a chat-completions request to the model API
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

// IdentifyIngredients sends a photo to the model and returns the visible
// food ingredients. An empty list is a valid "nothing recognized" outcome;
// only call or contract failures produce an error.
func (s *LLMService) IdentifyIngredients(ctx context.Context, photoDataURI string) ([]string, error) {
	messages := []Message{
		{
			Role: "user",
			Content: []interface{}{
				textPart{Type: "text", Text: identifyPrompt},
				imagePart{Type: "image_url", ImageURL: imageURL{URL: photoDataURI}},
			},
		},
	}

	content, err := s.complete(ctx, s.visionModel, messages, 0.1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentification, err)
	}

	ingredients, err := ParseIdentifyResponse([]byte(stripFences(content)))
	if err != nil {
		return nil, err
	}

	return ingredients, nil
}

// SuggestRecipes sends an ingredient set to the model and returns the
// suggested recipes, unranked. The caller guards against an empty
// ingredient list; an empty recipe list in the reply is a valid "no match".
func (s *LLMService) SuggestRecipes(ctx context.Context, req SuggestRequest) ([]Recipe, error) {
	var prompt strings.Builder
	prompt.WriteString("Ingredients: " + strings.Join(req.Ingredients, ", "))
	if len(req.ExcludedIngredients) > 0 {
		prompt.WriteString("\nExcluded Ingredients: " + strings.Join(req.ExcludedIngredients, ", "))
	}
	if req.AdditionalInstructions != "" {
		prompt.WriteString("\nAdditional Instructions: " + req.AdditionalInstructions)
	}

	messages := []Message{
		{Role: "system", Content: suggestPrompt},
		{Role: "user", Content: prompt.String()},
	}

	content, err := s.complete(ctx, s.model, messages, 0.9)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestion, err)
	}

	recipes, err := ParseSuggestResponse([]byte(stripFences(content)))
	if err != nil {
		return nil, err
	}

	return recipes, nil
}

// complete performs one chat-completions call and returns the message
// content of the first choice.
func (s *LLMService) complete(ctx context.Context, model string, messages []Message, temperature float64) (string, error) {
	reqBody := Request{
		Model:    model,
		Messages: messages,
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[LLMService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// stripFences removes a markdown code fence some models wrap around JSON
// output even when a JSON response format was requested.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
