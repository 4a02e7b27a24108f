package concierge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"luminavenues/internal/domain"
)

const (
	// User-facing reasoning strings for the two failure modes. The engine
	// treats both the same way: empty list, reasoning shown as-is.
	reasonMissingKey  = "AI Service unavailable (Missing API Key)."
	reasonCallFailed  = "I'm having trouble connecting to the concierge service right now."
	reasonFallback    = "Here are some venues you might like."
	maxRecommendation = 3
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Gemini generateContent API to turn a free-text query into
// a ranked subset of venue IDs. Every failure collapses into an empty
// recommendation with an explanatory reasoning string; Recommend never
// returns an error.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

func New(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Recommend(ctx context.Context, query string, venues []domain.VenueSummary) domain.Recommendation {
	if c.apiKey == "" {
		log.Println("concierge: API key missing, returning empty recommendation")
		return domain.Recommendation{VenueIDs: []string{}, Reasoning: reasonMissingKey}
	}

	raw, err := c.generate(ctx, prompt(query, venues))
	if err != nil {
		log.Printf("concierge: call failed: %v", err)
		return domain.Recommendation{VenueIDs: []string{}, Reasoning: reasonCallFailed}
	}

	var parsed struct {
		VenueIDs  []string `json:"venueIds"`
		Reasoning string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("concierge: bad model output: %v", err)
		return domain.Recommendation{VenueIDs: []string{}, Reasoning: reasonCallFailed}
	}

	reasoning := parsed.Reasoning
	if reasoning == "" {
		reasoning = reasonFallback
	}
	return domain.Recommendation{
		VenueIDs:  clampIDs(parsed.VenueIDs, venues),
		Reasoning: reasoning,
	}
}

// clampIDs keeps only IDs drawn from the supplied summaries, capped at
// maxRecommendation, preserving the model's ranking.
func clampIDs(ids []string, venues []domain.VenueSummary) []string {
	known := make(map[string]bool, len(venues))
	for _, v := range venues {
		known[v.ID] = true
	}
	out := make([]string, 0, maxRecommendation)
	seen := make(map[string]bool, maxRecommendation)
	for _, id := range ids {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == maxRecommendation {
			break
		}
	}
	return out
}

func prompt(query string, venues []domain.VenueSummary) string {
	summaries, _ := json.Marshal(venues)
	return fmt.Sprintf(`You are an expert Venue Concierge.
User Query: %q

Here is the list of available venues:
%s

Select the best matching venues (max 3). Consider the user's implicit intent (e.g., "cheap" = low price, "huge" = high capacity, "vibe" = description/features).
Return the IDs and a short reasoning.`, query, summaries)
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
	Temperature      float64         `json:"temperature"`
}

// responseSchema mirrors the structured output the UI contract expects.
var responseSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "venueIds": {
      "type": "ARRAY",
      "items": {"type": "STRING"},
      "description": "List of IDs of the venues that best match the user's request."
    },
    "reasoning": {
      "type": "STRING",
      "description": "A friendly, short explanation of why these venues were chosen based on the user's vibe or requirements."
    }
  },
  "required": ["venueIds", "reasoning"]
}`)

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call and returns the model's raw
// JSON text output.
func (c *Client) generate(ctx context.Context, promptText string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: promptText}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
			Temperature:      0.3,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
