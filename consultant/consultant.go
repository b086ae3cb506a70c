// Package consultant forwards design-consultation chat messages to the
// Gemini generateContent endpoint and absorbs every failure mode into a
// friendly substitute reply. Callers never see an error.
package consultant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/models"
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

const systemInstruction = `You are a luxury home design consultant for Cedar Lux Properties, specializing in Cedar Creek Lake estates in East Texas.
Your goal is to help wealthy clients from Dallas design their dream lake house.
You should talk about architectural styles (Modern Farmhouse, Texas Transitional, Contemporary Lakefront),
outdoor living features (infinity pools, boat houses, outdoor kitchens), and interior finishes (white oak, marble, oversized windows).
Be sophisticated, helpful, and professional.
Respond briefly but elegantly. Use markdown for lists.`

// Substitute replies shown when the upstream call fails for any reason.
var fallbacks = []string{
	"I apologize, my creative circuits are momentarily resting by the lake. How else can I assist with your vision?",
	"Forgive me, I seem to have drifted off watching the sunset over the water. Could you share that thought once more?",
	"My apologies, inspiration escapes me for just a moment. Shall we revisit your dream estate in a little while?",
}

var errMissingKey = errors.New("missing API key")

// Client calls the generative-language endpoint. BaseURL and HTTPClient are
// overridable for tests; zero values get production defaults from New.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	fallbackSeq atomic.Uint64
}

func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      DefaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

type generateRequest struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Advise sends the prompt plus prior turns upstream and returns the reply
// text. Any transport error, missing credential, non-200 status or empty
// candidate yields a fallback string instead; the result is always non-empty
// displayable text.
func (c *Client) Advise(ctx context.Context, prompt string, history []models.ChatMessage) string {
	reply, err := c.generate(ctx, prompt, history)
	if err != nil {
		log.Warn().Err(err).Msg("Consultation call failed, serving fallback reply")
		return c.fallback()
	}
	if strings.TrimSpace(reply) == "" {
		log.Warn().Msg("Consultation call returned empty reply, serving fallback")
		return c.fallback()
	}
	return reply
}

func (c *Client) generate(ctx context.Context, prompt string, history []models.ChatMessage) (string, error) {
	if c.APIKey == "" {
		return "", errMissingKey
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := "model"
		if m.Role == models.RoleUser {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: prompt}}})

	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
		GenerationConfig:  generationConfig{Temperature: 0.7, TopK: 40, TopP: 0.95},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var sb strings.Builder
	if len(decoded.Candidates) > 0 {
		for _, p := range decoded.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}

// fallback rotates through the substitute replies deterministically.
func (c *Client) fallback() string {
	n := c.fallbackSeq.Add(1) - 1
	return fallbacks[n%uint64(len(fallbacks))]
}
