package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.8)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateIcebreakers asks the model for up to 3 opening lines for a fresh
// match. Both bios may be empty; the prompt degrades to generic openers.
func (c *GeminiClient) GenerateIcebreakers(ctx context.Context, name1, bio1, name2, bio2 string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 short icebreaker messages for two students who just matched
		on a campus dating app.
		%s's bio: %q
		%s's bio: %q

		Task: Create 3 distinct opening lines that %s could send to %s.
		Keep each under 100 characters, friendly and casual.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`, name1, bio1, name2, bio2, name1, name2)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var icebreakers []string
	if err := json.Unmarshal([]byte(responseText), &icebreakers); err != nil {
		return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
	}
	if len(icebreakers) > 3 {
		icebreakers = icebreakers[:3]
	}

	return icebreakers, nil
}
