// Package insight generates a short AI spending commentary over committed
// totals using the Gemini API. The output is advisory free text; failures
// here never affect stored data.
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rsoni/hisab/internal/currencyutils"
	"rsoni/hisab/internal/ledger"
	"rsoni/hisab/internal/logging"
)

// Generator wraps a Gemini model for spending insight prompts.
type Generator struct {
	model   string
	apiKey  string
	timeout time.Duration
	logger  logging.Logger
}

// NewGenerator creates a Generator. The API key is required; the model name
// falls back to a sensible default when empty.
func NewGenerator(apiKey, model string, timeout time.Duration, logger logging.Logger) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{
		model:   model,
		apiKey:  apiKey,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Generate asks the model for three short observations about the given
// income/expense totals and returns the raw markdown text.
func (g *Generator) Generate(ctx context.Context, totals ledger.Totals) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close Gemini client")
		}
	}()

	prompt := fmt.Sprintf(
		"Act as a financial advisor. Data: Income %s, Expenses %s. "+
			"Give 3 short bullet points: Observation, Advice, Tip. Use Markdown formatting.",
		currencyutils.FormatCompact(totals.Income),
		currencyutils.FormatCompact(totals.Expenses))

	g.logger.Debug("Requesting AI insight", logging.Field{Key: "model", Value: g.model})

	resp, err := client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("insight generation failed: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("insight generation returned no text")
	}
	return text, nil
}

// collectText flattens the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
