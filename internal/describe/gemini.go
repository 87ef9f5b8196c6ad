package describe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
	"google.golang.org/genai"
)

// Prompt builds the request text for lang.
func Prompt(hours, minutes int, lang engine.Language) string {
	if lang == engine.LanguageZH {
		return fmt.Sprintf(config.DescribePromptZH, hours, minutes)
	}
	return fmt.Sprintf(config.DescribePromptEN, hours, minutes)
}

// GeminiGenerator implements Generator with the Gemini API.
type GeminiGenerator struct {
	Credentials CredentialSource
	Model       string

	// BaseURL and HTTPClient override the API endpoint; empty means default.
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiGenerator returns a generator using the default model.
func NewGeminiGenerator(creds CredentialSource) *GeminiGenerator {
	return &GeminiGenerator{Credentials: creds, Model: config.DescribeModel}
}

// Describe implements Generator. A new client is created per request so a
// key changed in the settings window is picked up immediately.
func (g *GeminiGenerator) Describe(ctx context.Context, hours, minutes int, lang engine.Language) (string, error) {
	if g.Credentials == nil {
		return "", ErrNoCredential
	}
	key, err := g.Credentials.APIKey()
	if err != nil {
		return "", err
	}

	cfg := &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: g.BaseURL,
			Headers: http.Header{config.HeaderUserAgent: {config.UserAgent}},
		},
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrGenClient, err)
	}

	slog.Debug(config.MsgDescribeReq,
		config.LogKeyComponent, config.CompDescribe,
		config.LogKeyModel, g.Model,
		config.LogKeyLang, lang.Code(),
	)

	resp, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(Prompt(hours, minutes, lang)), nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrGenRequest, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
