package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"somon-ai/internal/config"
	"somon-ai/internal/core/domain"
	"strings"
	"time"
)

// maxResponseBytes caps the body read back from the api
const maxResponseBytes = 16 << 20

// apiKeyHeader carries the key, the request url never holds it
const apiKeyHeader = "x-goog-api-key"

// Client calls the generateContent endpoint of the Generative Language api
type Client struct {
	http   *http.Client
	config config.GeminiConfig
	logger *slog.Logger
}

// NewClient creates a new gemini client
func NewClient(cfg config.GeminiConfig, logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		config: cfg,
		logger: logger,
	}
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

// GenerateContent sends the prompt followed by every media part and returns the raw json answer
func (c *Client) GenerateContent(ctx context.Context, prompt string, media []domain.InlineMedia) (string, error) {
	parts := make([]part, 0, len(media)+1)
	parts = append(parts, part{Text: prompt})
	for _, m := range media {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: m.MimeType,
			Data:     base64.StdEncoding.EncodeToString(m.Data),
		}})
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.config.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call %s: %w", c.config.Model, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("gemini answered",
		"model", c.config.Model, "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(raw),
		}
	}

	compact := &bytes.Buffer{}
	if err := json.Compact(compact, raw); err != nil {
		return "", fmt.Errorf("invalid json answer: %w", err)
	}
	return compact.String(), nil
}

func (c *Client) endpoint() string {
	base := strings.TrimRight(c.config.Endpoint, "/")
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, url.PathEscape(c.config.Model))
}
