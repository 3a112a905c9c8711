// File path: internal/ingest/ragstore.go
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/medassist-ai/icdcoder/internal/common"
)

// Client fetches assembled chart summaries from the retrieval backend. The
// backend owns the retrieval-augmented generation step; this client only
// consumes its chart documents.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	available  bool
}

// chartDocument mirrors the backend's chart shape: the per-disease sections
// its RAG step produced plus any codes it already proposed.
type chartDocument struct {
	ChartID     string         `json:"chartId"`
	DxCodes     []string       `json:"dxCodes"`
	SummaryInfo []chartSection `json:"summaryInfo"`
}

type chartSection struct {
	Disease string `json:"disease"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

// NewFromEnv constructs a client from LoadConfig. A nil client with no error
// means no backend is configured.
func NewFromEnv(ctx context.Context) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, nil
	}
	return New(ctx, cfg), nil
}

// New constructs a client and probes the backend once. An unreachable
// backend is reported through Available, not an error, so startup can
// continue and surface the condition per request.
func New(ctx context.Context, cfg Config) *Client {
	logger := common.Logger()
	client := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
	}
	if err := client.probe(ctx); err != nil {
		logger.Warn("ingest: rag backend unreachable", "endpoint", client.baseURL, "error", err)
		return client
	}
	client.available = true
	logger.Info("ingest: rag backend connected", "endpoint", client.baseURL)
	return client
}

func (c *Client) Available() bool {
	return c != nil && c.available
}

func (c *Client) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("probe returned %s", resp.Status)
	}
	return nil
}

// Fetch retrieves one chart and flattens it into a Summary: section texts
// joined in order, backend-proposed codes carried as seeds.
func (c *Client) Fetch(ctx context.Context, chartID string) (Summary, error) {
	if strings.TrimSpace(chartID) == "" {
		return Summary{}, fmt.Errorf("chart id required")
	}
	endpoint := fmt.Sprintf("%s/api/v1/charts/%s", c.baseURL, url.PathEscape(chartID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch chart %s: %w", chartID, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Summary{}, err
	}
	if resp.StatusCode >= 400 {
		return Summary{}, fmt.Errorf("fetch chart %s: %s: %s", chartID, resp.Status, strings.TrimSpace(string(body)))
	}
	var doc chartDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return Summary{}, fmt.Errorf("parse chart %s: %w", chartID, err)
	}
	summary := Summary{ID: chartID, SeedCodes: normalizeSeeds(doc.DxCodes)}
	if doc.ChartID != "" {
		summary.ID = doc.ChartID
	}
	parts := make([]string, 0, len(doc.SummaryInfo))
	for _, section := range doc.SummaryInfo {
		text := strings.TrimSpace(section.Text)
		if text == "" {
			text = strings.TrimSpace(section.Summary)
		}
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	summary.Text = strings.Join(parts, "\n\n")
	if summary.Text == "" {
		return Summary{}, fmt.Errorf("chart %s has no summary text", chartID)
	}
	return summary, nil
}
