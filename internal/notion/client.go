package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// searchPageSize caps destination listings to a single page of results.
	searchPageSize = 20

	defaultTimeout = 30 * time.Second
	defaultRetries = 3
	defaultBackoff = 500 * time.Millisecond
)

// APIError is a non-2xx response from the Notion API. The raw body is kept
// for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api status %d: %s", e.StatusCode, e.Body)
}

// NetworkError is a transport-level failure (connection refused, timeout).
// These are retried with backoff before being surfaced.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("notion request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Destination is a remote page notes can be appended to.
type Destination struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Client is a client for the Notion REST API. Requests carry a per-call
// bearer token since the stored credential can change at any time.
type Client struct {
	BaseURL string
	Version string
	client  *http.Client

	retries int
	backoff time.Duration
}

// NewClient creates a new Notion client with a per-call timeout and a
// bounded retry policy for transient failures.
func NewClient(baseURL, version string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Version: version,
		client:  &http.Client{Timeout: defaultTimeout},
		retries: defaultRetries,
		backoff: defaultBackoff,
	}
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type searchRequest struct {
	Filter   searchFilter `json:"filter"`
	Sort     searchSort   `json:"sort"`
	PageSize int          `json:"page_size"`
}

type searchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

type searchSort struct {
	Direction string `json:"direction"`
	Timestamp string `json:"timestamp"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Object     string `json:"object"`
	ID         string `json:"id"`
	URL        string `json:"url"`
	Properties map[string]struct {
		Type  string     `json:"type"`
		Title []richText `json:"title"`
	} `json:"properties"`
}

// Search lists candidate destination pages, most recently edited first,
// capped at one page of results. Pages without a readable title get a
// placeholder. Failures surface to the caller; there is no fallback here.
func (c *Client) Search(ctx context.Context, token string) ([]Destination, error) {
	payload := searchRequest{
		Filter:   searchFilter{Property: "object", Value: "page"},
		Sort:     searchSort{Direction: "descending", Timestamp: "last_edited_time"},
		PageSize: searchPageSize,
	}

	var resp searchResponse
	if err := c.doJSON(ctx, token, http.MethodPost, "/v1/search", payload, &resp); err != nil {
		return nil, err
	}

	destinations := make([]Destination, 0, len(resp.Results))
	for _, result := range resp.Results {
		destinations = append(destinations, Destination{
			ID:    result.ID,
			Title: pageTitle(result),
			URL:   result.URL,
		})
	}

	return destinations, nil
}

type appendRequest struct {
	Children []block `json:"children"`
}

type block struct {
	Object    string    `json:"object"`
	Type      string    `json:"type"`
	Paragraph paragraph `json:"paragraph"`
}

type paragraph struct {
	RichText []textNode `json:"rich_text"`
}

type textNode struct {
	Type string      `json:"type"`
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

// AppendParagraph appends a single plain-text paragraph block to the page's
// content tree.
//
// No idempotency key is used: if a call fails after the server applied it
// (or a retry follows an ambiguous timeout), the paragraph can be appended
// twice. Callers that cannot tolerate duplicates must not retry.
func (c *Client) AppendParagraph(ctx context.Context, token, pageID, text string) error {
	payload := appendRequest{
		Children: []block{
			{
				Object: "block",
				Type:   "paragraph",
				Paragraph: paragraph{
					RichText: []textNode{
						{Type: "text", Text: textContent{Content: text}},
					},
				},
			},
		},
	}

	path := fmt.Sprintf("/v1/blocks/%s/children", pageID)
	return c.doJSON(ctx, token, http.MethodPatch, path, payload, nil)
}

// RetrievePage probes whether the page still exists. A deleted or
// unshared page yields an APIError with status 404 (see IsNotFound).
func (c *Client) RetrievePage(ctx context.Context, token, pageID string) error {
	path := fmt.Sprintf("/v1/pages/%s", pageID)
	return c.doJSON(ctx, token, http.MethodGet, path, nil, nil)
}

// doJSON issues an authenticated JSON request with bounded retries.
// Transport errors, 429 and 5xx responses are retried with exponential
// backoff; other non-2xx responses are final.
func (c *Client) doJSON(ctx context.Context, token, method, path string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	url := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			if err := sleepContext(ctx, c.backoff<<(attempt-1)); err != nil {
				return err
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		req.Header.Set("Notion-Version", c.Version)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = &NetworkError{Err: err}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if out != nil {
				if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
					_ = resp.Body.Close()
					return fmt.Errorf("failed to decode response: %w", err)
				}
			}
			_ = resp.Body.Close()
			return nil
		}

		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(raw)}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = apiErr
			continue
		}
		return apiErr
	}

	return lastErr
}

// pageTitle extracts the plain-text title from a page's title property.
func pageTitle(result searchResult) string {
	for _, prop := range result.Properties {
		if prop.Type != "title" {
			continue
		}
		var parts []string
		for _, rt := range prop.Title {
			if rt.PlainText != "" {
				parts = append(parts, rt.PlainText)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "")
		}
	}
	return "Untitled"
}

// sleepContext waits for the backoff duration or until the context ends.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
