package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the arena JSON API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is the error body returned by the server
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Stats is the attribute allocation sent by create, allocate and spend
type Stats struct {
	HP         int `json:"hp"`
	Power      int `json:"power"`
	Agility    int `json:"agility"`
	Protection int `json:"protection"`
}

// CreateProfile registers a new fighter
func (c *Client) CreateProfile(ctx context.Context, id, nickname, race string, points Stats) (ProfileResult, error) {
	var result ProfileResult
	err := c.post(ctx, "/create-profile", map[string]any{
		"telegram_id":  id,
		"nickname":     nickname,
		"race":         race,
		"extra_points": points,
	}, &result)
	return result, err
}

// LookupProfile fetches a profile. Unknown ids are not an error.
func (c *Client) LookupProfile(ctx context.Context, id string) (LookupResult, error) {
	var result LookupResult
	err := c.do(ctx, http.MethodGet, "/profile/"+url.PathEscape(id), nil, &result)
	return result, err
}

// Fight plays one round against the bot
func (c *Client) Fight(ctx context.Context, id, hit, defend string) (FightResult, error) {
	var result FightResult
	err := c.post(ctx, "/fight", map[string]string{
		"telegram_id": id,
		"hit":         hit,
		"defend":      defend,
	}, &result)
	return result, err
}

// Allocate spends every unspent point at once
func (c *Client) Allocate(ctx context.Context, id string, points Stats) (ProfileResult, error) {
	var result ProfileResult
	err := c.post(ctx, "/allocate-points", map[string]any{
		"telegram_id": id,
		"allocation":  points,
	}, &result)
	return result, err
}

// Spend spends some of the unspent points
func (c *Client) Spend(ctx context.Context, id string, points Stats) (ProfileResult, error) {
	var result ProfileResult
	err := c.post(ctx, "/spend-points", map[string]any{
		"telegram_id": id,
		"points":      points,
	}, &result)
	return result, err
}

// Reset deletes every profile on servers that allow it
func (c *Client) Reset(ctx context.Context) (MessageResult, error) {
	var result MessageResult
	err := c.post(ctx, "/reset-profiles", nil, &result)
	return result, err
}

// Health checks the server is up
func (c *Client) Health(ctx context.Context) (HealthResult, error) {
	var result HealthResult
	err := c.do(ctx, http.MethodGet, "/health", nil, &result)
	return result, err
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err == nil && apiErr.Code != "" {
			return apiErr
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
