// Package api provides the typed HTTP client for the Meal-E backend.
// Five resources: the pantry (fetch, delete by id), the preferences
// mirror (fetch, push), and the meal plan (fetch, optionally forcing a
// server-side generation pass). Every failure comes back as an error;
// nothing here terminates the process.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
	"github.com/Daniaarav2005/Meal-E/internal/logger"
)

// DefaultPlanTimeout covers server-side plan generation, which can take
// minutes when the backend regenerates from scratch.
const DefaultPlanTimeout = 300 * time.Second

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the timeout for pantry and preferences calls.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithPlanTimeout sets the timeout for meal-plan fetches.
func WithPlanTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.planHTTP.Timeout = d }
}

// WithHTTPClient replaces both underlying clients. Test hook.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
		c.planHTTP = h
	}
}

// Compile-time interface check.
var _ domain.PantryAPI = (*Client)(nil)

// Client talks to a Meal-E backend. The base URL is an explicit
// dependency; there is no shared global instance.
type Client struct {
	baseURL  string
	http     *http.Client
	planHTTP *http.Client
	log      *logger.Logger
}

// NewClient creates a backend client for the given base URL
// (e.g. "http://192.168.1.20:8000").
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		planHTTP: &http.Client{Timeout: DefaultPlanTimeout},
		log:      log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchPantry retrieves the full pantry collection.
func (c *Client) FetchPantry(ctx context.Context) ([]domain.PantryRecord, error) {
	body, err := c.do(ctx, c.http, http.MethodGet, c.baseURL+"/pantry", nil)
	if err != nil {
		return nil, fmt.Errorf("api: fetch pantry: %w", err)
	}

	var decoded pantryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("api: decode pantry: %w", err)
	}

	records := make([]domain.PantryRecord, 0, len(decoded.Pantry))
	for _, item := range decoded.Pantry {
		records = append(records, item.toDomain())
	}
	c.log.Debug("api: fetched %d pantry records", len(records))
	return records, nil
}

// DeletePantryItem removes an item from the backend pantry by its
// backend id.
func (c *Client) DeletePantryItem(ctx context.Context, id int) error {
	u := c.baseURL + "/pantry?" + url.Values{"id": {strconv.Itoa(id)}}.Encode()
	if _, err := c.do(ctx, c.http, http.MethodDelete, u, nil); err != nil {
		return fmt.Errorf("api: delete pantry item %d: %w", id, err)
	}
	c.log.Debug("api: deleted pantry item %d", id)
	return nil
}

// FetchProfile retrieves the user preferences mirror.
func (c *Client) FetchProfile(ctx context.Context) (*domain.UserProfile, error) {
	body, err := c.do(ctx, c.http, http.MethodGet, c.baseURL+"/preferences", nil)
	if err != nil {
		return nil, fmt.Errorf("api: fetch profile: %w", err)
	}

	var decoded userProfile
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("api: decode profile: %w", err)
	}
	return decoded.toDomain(), nil
}

// SaveProfile pushes the full preferences mirror. Last writer wins;
// there is no merge on either side.
func (c *Client) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	payload, err := json.Marshal(fromDomainProfile(profile))
	if err != nil {
		return fmt.Errorf("api: marshal profile: %w", err)
	}

	if _, err := c.do(ctx, c.http, http.MethodPut, c.baseURL+"/preferences", payload); err != nil {
		return fmt.Errorf("api: save profile: %w", err)
	}
	c.log.Debug("api: profile saved (%d bytes)", len(payload))
	return nil
}

// FetchMealPlan retrieves the weekly plan. With generate set, the server
// builds a fresh plan instead of returning the stored one — expect this
// to be slow; the call runs on the long-timeout client.
func (c *Client) FetchMealPlan(ctx context.Context, generate bool) (*domain.MealPlan, error) {
	u := c.baseURL + "/meal-plan?" + url.Values{"generate": {strconv.FormatBool(generate)}}.Encode()
	body, err := c.do(ctx, c.planHTTP, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("api: fetch meal plan: %w", err)
	}

	var decoded mealPlanResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("api: decode meal plan: %w", err)
	}
	c.log.Debug("api: fetched meal plan (%d days)", len(decoded.Plan))
	return decoded.toDomain(), nil
}

// do issues one request and returns the response body. Any non-2xx
// status is an error carrying the status line and (truncated) body.
func (c *Client) do(ctx context.Context, client *http.Client, method, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("api: %s %s", method, rawURL)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %s", resp.Status, truncate(string(body), 200))
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
