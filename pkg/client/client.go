// Package client talks to the portal's JSON API.
package client

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

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/wizard"
)

// DefaultTimeout bounds each request unless WithTimeout says otherwise.
const DefaultTimeout = 10 * time.Second

// idempotencyHeader must match the server's header name.
const idempotencyHeader = "Idempotency-Key"

// EventQuery narrows the event listing. Date is YYYY-MM-DD.
type EventQuery struct {
	Search   string
	Category string
	Date     string
}

// VerifyResult is the answer to a team-code check.
type VerifyResult struct {
	submission.Result
	Badge string `json:"badge,omitempty"`
}

// Client is the portal API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a new API client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListEvents fetches the events matching q.
func (c *Client) ListEvents(ctx context.Context, q EventQuery) ([]model.Event, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("q", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Date != "" {
		params.Set("date", q.Date)
	}

	var events []model.Event
	if err := c.get(ctx, withQuery("/api/events", params), &events); err != nil {
		return nil, fmt.Errorf("client.ListEvents: %w", err)
	}
	return events, nil
}

// GetEvent fetches a single event by ID.
func (c *Client) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	if err := c.get(ctx, "/api/events/"+url.PathEscape(id), &e); err != nil {
		return nil, fmt.Errorf("client.GetEvent: %w", err)
	}
	return &e, nil
}

// ListTeams fetches teams filtered by search text and skill.
func (c *Client) ListTeams(ctx context.Context, search, skill string) ([]model.Team, error) {
	var teams []model.Team
	if err := c.get(ctx, withQuery("/api/teams", directoryParams(search, skill)), &teams); err != nil {
		return nil, fmt.Errorf("client.ListTeams: %w", err)
	}
	return teams, nil
}

// ListIndividuals fetches individuals filtered by search text and skill.
func (c *Client) ListIndividuals(ctx context.Context, search, skill string) ([]model.Individual, error) {
	var people []model.Individual
	if err := c.get(ctx, withQuery("/api/individuals", directoryParams(search, skill)), &people); err != nil {
		return nil, fmt.Errorf("client.ListIndividuals: %w", err)
	}
	return people, nil
}

// VerifyTeamCode checks a team code. An unknown code is not an error.
func (c *Client) VerifyTeamCode(ctx context.Context, code string) (*VerifyResult, error) {
	var res VerifyResult
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	if err := c.post(ctx, "/api/team-codes/verify", "", body, &res); err != nil {
		return nil, fmt.Errorf("client.VerifyTeamCode: %w", err)
	}
	return &res, nil
}

// Register posts a registration. key may be empty to skip duplicate detection.
func (c *Client) Register(ctx context.Context, key string, reg wizard.Registration) (*model.Receipt, error) {
	var receipt model.Receipt
	if err := c.post(ctx, "/api/registrations", key, reg, &receipt); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return &receipt, nil
}

// SubmitProject posts a project submission.
func (c *Client) SubmitProject(ctx context.Context, key string, sub submission.Submission) (*model.Receipt, error) {
	var receipt model.Receipt
	if err := c.post(ctx, "/api/submissions", key, sub, &receipt); err != nil {
		return nil, fmt.Errorf("client.SubmitProject: %w", err)
	}
	return &receipt, nil
}

// Stats fetches the service statistics.
func (c *Client) Stats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := c.get(ctx, "/stats", &stats); err != nil {
		return nil, fmt.Errorf("client.Stats: %w", err)
	}
	return stats, nil
}

func directoryParams(search, skill string) url.Values {
	params := url.Values{}
	if search != "" {
		params.Set("q", search)
	}
	if skill != "" {
		params.Set("skill", skill)
	}
	return params
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) post(ctx context.Context, path, key string, body, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, key, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path, key string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(idempotencyHeader, key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Fields  map[string]string `json:"fields"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message, Fields: apiErr.Fields}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
