package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	model "github.com/volmatch/volmatch/internal/domain/model"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(resp.Body)
}

// suggestResponse mirrors the service's suggestion payload.
type suggestResponse struct {
	UserID       string              `json:"userId"`
	Matches      []model.MatchResult `json:"matches"`
	TotalMatches int                 `json:"totalMatches"`
	Timestamp    string              `json:"timestamp"`
}

// createUser posts a volunteer and returns the server-assigned profile.
func (c *HTTPClient) createUser(ctx context.Context, baseURL string, user model.User) (model.User, error) {
	resp, err := c.Post(ctx, baseURL+"/users", user)
	if err != nil {
		return model.User{}, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return model.User{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return model.User{}, fmt.Errorf("create user failed with status %d: %s", resp.StatusCode, body)
	}

	var stored model.User
	if err := json.Unmarshal(body, &stored); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user response: %w", err)
	}
	return stored, nil
}

// createEvent posts an event and returns the server-assigned record.
func (c *HTTPClient) createEvent(ctx context.Context, baseURL string, event model.Event) (model.Event, error) {
	resp, err := c.Post(ctx, baseURL+"/events", event)
	if err != nil {
		return model.Event{}, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return model.Event{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return model.Event{}, fmt.Errorf("create event failed with status %d: %s", resp.StatusCode, body)
	}

	var stored model.Event
	if err := json.Unmarshal(body, &stored); err != nil {
		return model.Event{}, fmt.Errorf("failed to decode event response: %w", err)
	}
	return stored, nil
}

// suggest issues one suggestion query and returns the parsed response.
func (c *HTTPClient) suggest(ctx context.Context, baseURL, userID string, limit int) (suggestResponse, error) {
	url := fmt.Sprintf("%s/matching/suggest?userId=%s&limit=%d", baseURL, userID, limit)
	resp, err := c.Get(ctx, url)
	if err != nil {
		return suggestResponse{}, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return suggestResponse{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return suggestResponse{}, fmt.Errorf("suggest failed with status %d: %s", resp.StatusCode, body)
	}

	var parsed suggestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return suggestResponse{}, fmt.Errorf("failed to decode suggest response: %w", err)
	}
	return parsed, nil
}
