package apiclient

// Package apiclient is the typed HTTP client for the kinship REST backend.
// It owns query-parameter shaping and response decoding only; all data is
// owned by the backend service.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
)

const defaultTimeout = 15 * time.Second

// maxErrorBodyBytes bounds how much of an error response we read for
// message extraction.
const maxErrorBodyBytes = 64 * 1024

// Config holds settings for constructing a Client.
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.kinship.example".
	BaseURL string
	// Timeout applies when no custom Client is supplied.
	Timeout time.Duration
	// ErrorMessagePath is a JMESPath expression locating the human-readable
	// message inside error payloads. Empty uses the default expression.
	ErrorMessagePath string
	// Client overrides the HTTP client (tests, custom transports).
	Client *http.Client
}

// Client talks to the kinship backend over HTTP/JSON.
type Client struct {
	baseURL   string
	client    *http.Client
	extractor *errorMessageExtractor
}

// New builds a Client. Callers should pass a validated config.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	extractor, err := newErrorMessageExtractor(cfg.ErrorMessagePath)
	if err != nil {
		return nil, fmt.Errorf("compile error message path: %w", err)
	}

	return &Client{
		baseURL:   base,
		client:    hc,
		extractor: extractor,
	}, nil
}

// wireSortFields maps UI sort fields onto the backend's sortBy values.
var wireSortFields = map[model.SortField]string{ //nolint:gochecknoglobals // read-only wire name lookup
	model.SortByCreatedAt: "createdAt",
	model.SortByEventType: "eventType",
	model.SortByActor:     "actor",
}

// GetProject fetches a project record including its precomputed timeline.
func (c *Client) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("project id is required")
	}

	var project model.Project
	if err := c.get(ctx, "/projects/"+url.PathEscape(projectID), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjectEvents fetches one page of events for a project. The query's
// Search term is local-only and deliberately never sent to the backend.
func (c *Client) ListProjectEvents(
	ctx context.Context,
	projectID string,
	q model.FeedQuery,
) (*model.EventPage, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("project id is required")
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.PageSize))
	if sortBy, ok := wireSortFields[q.SortBy]; ok {
		params.Set("sortBy", sortBy)
	}
	if q.SortDir != "" {
		params.Set("sortOrder", string(q.SortDir))
	}
	if q.EventType != "" {
		params.Set("eventType", q.EventType)
	}

	var page model.EventPage
	if err := c.get(ctx, "/projects/"+url.PathEscape(projectID)+"/events", params, &page); err != nil {
		return nil, err
	}

	// Backends occasionally omit "events" entirely for empty results; the
	// view must see an empty page, never nil.
	if page.Events == nil {
		page.Events = []model.Event{}
	}
	return &page, nil
}

// AddResearchNote appends a research milestone note to the project feed.
func (c *Client) AddResearchNote(ctx context.Context, projectID, text string) error {
	if strings.TrimSpace(projectID) == "" {
		return errors.New("project id is required")
	}
	body := map[string]string{"text": text}
	return c.post(ctx, "/projects/"+url.PathEscape(projectID)+"/notes", body)
}

// AddCollaborator associates a person from the directory with a project.
func (c *Client) AddCollaborator(ctx context.Context, projectID, personID, notes string) error {
	if strings.TrimSpace(projectID) == "" {
		return errors.New("project id is required")
	}
	if strings.TrimSpace(personID) == "" {
		return errors.New("person id is required")
	}
	body := map[string]string{"personId": personID, "notes": notes}
	return c.post(ctx, "/projects/"+url.PathEscape(projectID)+"/people", body)
}

// SearchPeople queries the person directory for picker candidates.
func (c *Client) SearchPeople(ctx context.Context, query string, limit int) ([]model.Person, error) {
	params := url.Values{}
	params.Set("q", strings.TrimSpace(query))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result struct {
		People []model.Person `json:"people"`
	}
	if err := c.get(ctx, "/people", params, &result); err != nil {
		return nil, err
	}
	if result.People == nil {
		result.People = []model.Person{}
	}
	return result.People, nil
}

// get issues a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s: %w", path, err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return nil
}

// post issues a JSON POST request and discards any success body.
func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s: %w", path, err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp)
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    c.extractor.extract(body),
	}
}

func closeBody(body io.ReadCloser) {
	_ = body.Close()
}
