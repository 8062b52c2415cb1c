// Package client is a typed HTTP client for the IdealCar API, used by the
// idealctl command and by integrations that render the public listings.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/validator"
)

// ErrNotFound is returned when a record is missing on the server or in a
// fetched collection.
var ErrNotFound = errors.New("not found")

// APIError is a failed API call.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Client calls the public endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	validate *validator.Validator
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		validate:   validator.NewValidator(),
	}
}

// ListCars fetches every listing. Filtering happens locally with Filter.
func (c *Client) ListCars(ctx context.Context) ([]Listing, error) {
	var cars []domain.Vehicle
	if err := c.get(ctx, "/api/cars", &cars); err != nil {
		return nil, err
	}
	return NewListings(cars), nil
}

// GetCar fetches one listing.
func (c *Client) GetCar(ctx context.Context, id int64) (Listing, error) {
	var car domain.Vehicle
	if err := c.get(ctx, fmt.Sprintf("/api/cars/%d", id), &car); err != nil {
		return Listing{}, err
	}
	return NewListing(car), nil
}

func (c *Client) ListBlog(ctx context.Context) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	if err := c.get(ctx, "/api/blog", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetBlogPost(ctx context.Context, id int64) (domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.get(ctx, fmt.Sprintf("/api/blog/%d", id), &post); err != nil {
		return domain.BlogPost{}, err
	}
	return post, nil
}

// ListDealers fetches the active dealers.
func (c *Client) ListDealers(ctx context.Context) ([]domain.Dealer, error) {
	var dealers []domain.Dealer
	if err := c.get(ctx, "/api/dealers", &dealers); err != nil {
		return nil, err
	}
	return dealers, nil
}

// DealerCars fetches the listings of one dealer.
func (c *Client) DealerCars(ctx context.Context, dealerID int64) ([]Listing, error) {
	var cars []domain.Vehicle
	if err := c.get(ctx, fmt.Sprintf("/api/dealers/%d/cars", dealerID), &cars); err != nil {
		return nil, err
	}
	return NewListings(cars), nil
}

type contactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// SubmitContact validates msg locally and sends it. It returns the
// reference assigned by the server.
func (c *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) (string, error) {
	if err := c.validate.Contact(&msg); err != nil {
		return "", validator.ToAppError(err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact message: %w", err)
	}

	var resp contactResponse
	if err := c.do(ctx, http.MethodPost, "/api/contact", "", bytes.NewReader(body), "application/json", &resp); err != nil {
		return "", err
	}
	return resp.Reference, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, "", out)
}

// do sends one request and decodes a 2xx body into out. Any other status
// becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
	}
	return apiErr
}
