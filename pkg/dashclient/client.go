// Package dashclient is a thin HTTP client for the admin backend API.
// It exposes one method per resource operation, serializes query parameters
// (omitting zero values) and decodes the JSON envelope every endpoint uses.
// There are no retries and no caching.
package dashclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is returned when the server responds with a non-2xx status.
// Message carries the server-provided error text when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client talks to a single admin backend origin.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the given origin, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken updates the bearer token, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the uniform response shape of every endpoint.
type envelope[T any] struct {
	Success    bool        `json:"success"`
	Data       T           `json:"data"`
	Message    string      `json:"message"`
	Error      string      `json:"error"`
	Pagination *Pagination `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpc.Do(req)
}

// call performs a request and decodes the envelope into T. On a non-2xx
// status it returns an APIError carrying the server message when present.
func call[T any](c *Client, ctx context.Context, method, path string, query url.Values, body any) (T, *Pagination, error) {
	var zero T

	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return zero, nil, err
	}
	defer resp.Body.Close()

	var env envelope[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			if env.Error != "" {
				apiErr.Message = env.Error
			} else {
				apiErr.Message = env.Message
			}
		}
		return zero, nil, apiErr
	}
	if decodeErr != nil {
		return zero, nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return env.Data, env.Pagination, nil
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.SortBy != "" {
		q.Set("sortBy", o.SortBy)
	}
	if o.SortOrder != "" {
		q.Set("sortOrder", o.SortOrder)
	}
	return q
}

//
// Auth
//

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	result, _, err := call[LoginResult](c, ctx, http.MethodPost, "/api/auth/login", nil, body)
	if err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Logout ends the session and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	_, _, err := call[json.RawMessage](c, ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (*Staff, error) {
	result, _, err := call[struct {
		Staff Staff `json:"staff"`
	}](c, ctx, http.MethodGet, "/api/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return &result.Staff, nil
}

//
// Categories
//

func (c *Client) ListCategories(ctx context.Context, opts ListOptions) ([]Category, *Pagination, error) {
	return call[[]Category](c, ctx, http.MethodGet, "/api/categories", opts.values(), nil)
}

func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	cat, _, err := call[Category](c, ctx, http.MethodGet, "/api/categories/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	cat, _, err := call[Category](c, ctx, http.MethodPost, "/api/categories", nil, params)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, params UpdateCategoryParams) (*Category, error) {
	cat, _, err := call[Category](c, ctx, http.MethodPut, "/api/categories/"+url.PathEscape(id), nil, params)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, _, err := call[json.RawMessage](c, ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil)
	return err
}

//
// Products
//

func (c *Client) ListProducts(ctx context.Context, opts ProductListOptions) ([]Product, *Pagination, error) {
	q := opts.values()
	if opts.CategoryID != "" {
		q.Set("category_id", opts.CategoryID)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	return call[[]Product](c, ctx, http.MethodGet, "/api/products", q, nil)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, _, err := call[Product](c, ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	p, _, err := call[Product](c, ctx, http.MethodPost, "/api/products", nil, params)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (*Product, error) {
	p, _, err := call[Product](c, ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), nil, params)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, _, err := call[json.RawMessage](c, ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
	return err
}

//
// Orders
//

func (c *Client) ListOrders(ctx context.Context, opts OrderListOptions) ([]Order, *Pagination, error) {
	q := opts.values()
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	return call[[]Order](c, ctx, http.MethodGet, "/api/orders", q, nil)
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	o, _, err := call[Order](c, ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	o, _, err := call[Order](c, ctx, http.MethodPost, "/api/orders", nil, params)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	body := map[string]string{"status": status}
	o, _, err := call[Order](c, ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(id)+"/status", nil, body)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, _, err := call[json.RawMessage](c, ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil)
	return err
}

//
// Dashboard
//

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	s, _, err := call[Stats](c, ctx, http.MethodGet, "/api/dashboard/stats", nil, nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
