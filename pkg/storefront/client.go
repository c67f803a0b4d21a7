// Package storefront is the Go client for the storefront API: a typed HTTP
// client plus a cart view store that treats the server as the single source
// of truth.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Product is a catalog item as returned by the API.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Available   bool    `json:"available"`
}

// CartItem is a cart line with its product joined.
type CartItem struct {
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// Cart is the server cart view.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	IsEmpty    bool       `json:"isEmpty"`
}

// APIError is a non-2xx response decoded from the API's {message} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront API error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the storefront API.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithUserID sets the caller identifier sent in the x-user-id header.
func WithUserID(userID string) Option {
	return func(c *Client) {
		c.userID = userID
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a storefront API client. baseURL is the server root,
// without the /api prefix.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		userID:     "user-123",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products fetches the whole catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single catalog item by ID.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Cart fetches the server cart.
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	var envelope struct {
		Cart Cart `json:"cart"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Cart, nil
}

// AddToCart sets the cart quantity for a product. The server overwrites the
// quantity of an existing line rather than incrementing it.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	body := map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}
	return c.do(ctx, http.MethodPost, "/api/cart/add", body, nil)
}

// RemoveFromCart deletes the cart line for a product.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+productID, nil, nil)
}

// do performs a request against the API and decodes the response into out
// when out is non-nil. Non-2xx responses become an *APIError carrying the
// server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-id", c.userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
