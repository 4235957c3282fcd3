// Package client talks to a running booktracker server. It bundles a typed
// HTTP client, a cached Store that the terminal commands read through, and
// the pure list-filtering helpers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mrlokans/booktracker/internal/entities"
)

const defaultTimeout = 30 * time.Second

// Client interfaces with the booktracker HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// APIError is a failure reported by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

// envelope mirrors the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type createBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type updateStatusRequest struct {
	Read bool `json:"read"`
}

// ListBooks fetches all books, newest first.
func (c *Client) ListBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook adds a new unread book.
func (c *Client) CreateBook(ctx context.Context, title, author string) (*entities.Book, error) {
	var book entities.Book
	body := createBookRequest{Title: title, Author: author}
	if err := c.do(ctx, http.MethodPost, "/api/books", body, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBookStatus sets the read flag of an existing book.
func (c *Client) UpdateBookStatus(ctx context.Context, id uint, read bool) (*entities.Book, error) {
	var book entities.Book
	body := updateStatusRequest{Read: read}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/books/%d", id), body, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook replaces title and author of an existing book.
func (c *Client) UpdateBook(ctx context.Context, id uint, title, author string) (*entities.Book, error) {
	var book entities.Book
	body := createBookRequest{Title: title, Author: author}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", id), body, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book.
func (c *Client) DeleteBook(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/books/%d", id), nil, nil)
}

// do performs one request and decodes the envelope. A response with
// success=false or a non-2xx status becomes an APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
