package gpt3

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Client is a client for the GPT-3 engines API.
//
// A Client only holds immutable configuration, so it is safe for concurrent
// use by multiple goroutines.
//
// https://beta.openai.com/docs/api-reference
type Client struct {
	// apiKey is the API key to use for requests, captured once by NewClient.
	apiKey string

	// HTTPClient is the HTTP client to use for requests. When nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// Organization is the organization to use for requests.
	Organization string

	// BaseURL is the origin requests are sent to, without the version prefix.
	BaseURL string

	// Logger receives a record for every request sent by the client.
	Logger *slog.Logger
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithHTTPClient is a ClientOption that sets the HTTP client to use for requests.
//
// If the client is nil, then http.DefaultClient is used
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		if c == nil {
			c = http.DefaultClient
		}
		client.HTTPClient = c
	}
}

// WithOrganization is a ClientOption that sets the organization to use for requests.
//
// https://beta.openai.com/docs/api-reference/authentication
func WithOrganization(org string) ClientOption {
	return func(client *Client) {
		client.Organization = org
	}
}

// WithBaseURL is a ClientOption that sends requests to the given origin instead
// of DefaultBaseURL, which is mostly useful for proxies and tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(client *Client) {
		client.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithLogger is a ClientOption that logs every request made by the client,
// including its status code and duration, to the given logger.
//
// If the logger is nil, then nothing is logged.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		client.Logger = logger
	}
}

// NewClient returns a new Client with the given API key.
//
// # Example
//
//	c := gpt3.NewClient(os.Getenv("OPENAI_API_KEY"))
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		HTTPClient: http.DefaultClient,
		BaseURL:    DefaultBaseURL,
		Logger:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Logger.Enabled(context.Background(), slog.LevelError) {
		c.HTTPClient = withLoggingTransport(c.HTTPClient, c.Logger)
	}

	return c
}

// APIKey returns the API key the client was constructed with.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Response is the raw result of a successful request. The body is passed
// through exactly as the API returned it.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON response body into v.
//
// # Example
//
//	var completion gpt3.CompletionResponse
//	if err := resp.Decode(&completion); err != nil {
//		...
//	}
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// Do sends a request with the given method to the given URL, and is the
// single path every Client method takes to the network.
//
// The body is ignored for GET requests. An Options bag has its keys converted
// to snake_case, and any other value is marshalled through its JSON tags. When
// the resulting object is empty, the request is sent without a body.
//
// Responses with a non-2xx status code are returned as a *StatusError.
func (c *Client) Do(ctx context.Context, method, url string, body any) (*Response, error) {
	var payload []byte

	if method != http.MethodGet {
		b, err := encodeBody(body)
		if err != nil {
			return nil, err
		}
		payload = b
	}

	var reqBody io.Reader = http.NoBody
	if len(payload) > 0 {
		reqBody = bytes.NewReader(payload)
	}

	r, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	r.Header.Set("Authorization", "Bearer "+c.apiKey)
	r.Header.Set("Content-Type", "application/json")

	if c.Organization != "" {
		r.Header.Set("OpenAI-Organization", c.Organization)
	}

	resp, err := cmp.Or(c.HTTPClient, http.DefaultClient).Do(r)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       b,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
	}, nil
}

// encodeBody returns the JSON encoding of body, or nil when there is
// nothing to send.
func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return encodeBody(Options(v))
	case Options:
		opts, err := v.SnakeCase()
		if err != nil {
			return nil, err
		}
		if len(opts) == 0 {
			return nil, nil
		}
		body = opts
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	switch string(b) {
	case "{}", "null":
		return nil, nil
	}

	return b, nil
}
