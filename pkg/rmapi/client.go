package rmapi

import (
	"context"
	"time"
)

// DefaultAPIEndpoint is the public Rick and Morty API.
const DefaultAPIEndpoint = "https://rickandmortyapi.com/api"

// CharactersClient fetches character resources from the remote API. It
// performs exactly one request per call: no caching and no interpretation of
// failures beyond mapping them onto ConnectivityError, ProtocolError and
// DecodeError.
type CharactersClient interface {
	// List fetches one page of characters. Pages are one-based.
	List(ctx context.Context, page int) (*CharactersPage, error)
	// Get fetches a single character by ID.
	Get(ctx context.Context, id int) (*Character, error)
}

// Client provides access to the resource clients.
type Client interface {
	Characters() CharactersClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a rmapi.Client.
//
// # Timeouts and retries
//
// Per-request deadlines should generally be controlled via the context passed
// to client methods; HTTPTimeout is an upper bound applied to every request.
// The transport does not retry by default. Setting RetryMax enables retries of
// connection errors, 429 and 5xx responses inside the transport; callers of the
// repository never observe the individual attempts.
type Config struct {
	// APIEndpoint: base URL of the API (e.g., "https://rickandmortyapi.com/api").
	// rmclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// HTTPTimeout: per-request timeout. If 0, constants.DefaultHTTPTimeout is used.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport retries. 0 disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the repository.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Headers: static headers added to every request.
	Headers map[string]string
	// Interceptors: optional hooks run around every HTTP exchange.
	Interceptors *InterceptorChain
}
