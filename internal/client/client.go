package client

import (
	"github.com/fivetwenty-io/rmapi/internal/constants"
	"github.com/fivetwenty-io/rmapi/internal/http"
	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// Client implements the rmapi.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	characters rmapi.CharactersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rmapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	chain := config.Interceptors
	if len(config.Headers) > 0 {
		// The caller's chain is nested rather than appended to, so it is left untouched.
		chain = rmapi.NewInterceptorChain()
		chain.AddRequestInterceptor(rmapi.HeaderInterceptor(config.Headers))

		if config.Interceptors != nil {
			chain.AddRequestInterceptor(config.Interceptors.ExecuteRequestInterceptors)
			chain.AddResponseInterceptor(config.Interceptors.ExecuteResponseInterceptors)
		}
	}

	if chain != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}

// New creates a new API client.
func New(config *rmapi.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, rmapi.ErrAPIEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
	}

	client.initializeResourceClients()

	return client, nil
}

// BaseURL returns the endpoint requests are resolved against.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Characters implements rmapi.Client.Characters.
func (c *Client) Characters() rmapi.CharactersClient {
	return c.characters
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.characters = NewCharactersClient(c.httpClient)
}

// loggerAdapter adapts rmapi.Logger to http.Logger.
type loggerAdapter struct {
	logger rmapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
