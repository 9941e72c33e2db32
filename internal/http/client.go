package http

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

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/rmapi/internal/constants"
	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response holds a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is a thin HTTP client for the API. Non-2xx responses are returned
// together with a *rmapi.ProtocolError; network failures are reported as
// *rmapi.ConnectivityError.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *rmapi.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport retries for connection errors, 429 and
// 5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *rmapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	// retryablehttp only has something worth saying when it retries.
	if client.logger != nil && retryClient.RetryMax > 0 {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Do performs req and reads the whole response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var body io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	intercepted := &rmapi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}
	}

	c.logRequest(req.Method, fullURL)

	resp, err := c.send(ctx, httpReq, req.Method, fullURL)

	if c.interceptors != nil {
		interceptedResp := &rmapi.Response{Error: err}
		if resp != nil {
			interceptedResp.StatusCode = resp.StatusCode
			interceptedResp.Headers = resp.Headers
			interceptedResp.Body = resp.Body
		}

		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp)
		if interceptErr != nil && err == nil {
			return resp, interceptErr
		}
	}

	return resp, err
}

func (c *Client) send(ctx context.Context, httpReq *retryablehttp.Request, method, fullURL string) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, fullURL, ctxErr)
		}

		return nil, &rmapi.ConnectivityError{Method: method, URL: fullURL, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, fullURL, ctxErr)
		}

		return nil, &rmapi.ConnectivityError{Method: method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}

	c.logResponse(resp)

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		return resp, rmapi.NewProtocolError(resp.StatusCode, data)
	}

	return resp, nil
}

func (c *Client) buildURL(req *Request) (string, error) {
	path := req.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	if len(req.Query) > 0 {
		parsed.RawQuery = req.Query.Encode()
	}

	return parsed.String(), nil
}

func (c *Client) logRequest(method, fullURL string) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": method,
		"url":    fullURL,
	})
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	body := resp.Body
	if len(body) > constants.MaxErrorBodyLog {
		body = body[:constants.MaxErrorBodyLog]
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status_code": resp.StatusCode,
		"body":        string(body),
	})
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
