package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are disabled unless a caller asks for them.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status outside the success range.
	HTTPStatusMultipleChoices = 300
)

// API paths and query parameters.
const (
	// CharacterPath is the character resource path, relative to the endpoint.
	CharacterPath = "/character"

	// PageQueryParam is the one-based page number query parameter.
	PageQueryParam = "page"

	// FirstPage is the page a fresh cursor points at.
	FirstPage = 1
)

// Client identification.
const (
	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "rmapi-go/1.0"

	// MaxErrorBodyLog caps how much of a response body is logged in debug mode.
	MaxErrorBodyLog = 512
)

// Output formatting.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// DefaultTableWidth is used when the terminal width cannot be determined.
	DefaultTableWidth = 120

	// MinNameColumnWidth keeps the name column readable on narrow terminals.
	MinNameColumnWidth = 12
)
