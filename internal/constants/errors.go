package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidTimeout   = errors.New("invalid timeout value")
	ErrInvalidRetryMax  = errors.New("invalid retry_max value")
	ErrInvalidOutput    = errors.New("output must be one of json, yaml, table")
)

// Argument errors.
var (
	ErrNegativeMore = errors.New("--more must not be negative")
	ErrNotATerminal = errors.New("browse requires an interactive terminal")
)

// Operation errors.
var (
	ErrListFailed = errors.New("listing characters failed")
	ErrGetFailed  = errors.New("getting character failed")
)
