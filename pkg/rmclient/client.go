// Package rmclient provides the main entry point for creating Rick and Morty API clients
package rmclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/rmapi/internal/client"
	"github.com/fivetwenty-io/rmapi/pkg/repository"
	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// New creates a new API client. An empty endpoint falls back to
// rmapi.DefaultAPIEndpoint.
func New(config *rmapi.Config) (rmapi.Client, error) {
	if config == nil {
		return nil, rmapi.ErrConfigRequired
	}

	normalized := *config
	normalized.APIEndpoint = NormalizeEndpoint(config.APIEndpoint)

	if normalized.APIEndpoint == "" {
		return nil, rmapi.ErrAPIEndpointRequired
	}

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NormalizeEndpoint trims a trailing slash and adds "https://" when no scheme
// is present.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = rmapi.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewRepository creates a client from config and wraps its characters client
// in a cache-backed repository. The config's Logger is passed on to the
// repository unless opts override it.
func NewRepository(config *rmapi.Config, opts ...repository.Option) (*repository.Default, error) {
	apiClient, err := New(config)
	if err != nil {
		return nil, err
	}

	repoOpts := make([]repository.Option, 0, len(opts)+1)
	if config.Logger != nil {
		repoOpts = append(repoOpts, repository.WithLogger(config.Logger))
	}

	repoOpts = append(repoOpts, opts...)

	repo, err := repository.New(apiClient.Characters(), repoOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	return repo, nil
}

// NewWithEndpoint creates a new client with just an API endpoint.
func NewWithEndpoint(endpoint string) (rmapi.Client, error) {
	return New(&rmapi.Config{
		APIEndpoint: endpoint,
	})
}

// NewDefault creates a client for the public API.
func NewDefault() (rmapi.Client, error) {
	return NewWithEndpoint(rmapi.DefaultAPIEndpoint)
}
