package rmclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
	"github.com/fivetwenty-io/rmapi/pkg/rmclient"
)

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", rmapi.DefaultAPIEndpoint},
		{"   ", rmapi.DefaultAPIEndpoint},
		{"rickandmortyapi.com/api", "https://rickandmortyapi.com/api"},
		{"https://rickandmortyapi.com/api/", "https://rickandmortyapi.com/api"},
		{"http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rmclient.NormalizeEndpoint(tt.input), "input %q", tt.input)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := rmclient.New(nil)
	require.ErrorIs(t, err, rmapi.ErrConfigRequired)

	config := &rmapi.Config{APIEndpoint: "example.com/api/"}

	client, err := rmclient.New(config)
	require.NoError(t, err)
	assert.NotNil(t, client.Characters())

	// The caller's config is not rewritten.
	assert.Equal(t, "example.com/api/", config.APIEndpoint)

	client, err = rmclient.NewDefault()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewRepository(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)

		_ = json.NewEncoder(writer).Encode(rmapi.CharactersPage{
			Info:    rmapi.PageInfo{Count: 2, Pages: 1},
			Results: []rmapi.Character{{ID: 1, Name: "Rick Sanchez"}, {ID: 2, Name: "Morty Smith"}},
		})
	}))
	defer server.Close()

	repo, err := rmclient.NewRepository(&rmapi.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	ctx := context.Background()

	result := repo.ListCharacters(ctx, false)
	require.True(t, result.IsSuccess())
	assert.Len(t, result.Data(), 2)

	character := repo.GetCharacter(ctx, 2)
	require.True(t, character.IsSuccess())
	assert.Equal(t, "Morty Smith", character.Data().Name)

	assert.Equal(t, int64(1), requests.Load())
}

func TestNewRepository_Offline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
	endpoint := server.URL
	server.Close()

	repo, err := rmclient.NewRepository(&rmapi.Config{APIEndpoint: endpoint})
	require.NoError(t, err)

	result := repo.ListCharacters(context.Background(), false)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "No internet connection", result.Message())
}

func TestNewRepository_MalformedBodiesAreNotCached(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		n := requests.Add(1)

		switch {
		case n == 1:
			_, _ = writer.Write([]byte(`{}`))
		case request.URL.Path == "/character/7":
			_, _ = writer.Write([]byte(`{}`))
		default:
			page, _ := strconv.Atoi(request.URL.Query().Get("page"))
			_ = json.NewEncoder(writer).Encode(rmapi.CharactersPage{
				Info:    rmapi.PageInfo{Count: 2, Pages: 2},
				Results: []rmapi.Character{{ID: page, Name: "Character " + strconv.Itoa(page)}},
			})
		}
	}))
	defer server.Close()

	repo, err := rmclient.NewRepository(&rmapi.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	ctx := context.Background()

	result := repo.ListCharacters(ctx, false)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Unexpected error occurred", result.Message())
	assert.False(t, repo.Cursor().Loaded())
	assert.Zero(t, repo.CachedCount())

	result = repo.ListCharacters(ctx, true)
	require.True(t, result.IsSuccess())
	assert.Len(t, result.Data(), 1)
	assert.True(t, repo.HasMore())

	result = repo.ListCharacters(ctx, true)
	require.True(t, result.IsSuccess())
	assert.Len(t, result.Data(), 2)
	assert.Equal(t, 2, repo.Cursor().CurrentPage)
	assert.False(t, repo.HasMore())

	character := repo.GetCharacter(ctx, 7)
	require.False(t, character.IsSuccess())
	assert.Equal(t, "Unexpected error occurred", character.Message())
	assert.Equal(t, 2, repo.CachedCount())

	assert.Equal(t, int64(4), requests.Load())
}

func TestNewRepository_ZeroPagesIsRejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"info":{"count":0,"pages":0,"next":null,"prev":null},"results":[]}`))
	}))
	defer server.Close()

	repo, err := rmclient.NewRepository(&rmapi.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result := repo.ListCharacters(context.Background(), false)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "Unexpected error occurred", result.Message())

	cursor := repo.Cursor()
	assert.False(t, cursor.Loaded())
	assert.Nil(t, cursor.TotalPages)
	assert.Equal(t, 1, cursor.CurrentPage)
}

func TestNewRepository_GetUnknownIDAsksTheAPI(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/character/0", request.URL.Path)

		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error":"Character not found"}`))
	}))
	defer server.Close()

	repo, err := rmclient.NewRepository(&rmapi.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result := repo.GetCharacter(context.Background(), 0)
	require.False(t, result.IsSuccess())
	assert.Equal(t, "HTTP error: 404", result.Message())
	assert.Equal(t, int64(1), requests.Load())
}
