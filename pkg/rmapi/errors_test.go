package rmapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

func TestNewProtocolError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
		text    string
	}{
		{
			name:    "api error document",
			status:  404,
			body:    `{"error":"Character not found"}`,
			message: "Character not found",
			text:    "HTTP 404: Character not found",
		},
		{
			name:   "empty body",
			status: 500,
			text:   "HTTP 500: Internal Server Error",
		},
		{
			name:   "non json body",
			status: 502,
			body:   "<html>bad gateway</html>",
			text:   "HTTP 502: Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := rmapi.NewProtocolError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.text, err.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting character 99: %w", rmapi.NewProtocolError(404, nil))
	serverErr := fmt.Errorf("listing characters page 1: %w", rmapi.NewProtocolError(500, nil))
	connErr := fmt.Errorf("listing characters page 1: %w", &rmapi.ConnectivityError{
		Method: "GET",
		URL:    "https://rickandmortyapi.com/api/character?page=1",
		Err:    errors.New("no such host"),
	})
	decodeErr := &rmapi.DecodeError{Resource: "character", Err: errors.New("unexpected end of JSON input")}

	assert.True(t, rmapi.IsNotFound(notFound))
	assert.False(t, rmapi.IsNotFound(serverErr))
	assert.Equal(t, 404, rmapi.StatusCode(notFound))
	assert.Equal(t, 500, rmapi.StatusCode(serverErr))
	assert.Equal(t, 0, rmapi.StatusCode(connErr))

	assert.True(t, rmapi.IsConnectivity(connErr))
	assert.False(t, rmapi.IsConnectivity(serverErr))
	assert.Contains(t, connErr.Error(), "no such host")

	assert.True(t, rmapi.IsDecode(decodeErr))
	assert.False(t, rmapi.IsDecode(connErr))
	assert.Equal(t, "parsing character: unexpected end of JSON input", decodeErr.Error())
}
