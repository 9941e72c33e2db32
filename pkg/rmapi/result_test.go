package rmapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

func TestResult(t *testing.T) {
	t.Parallel()

	success := rmapi.Success([]int{1, 2})
	assert.True(t, success.IsSuccess())
	assert.Equal(t, []int{1, 2}, success.Data())
	assert.Empty(t, success.Message())

	data, err := success.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, data)

	failure := rmapi.Failure[rmapi.Character]("No internet connection")
	assert.False(t, failure.IsSuccess())
	assert.Equal(t, rmapi.Character{}, failure.Data())
	assert.Equal(t, "No internet connection", failure.Message())

	_, err = failure.Unwrap()
	require.EqualError(t, err, "No internet connection")

	var zero rmapi.Result[string]
	assert.False(t, zero.IsSuccess())
}

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alive", rmapi.StatusAlive.DisplayName())
	assert.Equal(t, "Dead", rmapi.StatusDead.DisplayName())
	assert.Equal(t, "Unknown", rmapi.StatusUnknown.DisplayName())
	assert.Equal(t, "Unknown", rmapi.CharacterStatus("zombie").DisplayName())

	assert.Equal(t, "Genderless", rmapi.GenderGenderless.DisplayName())
	assert.Equal(t, "Unknown", rmapi.GenderUnknown.DisplayName())
}
