//go:build integration

package integration

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

func TestCLI_CharactersList(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("characters", "list", "--more", "1", "--output", "json", "--stats")
	require.NoError(t, err, stderr)
	AssertJSONOutput(t, stdout)

	var characters []rmapi.Character
	require.NoError(t, json.Unmarshal([]byte(stdout), &characters))
	assert.NotEmpty(t, characters)

	for i := 1; i < len(characters); i++ {
		assert.Less(t, characters[i-1].ID, characters[i].ID)
	}

	assert.Contains(t, stderr, "Network requests: 2")
}

func TestCLI_CharactersGet(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("characters", "get", "1", "--output", "yaml")
	require.NoError(t, err, stderr)
	AssertYAMLOutput(t, stdout)
	assert.Contains(t, stdout, "Rick Sanchez")

	_, stderr, err = runner.Run("characters", "get", "999999")
	require.Error(t, err)
	assert.Contains(t, stderr, "HTTP error: 404")
}

func TestCLI_Config(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("config", "set", "timeout", "20s")
	require.NoError(t, err, stderr)

	stdout, stderr, err := runner.Run("config", "show", "--output", "json")
	require.NoError(t, err, stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, `"timeout": "20s"`)

	_, stderr, err = runner.Run("config", "set", "colour", "blue")
	require.Error(t, err)
	assert.True(t, strings.Contains(stderr, "unknown configuration key"))
}

func TestCLI_BrowseRequiresTerminal(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.RunWithInput("y\n", "characters", "browse")
	require.Error(t, err)
	assert.Contains(t, stderr, "interactive terminal")
}
