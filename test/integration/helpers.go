//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	BinaryPath  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("RMAPI_INTEGRATION_API"),
		BinaryPath:  getBinaryPath(),
		Verbose:     os.Getenv("RMAPI_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the rmapi binary
func getBinaryPath() string {
	if path := os.Getenv("RMAPI_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../rmapi",
		"./rmapi",
		"../rmapi",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "rmapi" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIEndpoint == "" {
		t.Skip("RMAPI_INTEGRATION_API not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("rmapi binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs rmapi commands with an isolated home directory, so the
// user's configuration is never read or written.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
	home   string
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		t:      t,
		home:   t.TempDir(),
	}
}

// Run executes an rmapi command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes an rmapi command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(),
		"HOME="+runner.home,
		"RMAPI_API="+runner.config.APIEndpoint,
	)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var value interface{}
	if err := yaml.Unmarshal([]byte(output), &value); err != nil || value == nil {
		t.Errorf("Output is not valid YAML: %s", output)
	}
}
