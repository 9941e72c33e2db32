package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/rmapi/internal/constants"
	"github.com/fivetwenty-io/rmapi/pkg/rmclient"
)

// Config represents the persisted CLI configuration.
type Config struct {
	API       string `json:"api,omitempty"        yaml:"api,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	Timeout   string `json:"timeout,omitempty"    yaml:"timeout,omitempty"`
	RetryMax  int    `json:"retry_max,omitempty"  yaml:"retry_max,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// configKeys lists the keys accepted by config set and unset.
var configKeys = []string{keyAPI, keyOutput, keyTimeout, keyRetryMax, keyUserAgent}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the rmapi configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			out := cmd.OutOrStdout()

			switch outputFormat() {
			case OutputFormatJSON:
				return writeJSON(out, config)
			case OutputFormatYAML:
				return writeYAML(out, config)
			default:
				return displayConfigTable(out, config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  fmt.Sprintf("Set a configuration value. Valid keys: %v", configKeys),
		Example: `  rmapi config set api https://rickandmortyapi.com/api
  rmapi config set timeout 15s
  rmapi config set retry_max 3`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := config.Set(args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := config.Unset(args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared configuration")

			return nil
		},
	}
}

// Set validates and stores value under key.
func (c *Config) Set(key, value string) error {
	switch key {
	case keyAPI:
		c.API = rmclient.NormalizeEndpoint(value)
	case keyOutput:
		switch value {
		case OutputFormatJSON, OutputFormatYAML, OutputFormatTable:
			c.Output = value
		default:
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}
	case keyTimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, value)
		}

		c.Timeout = timeout.String()
	case keyRetryMax:
		retryMax, err := strconv.Atoi(value)
		if err != nil || retryMax < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidRetryMax, value)
		}

		c.RetryMax = retryMax
	case keyUserAgent:
		c.UserAgent = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// Unset clears key.
func (c *Config) Unset(key string) error {
	switch key {
	case keyAPI:
		c.API = ""
	case keyOutput:
		c.Output = ""
	case keyTimeout:
		c.Timeout = ""
	case keyRetryMax:
		c.RetryMax = 0
	case keyUserAgent:
		c.UserAgent = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the configuration file as last written, without flag or
// environment overrides.
func loadConfig() *Config {
	config := &Config{}

	configFile, err := configFilePath()
	if err != nil {
		return config
	}

	// configFile comes from the --config flag or the user's home directory.
	// #nosec G304
	data, err := os.ReadFile(configFile)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// configFilePath returns the file in use, or ~/.rmapi/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".rmapi", "config.yml"), nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	values := map[string]string{
		keyAPI:       config.API,
		keyOutput:    config.Output,
		keyTimeout:   config.Timeout,
		keyUserAgent: config.UserAgent,
	}
	if config.RetryMax > 0 {
		values[keyRetryMax] = strconv.Itoa(config.RetryMax)
	}

	keys := make([]string, 0, len(values))
	for key, value := range values {
		if value != "" {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		_, _ = io.WriteString(w, "No configuration set\n")

		return nil
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Header("Key", "Value")

	for _, key := range keys {
		err := table.Append(key, values[key])
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
