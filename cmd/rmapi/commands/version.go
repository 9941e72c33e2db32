package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rmapi/internal/constants"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	Built     string `json:"built"      yaml:"built"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the rmapi CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := VersionInfo{
				Version:   version,
				Commit:    commit,
				Built:     date,
				UserAgent: constants.DefaultUserAgent,
			}

			out := cmd.OutOrStdout()

			switch outputFormat() {
			case OutputFormatJSON:
				return writeJSON(out, versionInfo)
			case OutputFormatYAML:
				return writeYAML(out, versionInfo)
			default:
				table := tablewriter.NewWriter(out)
				table.Header("Property", "Value")
				_ = table.Append("Version", versionInfo.Version)
				_ = table.Append("Commit", versionInfo.Commit)
				_ = table.Append("Built", versionInfo.Built)
				_ = table.Append("User-Agent", versionInfo.UserAgent)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
