package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/rfs/internal/version"
)

var versionFormat string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the rfs version, commit, Go version and platform.

Examples:
  rfs version                  # One line
  rfs version --format yaml    # Everything, as YAML`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, yaml)")
}

func runVersionCommand(cmd *cobra.Command, _ []string) error {
	info := version.Get()

	switch versionFormat {
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), info.Short())
		return nil
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, yaml)", versionFormat)
	}
}
