package cmd

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/rfs/internal/adapters"
	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rfs configuration",
	Long: `Manage rfs configuration files and settings.

Examples:
  rfs config init                      # Write a default .rfs.yml
  rfs config show                      # Show the resolved configuration
  rfs config validate                  # Check the current settings`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the configuration a create command would use, after
loading the config file, applying RFS_ environment variables and filling
in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Validate folder names, file names and the styles extension in the
current settings. The command exits non-zero on the first invalid field.`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file holding every setting at its default
value. An existing file is left untouched.

Examples:
  rfs config init                      # Write .rfs.yml
  rfs config init --output team.yml    # Write a custom file`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configOutput string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().StringVarP(&configOutput, "output", "o", ".rfs.yml", "Output file")
}

// resolveCurrent resolves the settings without prompting. The root is left
// empty when it would need a prompt.
func resolveCurrent() (config.Config, error) {
	settings := config.LoadSettings(adapters.NewViperSettings(nil))

	root := ""
	switch {
	case settings.RootPath != nil:
		root = *settings.RootPath
	case len(settings.WorkspaceFolders) == 1:
		root = settings.WorkspaceFolders[0]
	}

	return config.Resolve(settings, root)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveCurrent()
	if err != nil {
		return report(cmd, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	if _, err := resolveCurrent(); err != nil {
		return report(cmd, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
	return nil
}

// settingsFile mirrors the layout of .rfs.yml.
type settingsFile struct {
	Component struct {
		Extension string `yaml:"extension"`
		Export    string `yaml:"export"`
		Index     string `yaml:"index"`
	} `yaml:"component"`
	Styles struct {
		Extension string `yaml:"extension"`
		Name      string `yaml:"name,omitempty"`
		Folder    string `yaml:"folder,omitempty"`
	} `yaml:"styles"`
	Types struct {
		Mode   string `yaml:"mode"`
		Name   string `yaml:"name,omitempty"`
		Folder string `yaml:"folder,omitempty"`
	} `yaml:"types"`
	Tests struct {
		Enabled bool   `yaml:"enabled"`
		Folder  string `yaml:"folder,omitempty"`
	} `yaml:"tests"`
	UseTemplates bool `yaml:"use_templates"`
}

func defaultSettingsFile() settingsFile {
	d := config.Defaults()
	var f settingsFile
	f.Component.Extension = string(d.ComponentExtension)
	f.Component.Export = string(d.ExportStyle)
	f.Component.Index = string(d.IndexMode)
	f.Styles.Extension = d.StylesExtension
	f.Types.Mode = string(d.TypesMode)
	f.Tests.Enabled = d.TestsEnabled
	f.UseTemplates = d.UseTemplates
	return f
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(defaultSettingsFile())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := adapters.NewOSFileSystem().CreateFile(configOutput, string(data)); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return report(cmd, errors.ErrFileAlreadyExists(configOutput))
		}
		return report(cmd, errors.ErrFileCreationFailed(configOutput, err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configOutput)
	return nil
}
