// Package cmd provides the command-line interface for rfs.
//
// Configuration System:
//
//	Settings are read from several sources with clear precedence:
//	1. --config flag - explicit config file path
//	2. RFS_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (RFS_COMPONENT_EXTENSION, etc.)
//	4. .rfs.yml in the current directory
//
// Environment Variables:
//
//	RFS_CONFIG_FILE: Path to custom configuration file
//	RFS_COMPONENT_EXTENSION: Override the component extension
//	RFS_STYLES_EXTENSION: Override the styles extension
//	And every other key following the RFS_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/rfs/internal/adapters"
	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/errors"
	"github.com/conneroisu/rfs/internal/logging"
	"github.com/conneroisu/rfs/internal/services"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rfs",
	Short: "Scaffold React component files from a path",
	Long: `rfs creates a React component folder from a short path such as
user/profile: the component file plus, depending on configuration, a
stylesheet, a props types file, a test file and an index barrel.

Quick Start:
  rfs create                       Prompt for a component path
  rfs create --path user/Avatar    Create without prompting
  rfs custom --line "e=JSX s- user/Avatar"
                                   Override settings for one run
  rfs config init                  Write a default .rfs.yml
  rfs config show                  Print the resolved configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .rfs.yml, can also use RFS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	if err := bindFlags(rootCmd.PersistentFlags(), "log-level", "log-format"); err != nil {
		panic(err)
	}
}

// bindFlags exposes the named flags through viper under the same key.
func bindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := viper.BindPFlag(name, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag
//  2. RFS_CONFIG_FILE environment variable
//  3. .rfs.yml in the current directory
//
// The workspace defaults to the current directory, so root_path only needs
// to be set to start component paths somewhere else.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("RFS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rfs")
	}

	viper.SetEnvPrefix("RFS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cwd, err := os.Getwd(); err == nil {
		viper.SetDefault(config.KeyWorkspaceFolders, []string{cwd})
	}

	// A missing or malformed file leaves the defaults in place.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the logger selected by the persistent log flags.
func newLogger(cmd *cobra.Command) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLevel(viper.GetString("log-level")),
		Format:    viper.GetString("log-format"),
		Output:    cmd.ErrOrStderr(),
		Component: "rfs",
	})
}

// newCreator wires the scaffolding pipeline to the terminal.
func newCreator(cmd *cobra.Command) *services.Creator {
	return services.NewCreator(
		adapters.NewViperSettings(nil),
		adapters.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		adapters.NewConsoleNotifier(cmd.OutOrStdout()),
		adapters.NewOSFileSystem(),
		newLogger(cmd),
	)
}

// report surfaces err through the console notifier and returns it.
func report(cmd *cobra.Command, err error) error {
	errors.NewErrorHandler(newLogger(cmd), adapters.NewConsoleNotifier(cmd.OutOrStdout())).
		Handle(cmd.Context(), err)
	return err
}
