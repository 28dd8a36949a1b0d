package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/rfs/internal/services"
)

var createCmd = &cobra.Command{
	Use:   "create [folder]",
	Short: "Create a component from a path",
	Long: `Create a React component from a path such as user/profile.

The path is read from a prompt unless --path is given. It starts at the
folder argument when present, otherwise at root_path, otherwise at the
workspace folder. Existing files are never overwritten.

Examples:
  rfs create                            # Prompt for the path
  rfs create --path user/profile        # user/profile/profile.tsx and friends
  rfs create ./src --path shared/Button # Start from ./src
  rfs create --path user/Avatar --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, services.ModePath, createPath)
	},
}

var customCmd = &cobra.Command{
	Use:   "custom [folder]",
	Short: "Create a component with inline options",
	Long: `Create a React component, overriding settings for this run only.

The line holds option tokens followed by the component path:

  e=JS|JSX|TSX   component extension      f=AD|AN|DD|DN  export style
  i=...|i+|i-    index file               s=...|s-       styles extension
  sn= sf=        styles name and folder   t=...|t+|t-    types mode
  tn= tf=        types name and folder    qa+|qa-        test file
  qf=            tests folder             h+|h-          use templates

Tokens are separated by spaces or commas. Unknown tokens are ignored.

Examples:
  rfs custom --line "e=JSX s- user/profile"
  rfs custom --line "i=EXPORTS,t=INLINE,qa+ shared/Button"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, services.ModeOptions, customLine)
	},
}

var (
	createPath   string
	customLine   string
	createDryRun bool
)

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(customCmd)

	createCmd.Flags().StringVarP(&createPath, "path", "p", "", "Component path (skips the prompt)")
	customCmd.Flags().StringVar(&customLine, "line", "", "Options and component path (skips the prompt)")
	for _, c := range []*cobra.Command{createCmd, customCmd} {
		c.Flags().BoolVar(&createDryRun, "dry-run", false, "Print the plan without writing files")
	}
}

// dryRunOutput is the YAML document printed by --dry-run.
type dryRunOutput struct {
	Root      string   `yaml:"root"`
	Directory string   `yaml:"directory"`
	Plan      any      `yaml:"plan"`
	Files     []string `yaml:"files"`
}

func runCreate(cmd *cobra.Command, args []string, mode services.Mode, line string) error {
	req := services.CreateRequest{
		Mode:   mode,
		Line:   line,
		DryRun: createDryRun,
	}
	if len(args) == 1 {
		req.Folder = args[0]
	}

	res, err := newCreator(cmd).Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if createDryRun {
		out := dryRunOutput{Root: res.Root, Directory: res.Plan.Directory(), Plan: res.Plan}
		for _, f := range res.Files {
			out.Files = append(out.Files, f.ImportPath)
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}
	return nil
}
