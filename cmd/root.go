// Package cmd wires the CLI: load a workspace from a document, a
// directory, or stdin, then either print a snapshot or start the
// interactive browser.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/simx/internal/formatter"
	"github.com/oakwood-commons/simx/internal/hierarchy"
	"github.com/oakwood-commons/simx/internal/hierarchy/datatree"
	"github.com/oakwood-commons/simx/internal/hierarchy/fstree"
	"github.com/oakwood-commons/simx/internal/ui"
	"github.com/oakwood-commons/simx/pkg/loader"
	"github.com/oakwood-commons/simx/pkg/logger"
	"github.com/oakwood-commons/simx/pkg/settings"
	"github.com/oakwood-commons/simx/pkg/tui"
)

// errShowHelp is returned when no input is provided and help should be shown.
var errShowHelp = errors.New("no input provided")

var (
	interactive bool
	dirPath     string
	initialPath string
	showAll     bool
	fixPath     bool
	noColor     bool
	themeName   string
	output      string
	maxDepth    int
	skipExts    []string
	logLevel    int8
	debug       bool
	width       int
	height      int
)

var (
	stdinIsPiped = func() bool {
		stat, _ := os.Stdin.Stat()
		return (stat.Mode() & os.ModeCharDevice) == 0
	}
	stdinReader io.Reader = os.Stdin
)

var rootCtx = context.Background()

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Browse hierarchical simulation workspaces in the terminal",
	Long: "simx walks a hierarchy of groups and nodes the way a file manager\n" +
		"walks directories: a linear visit history with back/forward, one\n" +
		"selected node at a time, and the node payload rendered inline.\n" +
		"Workspaces come from a structured document (YAML, JSON, TOML), a\n" +
		"directory tree, or stdin.",
	Example: "\n  simx workspace.yaml\n  simx workspace.yaml -i\n  simx --dir runs/ -i --path alloys/relax\n  cat results.json | simx --output tree\n",
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := logLevel
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := buildRoot(args)
		if err != nil {
			if errors.Is(err, errShowHelp) {
				return cmd.Help()
			}
			return err
		}

		if interactive {
			return tui.Run(root, tui.Config{
				Path:    initialPath,
				ShowAll: showAll,
				FixPath: fixPath,
				NoColor: noColor,
				Theme:   themeName,
				Width:   width,
				Height:  height,
			})
		}
		return writeSnapshot(cmd.OutOrStdout(), root)
	},
}

// buildRoot resolves the workspace root group from the CLI inputs.
func buildRoot(args []string) (hierarchy.Group, error) {
	if dirPath != "" {
		return fstree.New(dirPath, fstree.Options{
			SkipExtensions: skipExts,
			ShowHidden:     showAll,
		})
	}
	if len(args) == 1 {
		data, err := loader.LoadFile(args[0])
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		return datatree.New(name, data)
	}
	if stdinIsPiped() {
		data, err := loader.LoadReader(stdinReader)
		if err != nil {
			return nil, err
		}
		return datatree.New("stdin", data)
	}
	return nil, errShowHelp
}

// writeSnapshot prints a non-interactive rendering of the workspace.
func writeSnapshot(w io.Writer, root hierarchy.Group) error {
	switch output {
	case "tree":
		fmt.Fprint(w, formatter.FormatAsTree(rootCtx, root, formatter.TreeOptions{
			MaxDepth:   maxDepth,
			WithValues: true,
		}))
		return nil
	case "yaml":
		dt, ok := root.(*datatree.Group)
		if !ok {
			return fmt.Errorf("yaml output requires a document workspace (got a directory)")
		}
		out, err := yaml.Marshal(dt.Data())
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("invalid --output %q: valid values are tree, yaml", output)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print " + settings.CliBinaryName + " version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := settings.VersionInformation
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
		return nil
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range ui.AvailableThemeNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start the interactive browser")
	rootCmd.Flags().StringVar(&dirPath, "dir", "", "browse a directory tree instead of a document")
	rootCmd.Flags().StringVar(&initialPath, "path", "", "initial group path, relative to the root")
	rootCmd.Flags().BoolVar(&showAll, "show-all", false, "disable the hidden-node and dotfile filters")
	rootCmd.Flags().BoolVar(&fixPath, "fix-path", false, "pin the browser to its starting group")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme name (see 'simx themes')")
	rootCmd.Flags().StringVarP(&output, "output", "o", "tree", "snapshot format: tree|yaml")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "limit tree snapshot depth (0 = unlimited)")
	rootCmd.Flags().StringSliceVar(&skipExts, "skip-ext", []string{".h5", ".db"}, "file extensions hidden from directory listings")
	rootCmd.Flags().Int8Var(&logLevel, "log-level", 0, "minimum log level (negative is more verbose)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().IntVar(&width, "width", 0, "browser width in columns (0 = auto-detect)")
	rootCmd.Flags().IntVar(&height, "height", 0, "browser height in rows (0 = auto-detect)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(themesCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
