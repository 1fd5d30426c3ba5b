// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/slugr/internal/config"
	"github.com/aidanlsb/slugr/internal/fileslug"
)

var (
	// Global flags
	flagSnake       bool
	flagCamel       bool
	flagPascal      bool
	flagKeepUnicode bool
	configPathFlag  string

	// Root (rename) flags
	flagExecute     bool
	flagVerbose     bool
	flagClobber     bool
	flagInteractive bool
	flagRecursive   bool

	// Loaded config
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slugr [flags] [files...]",
	Short: "slugr - a filesystem-aware slug generator",
	Long: `slugr renames files and directories by converting their names to
clean, shell-safe slugs. Extensions, dotfiles, compound extensions
(.tar.gz) and version numbers (1.2.3) are preserved.

Dry-run by default; use -x to execute. With no file arguments, paths
are read from stdin (one per line) when stdin is not a terminal.

Examples:
  slugr 'My Résumé (Final).pdf'       # show the rename, don't do it
  slugr -x 'My Résumé (Final).pdf'    # my-resume-final.pdf
  slugr -x -r ~/Downloads             # clean a whole tree, bottom-up
  find . -name '*.JPG' | slugr -x     # paths from stdin
  echo 'Blog Post!' | slugr pipe      # slugs to stdout, no renames`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the pipeline skip config loading.
		switch cmd.Name() {
		case "version", "docs", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil {
			switch cmd.Parent().Name() {
			case "completion", "config":
				return nil
			}
		}

		var err error
		if configPathFlag != "" {
			cfg, err = config.LoadFrom(configPathFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return handleError(ErrConfigInvalid, fmt.Errorf("failed to load config: %w", err),
				"Fix or remove the config file; 'slugr config path' shows its location")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveSlugOptions()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Fix the style value in config.toml or pass a style flag")
		}

		paths := args
		if len(paths) == 0 {
			paths = readStdinPaths()
		}
		if len(paths) == 0 {
			return handleErrorMsg(ErrInvalidInput,
				"no files specified",
				"Pass file paths as arguments or on stdin")
		}

		noClobber := !(flagClobber || cfg.Clobber)
		dryRun := !flagExecute

		if dryRun && !isJSONOutput() {
			fmt.Fprintln(os.Stderr, "slugr: dry-run mode (use -x to execute)")
		}

		return runBatch(paths, batchOptions{
			slug:        opts,
			noClobber:   noClobber,
			dryRun:      dryRun,
			verbose:     flagVerbose,
			interactive: flagInteractive,
			recursive:   flagRecursive,
			confirm:     promptForConfirm,
		})
	},
}

// resolveSlugOptions merges config defaults with the style flags.
func resolveSlugOptions() (fileslug.Options, error) {
	opts, err := cfg.SlugOptions()
	if err != nil {
		return fileslug.Options{}, err
	}
	switch {
	case flagSnake:
		opts.Style = fileslug.Snake
	case flagCamel:
		opts.Style = fileslug.Camel
	case flagPascal:
		opts.Style = fileslug.Pascal
	}
	if flagKeepUnicode {
		opts.KeepUnicode = true
	}
	return opts, nil
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSilentExit) && !errors.Is(err, errBatchFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagSnake, "snake", false, "Use snake_case instead of kebab-case")
	rootCmd.PersistentFlags().BoolVar(&flagCamel, "camel", false, "Use camelCase instead of kebab-case")
	rootCmd.PersistentFlags().BoolVar(&flagPascal, "pascal", false, "Use PascalCase instead of kebab-case")
	rootCmd.PersistentFlags().BoolVar(&flagKeepUnicode, "keep-unicode", false, "Preserve unicode characters, only normalize separators")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.MarkFlagsMutuallyExclusive("snake", "camel", "pascal")

	rootCmd.Flags().BoolVarP(&flagExecute, "execute", "x", false, "Actually perform renames (default is dry-run)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print each rename operation")
	rootCmd.Flags().BoolVar(&flagClobber, "clobber", false, "Allow overwriting existing files (default: no-clobber)")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Prompt before each rename")
	rootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Recurse into directories, renaming children first")
}
