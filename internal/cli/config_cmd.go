package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/slugr/internal/config"
	"github.com/aidanlsb/slugr/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage slugr configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPathFlag
		if path == "" {
			path = config.DefaultPath()
		}

		_, statErr := os.Stat(path)
		exists := statErr == nil

		if isJSONOutput() {
			outputSuccess(map[string]any{"path": path, "exists": exists}, nil)
			return nil
		}

		fmt.Println(path)
		if !exists {
			fmt.Fprintln(os.Stderr, ui.Hint("(not created yet; run 'slugr config init')"))
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrInternal, err, "Check that the config directory is writable")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"path": path}, nil)
			return nil
		}

		fmt.Println(ui.Successf("config file at %s", ui.FilePath(path)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
