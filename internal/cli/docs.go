package cli

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/slugr/docs"
	"github.com/aidanlsb/slugr/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse bundled documentation",
	Long: `Browse long-form documentation bundled into the slugr binary.

Use this command for guides and background; for command-level usage,
use 'slugr help <command>'.

Examples:
  slugr docs
  slugr docs styles
  slugr docs collisions`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocsTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild slugr so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsTopics(topics)
		}

		topic := strings.TrimSuffix(args[0], ".md")
		if !containsTopic(topics, topic) {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown docs topic %q", topic),
				"Run 'slugr docs' to list topics")
		}
		return outputDocsTopic(topic)
	},
}

func listDocsTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

func containsTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

func outputDocsTopics(topics []string) error {
	if isJSONOutput() {
		outputSuccess(map[string]any{"topics": topics}, &Meta{Count: len(topics)})
		return nil
	}
	fmt.Println("Available topics:")
	for _, topic := range topics {
		fmt.Printf("  slugr docs %s\n", topic)
	}
	return nil
}

func outputDocsTopic(topic string) error {
	content, err := fs.ReadFile(builtindocs.FS, topic+".md")
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]any{"topic": topic, "content": string(content)}, nil)
		return nil
	}

	rendered, err := ui.RenderMarkdown(string(content), ui.TermWidth())
	if err != nil {
		// Fall back to the raw Markdown rather than failing the read.
		fmt.Print(string(content))
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
