package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/slugr/internal/fileslug"
)

var flagPipeRaw bool

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Slugify lines from stdin to stdout",
	Long: `Read lines from stdin, slugify each one, and write the results to
stdout. No files are touched. By default each line is treated as a
filename, so extensions and version numbers are preserved; use --raw
to slugify plain text instead.

Examples:
  echo 'My Blog Post!' | slugr pipe --raw   # my-blog-post
  ls | slugr pipe                           # preview slugs for a directory`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveSlugOptions()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Fix the style value in config.toml or pass a style flag")
		}

		if isJSONOutput() {
			slugs, err := collectPipe(os.Stdin, opts, flagPipeRaw)
			if err != nil {
				return handleError(ErrReadError, err, "")
			}
			outputSuccess(map[string]any{"slugs": slugs}, &Meta{Count: len(slugs)})
			return nil
		}

		if err := runPipe(os.Stdin, os.Stdout, os.Stderr, opts, flagPipeRaw); err != nil {
			return handleError(ErrReadError, err, "")
		}
		return nil
	},
}

// runPipe slugifies r line by line, streaming results to out. Empty
// input lines are ignored; lines that slugify to nothing are skipped
// with a diagnostic rather than emitting a blank slug.
func runPipe(r io.Reader, out, errOut io.Writer, opts fileslug.Options, raw bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		slug := slugifyLine(line, opts, raw)
		if slug == "" {
			fmt.Fprintf(errOut, "slugr: warning: %q slugifies to an empty string\n", line)
			continue
		}
		fmt.Fprintln(out, slug)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func collectPipe(r io.Reader, opts fileslug.Options, raw bool) ([]string, error) {
	slugs := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if slug := slugifyLine(line, opts, raw); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return slugs, nil
}

func slugifyLine(line string, opts fileslug.Options, raw bool) string {
	if raw {
		return fileslug.SlugifyText(line, opts)
	}
	return fileslug.Slugify(line, opts)
}

func init() {
	pipeCmd.Flags().BoolVar(&flagPipeRaw, "raw", false, "Treat input as plain text, not filenames")
	rootCmd.AddCommand(pipeCmd)
}
