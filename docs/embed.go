// Package docs bundles long-form Markdown documentation into the
// slugr binary.
package docs

import "embed"

// FS contains the bundled topic files, one Markdown file per topic.
//
//go:embed *.md
var FS embed.FS
