package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nestdotland/nest-analyzer/tree"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Write renders result in the given format
func Write(writer io.Writer, result *tree.Result, format string) error {
	return New(result).Write(writer, format)
}

// Write renders report in the given format
func (r *Report) Write(writer io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return r.Text(writer)
	case FormatJSON:
		return r.JSON(writer)
	case FormatYAML, "yml":
		return r.YAML(writer)
	}
	return fmt.Errorf("report: unsupported format %q, supported: %v", format, strings.Join(Formats, ", "))
}

// IsSupported returns true if format can be rendered
func IsSupported(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatText, FormatJSON, FormatYAML, "yml":
		return true
	}
	return false
}
