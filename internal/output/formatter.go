package output

import (
	"io"
	"strings"

	"github.com/rohankatakam/githours/internal/errors"
	"github.com/rohankatakam/githours/internal/temporal"
)

// Formatter renders a report. Authors are written in report order and the
// total entry always comes last.
type Formatter interface {
	Format(report *temporal.Report, w io.Writer) error
}

// Output format names
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// NewFormatter creates the formatter registered under name
func NewFormatter(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTable:
		return NewTableFormatter(), nil
	default:
		return nil, errors.ValidationErrorf("unknown output format %q", name)
	}
}
