package cli

import (
	"errors"
	"fmt"
	"strings"
)

// OutputFormat selects how query results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputPlain  OutputFormat = "plain"
	OutputJSON   OutputFormat = "json"
	OutputYAML   OutputFormat = "yaml"
	OutputNDJSON OutputFormat = "ndjson"
)

// ErrInvalidOutput is returned for an unknown --output value.
var ErrInvalidOutput = errors.New("unsupported output format")

// ParseOutputFormat validates an --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case OutputTable, OutputPlain, OutputJSON, OutputYAML, OutputNDJSON:
		return f, nil
	case "":
		return OutputTable, nil
	default:
		return "", fmt.Errorf("%w: %q (use table, plain, json, yaml or ndjson)", ErrInvalidOutput, s)
	}
}

// ExitError carries a process exit code other than 1.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// ExitCodeNoResults is returned by list --fail-empty when nothing matched.
const ExitCodeNoResults = 3
