package config

import "fmt"

// OutputMode selects the text layout.
type OutputMode string

const (
	OutputCompact  OutputMode = "compact"
	OutputDetailed OutputMode = "detailed"
	OutputJSON     OutputMode = "json"
)

// ParseOutputMode accepts the values of --output.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case OutputCompact, OutputDetailed:
		return OutputMode(s), nil
	case "":
		return OutputCompact, nil
	default:
		return "", fmt.Errorf("invalid output mode %q (want compact or detailed)", s)
	}
}

// Options are the command-line settings of one run.
type Options struct {
	ConfigDir string
	Output    string
	Long      bool
	JSON      bool

	Plugins  bool
	Skills   bool
	Sessions bool
	MCP      bool
	Hooks    bool
	Agents   bool
	Commands bool
	Search   string

	Color   bool
	NoColor bool
	Verbose bool
}

// Mode resolves the output layout: --json wins over --long, which wins
// over --output.
func (o Options) Mode() (OutputMode, error) {
	if o.JSON {
		return OutputJSON, nil
	}
	if o.Long {
		return OutputDetailed, nil
	}
	return ParseOutputMode(o.Output)
}
