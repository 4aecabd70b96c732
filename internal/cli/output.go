// Package cli provides the Cobra CLI commands for savemsg.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormat represents the output format for commands.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// GetOutputFormat resolves the output format from the --output flag, falling
// back to the configured default when the flag was not given.
func GetOutputFormat(configured string) OutputFormat {
	v := output
	if v == "" {
		v = configured
	}
	if v == "json" {
		return OutputFormatJSON
	}
	return OutputFormatText
}

// IsJSONOutput returns true if the --output flag explicitly selects JSON.
func IsJSONOutput() bool {
	return output == "json"
}

// MessageOutput is the JSON output structure for a rendered message.
type MessageOutput struct {
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// PrintJSON marshals v with indentation and writes it to stdout.
func PrintJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// PrintJSONError writes an error in the JSON output format.
func PrintJSONError(err error) {
	PrintJSON(MessageOutput{Error: err.Error()})
}
