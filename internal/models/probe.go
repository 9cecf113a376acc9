package models

import "fmt"

// ProbeKind tags which variant of ProbeResult is populated
type ProbeKind string

const (
	ProbeText       ProbeKind = "text"
	ProbeStructured ProbeKind = "structured"
)

// ProbeResult is the outcome of a single OS command invocation.
// Text results carry Text; structured results carry Success, Output, Host
// and, on failure to invoke, Error.
type ProbeResult struct {
	Kind    ProbeKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Success bool      `json:"success"`
	Output  string    `json:"output,omitempty"`
	Host    string    `json:"host,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// TextResult wraps raw command output
func TextResult(text string) ProbeResult {
	return ProbeResult{Kind: ProbeText, Text: text, Success: true}
}

// ErrorText wraps a failed invocation as a text result
func ErrorText(format string, args ...interface{}) ProbeResult {
	return ProbeResult{Kind: ProbeText, Text: fmt.Sprintf(format, args...), Success: false}
}

// ConnectivityResult is a structured result for a reachability test
func ConnectivityResult(host string, success bool, output string) ProbeResult {
	return ProbeResult{Kind: ProbeStructured, Host: host, Success: success, Output: output}
}

// String renders either variant as plain text
func (p ProbeResult) String() string {
	if p.Kind == ProbeText {
		return p.Text
	}
	if p.Error != "" {
		return fmt.Sprintf("%s: error: %s", p.Host, p.Error)
	}
	return p.Output
}
