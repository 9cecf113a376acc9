package models

import (
	"strconv"
	"strings"
)

// Field is a single labelled value in a text report
type Field struct {
	Key   string
	Value string
}

// Label turns a snake_case key into a title-cased label ("cpu_usage" -> "Cpu Usage")
func (f Field) Label() string {
	words := strings.Split(f.Key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// SystemInfo holds basic facts about the host the helpdesk runs on
type SystemInfo struct {
	OS        string `json:"os"`
	OSVersion string `json:"os_version"`
	Machine   string `json:"machine"`
	Processor string `json:"processor"`
	Hostname  string `json:"hostname"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

// Fields returns the system info as ordered key/value pairs
func (s SystemInfo) Fields() []Field {
	return []Field{
		{Key: "os", Value: s.OS},
		{Key: "os_version", Value: s.OSVersion},
		{Key: "machine", Value: s.Machine},
		{Key: "processor", Value: s.Processor},
		{Key: "hostname", Value: s.Hostname},
		{Key: "username", Value: s.Username},
		{Key: "timestamp", Value: s.Timestamp},
	}
}

// FormatPercent renders a percentage with the fewest digits needed (90, 90.5)
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
