package models

// CPUStatus represents CPU usage information
type CPUStatus struct {
	UsagePercent float64 `json:"usage_percent"`
}
