package models

import "fmt"

// ResourceUsage is the helpdesk resource check, pre-formatted for display
type ResourceUsage struct {
	CPUUsage        string `json:"cpu_usage"`
	MemoryUsage     string `json:"memory_usage"`
	MemoryAvailable string `json:"memory_available"`
	MemoryTotal     string `json:"memory_total"`
}

// NewResourceUsage formats raw CPU and memory readings
func NewResourceUsage(cpu *CPUStatus, memory *MemoryStatus) ResourceUsage {
	return ResourceUsage{
		CPUUsage:        FormatPercent(cpu.UsagePercent) + "%",
		MemoryUsage:     FormatPercent(memory.UsagePercent) + "%",
		MemoryAvailable: fmt.Sprintf("%.2f GB", memory.AvailableGB),
		MemoryTotal:     fmt.Sprintf("%.2f GB", memory.TotalGB),
	}
}

// Fields returns the usage as ordered key/value pairs
func (r ResourceUsage) Fields() []Field {
	return []Field{
		{Key: "cpu_usage", Value: r.CPUUsage},
		{Key: "memory_usage", Value: r.MemoryUsage},
		{Key: "memory_available", Value: r.MemoryAvailable},
		{Key: "memory_total", Value: r.MemoryTotal},
	}
}
