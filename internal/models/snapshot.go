package models

import "time"

// SystemSnapshot is one point-in-time reading of host resource metrics.
// Snapshots are passed by value and never modified after creation.
type SystemSnapshot struct {
	Timestamp        time.Time `json:"timestamp"`
	CPUPercent       float64   `json:"cpu_percent"`
	MemoryPercent    float64   `json:"memory_percent"`
	MemoryUsedGB     float64   `json:"memory_used_gb"`
	MemoryTotalGB    float64   `json:"memory_total_gb"`
	DiskPercent      float64   `json:"disk_percent"`
	DiskUsedGB       float64   `json:"disk_used_gb"`
	DiskTotalGB      float64   `json:"disk_total_gb"`
	NetworkBytesSent uint64    `json:"network_bytes_sent"`
	NetworkBytesRecv uint64    `json:"network_bytes_recv"`
	NetworkSentMB    float64   `json:"network_sent_mb"`
	NetworkRecvMB    float64   `json:"network_recv_mb"`
}

// SystemData is the dashboard payload: the latest snapshot with its alerts
type SystemData struct {
	SystemSnapshot
	Alerts []string `json:"alerts"`
}

// NewSystemData pairs a snapshot with its alerts. Alerts is never nil so
// it always encodes as a JSON array.
func NewSystemData(snapshot SystemSnapshot, alerts []string) SystemData {
	if alerts == nil {
		alerts = []string{}
	}
	return SystemData{SystemSnapshot: snapshot, Alerts: alerts}
}
