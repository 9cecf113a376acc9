package models

// NetworkTotals holds byte counters summed across all interfaces
type NetworkTotals struct {
	BytesSent uint64  `json:"bytes_sent"`
	BytesRecv uint64  `json:"bytes_recv"`
	SentMB    float64 `json:"sent_mb"`
	RecvMB    float64 `json:"recv_mb"`
}
