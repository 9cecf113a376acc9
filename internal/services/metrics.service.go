package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"sysdesk/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

const (
	GB = 1024 * 1024 * 1024
	MB = 1024 * 1024
)

// ErrMetricsUnavailable is returned when the host does not expose a metric
var ErrMetricsUnavailable = errors.New("host metrics are not available on this platform")

// MetricsSource produces one snapshot of host metrics per call
type MetricsSource interface {
	Read(ctx context.Context) (models.SystemSnapshot, error)
}

// HostMetrics reads live counters through gopsutil
type HostMetrics struct {
	// CPUInterval is the window cpu usage is measured over. Zero compares
	// against the previous call.
	CPUInterval time.Duration
	// DiskPath is the mount point reported in snapshots
	DiskPath string

	now func() time.Time
}

// NewHostMetrics returns a reader for the local host
func NewHostMetrics(cpuInterval time.Duration, diskPath string) *HostMetrics {
	if diskPath == "" {
		diskPath = "/"
	}
	return &HostMetrics{CPUInterval: cpuInterval, DiskPath: diskPath, now: time.Now}
}

// CPUUsage returns CPU usage percentage
func (h *HostMetrics) CPUUsage(ctx context.Context) (*models.CPUStatus, error) {
	percentage, err := cpu.PercentWithContext(ctx, h.CPUInterval, false)
	if err != nil {
		return nil, unavailable("cpu usage", err)
	}
	if len(percentage) == 0 {
		return nil, fmt.Errorf("cpu usage: %w", ErrMetricsUnavailable)
	}

	return &models.CPUStatus{UsagePercent: round2(percentage[0])}, nil
}

// MemoryUsage returns memory usage information
func (h *HostMetrics) MemoryUsage(ctx context.Context) (*models.MemoryStatus, error) {
	virtualMemory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, unavailable("memory usage", err)
	}

	return &models.MemoryStatus{
		TotalGB:      round2(float64(virtualMemory.Total) / GB),
		UsedGB:       round2(float64(virtualMemory.Used) / GB),
		AvailableGB:  round2(float64(virtualMemory.Available) / GB),
		UsagePercent: round2(virtualMemory.UsedPercent),
	}, nil
}

// DiskUsage returns disk usage for a specific path
func (h *HostMetrics) DiskUsage(ctx context.Context, path string) (*models.DiskStatus, error) {
	if path == "" {
		path = h.DiskPath
	}

	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, unavailable("disk usage", err)
	}

	return &models.DiskStatus{
		Path:         path,
		TotalGB:      round2(float64(usage.Total) / GB),
		UsedGB:       round2(float64(usage.Used) / GB),
		UsagePercent: round2(usage.UsedPercent),
	}, nil
}

// NetworkTotals returns total bytes sent/received across all interfaces
func (h *HostMetrics) NetworkTotals(ctx context.Context) (*models.NetworkTotals, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, unavailable("network usage", err)
	}

	var totals models.NetworkTotals
	for _, counter := range counters {
		totals.BytesSent += counter.BytesSent
		totals.BytesRecv += counter.BytesRecv
	}
	totals.SentMB = round2(float64(totals.BytesSent) / MB)
	totals.RecvMB = round2(float64(totals.BytesRecv) / MB)

	return &totals, nil
}

// Read takes one complete snapshot of the host
func (h *HostMetrics) Read(ctx context.Context) (models.SystemSnapshot, error) {
	cpuStatus, err := h.CPUUsage(ctx)
	if err != nil {
		return models.SystemSnapshot{}, fmt.Errorf("failed to get CPU usage: %w", err)
	}

	memStatus, err := h.MemoryUsage(ctx)
	if err != nil {
		return models.SystemSnapshot{}, fmt.Errorf("failed to get memory usage: %w", err)
	}

	diskStatus, err := h.DiskUsage(ctx, h.DiskPath)
	if err != nil {
		return models.SystemSnapshot{}, fmt.Errorf("failed to get disk usage: %w", err)
	}

	network, err := h.NetworkTotals(ctx)
	if err != nil {
		return models.SystemSnapshot{}, fmt.Errorf("failed to get network usage: %w", err)
	}

	return models.SystemSnapshot{
		Timestamp:        h.now(),
		CPUPercent:       cpuStatus.UsagePercent,
		MemoryPercent:    memStatus.UsagePercent,
		MemoryUsedGB:     memStatus.UsedGB,
		MemoryTotalGB:    memStatus.TotalGB,
		DiskPercent:      diskStatus.UsagePercent,
		DiskUsedGB:       diskStatus.UsedGB,
		DiskTotalGB:      diskStatus.TotalGB,
		NetworkBytesSent: network.BytesSent,
		NetworkBytesRecv: network.BytesRecv,
		NetworkSentMB:    network.SentMB,
		NetworkRecvMB:    network.RecvMB,
	}, nil
}

// unavailable maps gopsutil's "not implemented yet" error onto
// ErrMetricsUnavailable. gopsutil keeps that sentinel in an internal
// package, so only its message can be matched.
func unavailable(metric string, err error) error {
	if strings.Contains(err.Error(), "not implemented") {
		return fmt.Errorf("%s: %w", metric, ErrMetricsUnavailable)
	}
	return fmt.Errorf("%s: %w", metric, err)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
