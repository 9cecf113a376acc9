package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"sysdesk/internal/models"

	"github.com/spf13/afero"
)

// ResourceReader reads the CPU and memory figures for the resource check
type ResourceReader interface {
	CPUUsage(ctx context.Context) (*models.CPUStatus, error)
	MemoryUsage(ctx context.Context) (*models.MemoryStatus, error)
}

// HelpdeskOptions wires a Helpdesk to its collaborators
type HelpdeskOptions struct {
	Runner      *Runner
	Resources   ResourceReader
	Actions     *ActionLog
	Cleaner     *TempCleaner
	Fs          afero.Fs
	ReportDir   string
	DefaultHost string
	Info        models.SystemInfo
}

// Helpdesk runs the helpdesk checks and records each one in the action log
type Helpdesk struct {
	runner      *Runner
	resources   ResourceReader
	actions     *ActionLog
	cleaner     *TempCleaner
	fs          afero.Fs
	reportDir   string
	defaultHost string
	info        models.SystemInfo
	now         func() time.Time
}

func NewHelpdesk(opts HelpdeskOptions) *Helpdesk {
	if opts.DefaultHost == "" {
		opts.DefaultHost = DefaultPingHost
	}
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	return &Helpdesk{
		runner:      opts.Runner,
		resources:   opts.Resources,
		actions:     opts.Actions,
		cleaner:     opts.Cleaner,
		fs:          opts.Fs,
		reportDir:   opts.ReportDir,
		defaultHost: opts.DefaultHost,
		info:        opts.Info,
		now:         time.Now,
	}
}

// DefaultHost is the host pinged when the user gives none
func (h *Helpdesk) DefaultHost() string {
	return h.defaultHost
}

// CheckDiskSpace returns the platform disk listing
func (h *Helpdesk) CheckDiskSpace(ctx context.Context) string {
	res := h.runner.Run(ctx, OpDisk, "")
	if !res.Success {
		h.actions.Record("Disk Space Check", "Error: "+res.String())
		return "Error checking disk space: " + res.String()
	}
	h.actions.Record("Disk Space Check", "Completed successfully")
	return res.String()
}

// CheckNetworkConnectivity pings host, or the default host when empty
func (h *Helpdesk) CheckNetworkConnectivity(ctx context.Context, host string) models.ProbeResult {
	if strings.TrimSpace(host) == "" {
		host = h.defaultHost
	}
	res := h.runner.Run(ctx, OpPing, host)
	if res.Error != "" {
		h.actions.Record("Network Connectivity Test", "Error: "+res.Error)
		return res
	}
	h.actions.Record("Network Connectivity Test", fmt.Sprintf("Success: %t", res.Success))
	return res
}

// GetRunningProcesses returns the platform process listing
func (h *Helpdesk) GetRunningProcesses(ctx context.Context) string {
	res := h.runner.Run(ctx, OpProcesses, "")
	if !res.Success {
		h.actions.Record("Process List", "Error: "+res.String())
		return "Error getting processes: " + res.String()
	}
	h.actions.Record("Process List", "Retrieved successfully")
	return res.String()
}

// CheckSystemResources reads CPU and memory usage. When they cannot be
// read the usage is nil and the returned message explains why.
func (h *Helpdesk) CheckSystemResources(ctx context.Context) (*models.ResourceUsage, string) {
	cpuStatus, err := h.resources.CPUUsage(ctx)
	if err == nil {
		var memStatus *models.MemoryStatus
		memStatus, err = h.resources.MemoryUsage(ctx)
		if err == nil {
			usage := models.NewResourceUsage(cpuStatus, memStatus)
			h.actions.Record("System Resources Check", "Completed successfully")
			return &usage, ""
		}
	}

	h.actions.Record("System Resources Check", "Error: "+err.Error())
	if errors.Is(err, ErrMetricsUnavailable) {
		return nil, "Resource metrics are not available on this platform: " + err.Error()
	}
	return nil, "Error checking resources: " + err.Error()
}

// ClearTempFiles empties the configured temp directories
func (h *Helpdesk) ClearTempFiles() string {
	deleted, err := h.cleaner.Clear()
	if errors.Is(err, ErrCleanupUnsupported) {
		return "This function is Windows-specific"
	}
	if err != nil {
		helpdeskLog.WithError(err).WithField("deleted", deleted).Warn("Some temporary files were skipped")
	}

	result := fmt.Sprintf("Deleted %d temporary files", deleted)
	h.actions.Record("Temp Files Cleanup", result)
	return result
}

// GenerateSystemReport runs the disk, network and resource checks and
// joins them into one text report
func (h *Helpdesk) GenerateSystemReport(ctx context.Context) string {
	report := []string{
		"=== IT HELPDESK SYSTEM REPORT ===",
		"Generated: " + h.now().Format("2006-01-02 15:04:05"),
		"",
		"SYSTEM INFORMATION:",
	}
	for _, f := range h.info.Fields() {
		report = append(report, fmt.Sprintf("  %s: %s", f.Label(), f.Value))
	}
	report = append(report, "")

	report = append(report, "DISK SPACE:", h.CheckDiskSpace(ctx), "")

	report = append(report, "NETWORK CONNECTIVITY:")
	if h.CheckNetworkConnectivity(ctx, "").Success {
		report = append(report, "  Status: CONNECTED")
	} else {
		report = append(report, "  Status: DISCONNECTED")
	}
	report = append(report, "")

	report = append(report, "SYSTEM RESOURCES:")
	usage, msg := h.CheckSystemResources(ctx)
	if usage != nil {
		for _, f := range usage.Fields() {
			report = append(report, fmt.Sprintf("  %s: %s", f.Label(), f.Value))
		}
	} else {
		report = append(report, "  "+msg)
	}

	return strings.Join(report, "\n")
}

// SaveReport writes report to system_report_<YYYYMMDD_HHMMSS>.txt in the
// report directory and returns the file path
func (h *Helpdesk) SaveReport(report string) (string, error) {
	if err := h.fs.MkdirAll(h.reportDir, 0o755); err != nil {
		h.actions.Record("System Report", "Error: "+err.Error())
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	name := fmt.Sprintf("system_report_%s.txt", h.now().Format("20060102_150405"))
	path := filepath.Join(h.reportDir, name)
	if err := afero.WriteFile(h.fs, path, []byte(report), 0o644); err != nil {
		h.actions.Record("System Report", "Error: "+err.Error())
		return "", fmt.Errorf("writing report: %w", err)
	}

	h.actions.Record("System Report", "Saved to "+path)
	return path, nil
}
