package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sysdesk/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 6, 123456000, time.UTC)

type helpdeskFixture struct {
	fs       afero.Fs
	exec     *fakeExecutor
	helpdesk *Helpdesk
}

func newHelpdeskFixture(t *testing.T, results map[string]fakeRun, resources ResourceReader, tempDirs []string) *helpdeskFixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	exec := newFakeExecutor(results)
	actions := NewActionLog(fs, "helpdesk_log.txt")
	actions.now = func() time.Time { return fixedNow }

	h := NewHelpdesk(HelpdeskOptions{
		Runner:    NewRunnerFor("linux", exec),
		Resources: resources,
		Actions:   actions,
		Cleaner:   NewTempCleaner(fs, tempDirs),
		Fs:        fs,
		ReportDir: "reports",
		Info: models.SystemInfo{
			OS:        "linux",
			OSVersion: "ubuntu 22.04",
			Machine:   "x86_64",
			Processor: "Test CPU",
			Hostname:  "desk-01",
			Username:  "alice",
			Timestamp: "2024-03-09 14:00:00",
		},
	})
	h.now = func() time.Time { return fixedNow }

	return &helpdeskFixture{fs: fs, exec: exec, helpdesk: h}
}

func (f *helpdeskFixture) actionLog(t *testing.T) []string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, "helpdesk_log.txt")
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

var healthyResources = &fakeResources{
	cpu:    &models.CPUStatus{UsagePercent: 12.5},
	memory: &models.MemoryStatus{TotalGB: 16, UsedGB: 8, AvailableGB: 7.5, UsagePercent: 50},
}

func TestCheckDiskSpace(t *testing.T) {
	f := newHelpdeskFixture(t, map[string]fakeRun{"df": {stdout: "disk listing"}}, healthyResources, nil)

	assert.Equal(t, "disk listing", f.helpdesk.CheckDiskSpace(context.Background()))
	assert.Equal(t, []string{"[2024-03-09 14:05:06.123456] Disk Space Check: Completed successfully"}, f.actionLog(t))
}

func TestCheckDiskSpaceFailure(t *testing.T) {
	f := newHelpdeskFixture(t, nil, healthyResources, nil)

	out := f.helpdesk.CheckDiskSpace(context.Background())
	assert.True(t, strings.HasPrefix(out, "Error checking disk space: "))
	lines := f.actionLog(t)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Disk Space Check: Error: ")
}

func TestCheckNetworkConnectivityUsesDefaultHost(t *testing.T) {
	f := newHelpdeskFixture(t, map[string]fakeRun{"ping": {stdout: "ok"}}, healthyResources, nil)

	res := f.helpdesk.CheckNetworkConnectivity(context.Background(), "")
	assert.True(t, res.Success)
	assert.Equal(t, "8.8.8.8", res.Host)
	assert.Equal(t, []string{"ping -c 4 8.8.8.8"}, f.exec.calls)
	assert.Equal(t, []string{"[2024-03-09 14:05:06.123456] Network Connectivity Test: Success: true"}, f.actionLog(t))
}

func TestGetRunningProcesses(t *testing.T) {
	f := newHelpdeskFixture(t, map[string]fakeRun{"ps": {stdout: "PID CMD"}}, healthyResources, nil)

	assert.Equal(t, "PID CMD", f.helpdesk.GetRunningProcesses(context.Background()))
	assert.Equal(t, []string{"ps aux"}, f.exec.calls)
	assert.Contains(t, f.actionLog(t)[0], "Process List: Retrieved successfully")
}

func TestCheckSystemResources(t *testing.T) {
	f := newHelpdeskFixture(t, nil, healthyResources, nil)

	usage, msg := f.helpdesk.CheckSystemResources(context.Background())
	require.NotNil(t, usage)
	assert.Empty(t, msg)
	assert.Equal(t, models.ResourceUsage{
		CPUUsage:        "12.5%",
		MemoryUsage:     "50%",
		MemoryAvailable: "7.50 GB",
		MemoryTotal:     "16.00 GB",
	}, *usage)
}

func TestCheckSystemResourcesUnavailable(t *testing.T) {
	resources := &fakeResources{err: fmt.Errorf("cpu usage: %w", ErrMetricsUnavailable)}
	f := newHelpdeskFixture(t, nil, resources, nil)

	usage, msg := f.helpdesk.CheckSystemResources(context.Background())
	assert.Nil(t, usage)
	assert.True(t, strings.HasPrefix(msg, "Resource metrics are not available on this platform"))
}

func TestCheckSystemResourcesOtherError(t *testing.T) {
	f := newHelpdeskFixture(t, nil, &fakeResources{err: errors.New("boom")}, nil)

	usage, msg := f.helpdesk.CheckSystemResources(context.Background())
	assert.Nil(t, usage)
	assert.Equal(t, "Error checking resources: boom", msg)
}

func TestClearTempFilesUnsupported(t *testing.T) {
	f := newHelpdeskFixture(t, nil, healthyResources, nil)
	assert.Equal(t, "This function is Windows-specific", f.helpdesk.ClearTempFiles())
}

func TestClearTempFiles(t *testing.T) {
	f := newHelpdeskFixture(t, nil, healthyResources, []string{"/tmp/a"})
	require.NoError(t, afero.WriteFile(f.fs, "/tmp/a/one.tmp", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(f.fs, "/tmp/a/two.tmp", []byte("x"), 0o644))

	assert.Equal(t, "Deleted 2 temporary files", f.helpdesk.ClearTempFiles())
	assert.Contains(t, f.actionLog(t)[0], "Temp Files Cleanup: Deleted 2 temporary files")
}

func TestGenerateSystemReportDisconnected(t *testing.T) {
	f := newHelpdeskFixture(t, map[string]fakeRun{
		"df":   {stdout: "Filesystem  Size\n/dev/sda1   50G"},
		"ping": {stdout: "100% packet loss", code: 1},
	}, healthyResources, nil)

	report := f.helpdesk.GenerateSystemReport(context.Background())

	assert.True(t, strings.HasPrefix(report, "=== IT HELPDESK SYSTEM REPORT ===\nGenerated: 2024-03-09 14:05:06\n"))
	assert.Contains(t, report, "SYSTEM INFORMATION:\n  Os: linux\n  Os Version: ubuntu 22.04\n")
	assert.Contains(t, report, "  Hostname: desk-01\n")
	assert.Contains(t, report, "DISK SPACE:\nFilesystem  Size\n/dev/sda1   50G\n")
	assert.Contains(t, report, "NETWORK CONNECTIVITY:\n  Status: DISCONNECTED\n")
	assert.True(t, strings.HasSuffix(report, "SYSTEM RESOURCES:\n  Cpu Usage: 12.5%\n  Memory Usage: 50%\n  Memory Available: 7.50 GB\n  Memory Total: 16.00 GB"))

	path, err := f.helpdesk.SaveReport(report)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("reports", "system_report_20240309_140506.txt"), path)

	saved, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	assert.Equal(t, report, string(saved))
}

func TestGenerateSystemReportConnected(t *testing.T) {
	f := newHelpdeskFixture(t, map[string]fakeRun{
		"df":   {stdout: "disk"},
		"ping": {stdout: "ok"},
	}, &fakeResources{err: fmt.Errorf("cpu: %w", ErrMetricsUnavailable)}, nil)

	report := f.helpdesk.GenerateSystemReport(context.Background())
	assert.Contains(t, report, "  Status: CONNECTED")
	assert.Contains(t, report, "SYSTEM RESOURCES:\n  Resource metrics are not available on this platform")
}

func TestGenerateSystemReportNoBinaries(t *testing.T) {
	f := newHelpdeskFixture(t, nil, healthyResources, nil)

	report := f.helpdesk.GenerateSystemReport(context.Background())
	assert.Contains(t, report, "Error checking disk space: ")
	assert.Contains(t, report, "  Status: DISCONNECTED")

	_, err := f.helpdesk.SaveReport(report)
	assert.NoError(t, err)
}

func TestSaveReportReadOnlyFs(t *testing.T) {
	f := newHelpdeskFixture(t, nil, healthyResources, nil)
	f.helpdesk.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := f.helpdesk.SaveReport("report")
	assert.Error(t, err)

	lines := f.actionLog(t)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "System Report: Error: ")
}

func TestActionLogAppendsToExistingFile(t *testing.T) {
	f := newHelpdeskFixture(t, map[string]fakeRun{
		"df":   {stdout: "disk"},
		"ping": {stdout: "ok"},
	}, healthyResources, nil)
	previous := "[2024-03-08 09:00:00.000000] Process List: Retrieved successfully\n"
	require.NoError(t, afero.WriteFile(f.fs, "helpdesk_log.txt", []byte(previous), 0o644))

	f.helpdesk.CheckDiskSpace(context.Background())
	f.helpdesk.GenerateSystemReport(context.Background())

	assert.Equal(t, []string{
		"[2024-03-08 09:00:00.000000] Process List: Retrieved successfully",
		"[2024-03-09 14:05:06.123456] Disk Space Check: Completed successfully",
		"[2024-03-09 14:05:06.123456] Disk Space Check: Completed successfully",
		"[2024-03-09 14:05:06.123456] Network Connectivity Test: Success: true",
		"[2024-03-09 14:05:06.123456] System Resources Check: Completed successfully",
	}, f.actionLog(t))
}

func TestActionLogWriteFailureIsSwallowed(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	actions := NewActionLog(fs, "helpdesk_log.txt")

	assert.NotPanics(t, func() { actions.Record("Disk Space Check", "Completed successfully") })
	assert.Error(t, actions.append("Disk Space Check", "Completed successfully"))

	exists, err := afero.Exists(fs, "helpdesk_log.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}
