package services

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"sysdesk/internal/models"
)

// Operation names a logical probe
type Operation string

const (
	OpDisk      Operation = "disk"
	OpPing      Operation = "ping"
	OpProcesses Operation = "processes"
)

// DefaultPingHost is pinged when no host is given
const DefaultPingHost = "8.8.8.8"

const hostPlaceholder = "{host}"

// CommandTemplate is a platform command with an optional {host} placeholder
type CommandTemplate struct {
	Name string
	Args []string
}

// Expand substitutes the target into the template arguments
func (t CommandTemplate) Expand(target string) (string, []string) {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = strings.ReplaceAll(arg, hostPlaceholder, target)
	}
	return t.Name, args
}

// Capabilities maps each probe to the command that implements it on a platform
type Capabilities map[Operation]CommandTemplate

var (
	windowsCapabilities = Capabilities{
		OpDisk:      {Name: "cmd", Args: []string{"/C", "dir", `C:\`}},
		OpPing:      {Name: "ping", Args: []string{"-n", "4", hostPlaceholder}},
		OpProcesses: {Name: "tasklist"},
	}
	posixCapabilities = Capabilities{
		OpDisk:      {Name: "df", Args: []string{"-h"}},
		OpPing:      {Name: "ping", Args: []string{"-c", "4", hostPlaceholder}},
		OpProcesses: {Name: "ps", Args: []string{"aux"}},
	}
)

// CapabilitiesFor returns the command table for a GOOS value
func CapabilitiesFor(goos string) Capabilities {
	if goos == "windows" {
		return windowsCapabilities
	}
	return posixCapabilities
}

// Executor runs a command to completion. A non-zero exit is reported
// through exitCode with a nil error; err is reserved for failures to run
// the command at all.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, exitCode int, err error)
}

// ExecExecutor runs commands with os/exec
type ExecExecutor struct{}

func (ExecExecutor) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return stdout.String(), -1, err
	}
	return stdout.String(), 0, nil
}

// Runner invokes probes through a capability table chosen once at startup
type Runner struct {
	caps     Capabilities
	executor Executor
}

// NewRunner builds a runner for the current platform
func NewRunner(executor Executor) *Runner {
	return NewRunnerFor(runtime.GOOS, executor)
}

// NewRunnerFor builds a runner for a specific GOOS value
func NewRunnerFor(goos string, executor Executor) *Runner {
	if executor == nil {
		executor = ExecExecutor{}
	}
	return &Runner{caps: CapabilitiesFor(goos), executor: executor}
}

// Run performs a single attempt of op. Failures never escape as errors:
// text probes return an error text result and ping returns Success=false.
func (r *Runner) Run(ctx context.Context, op Operation, target string) models.ProbeResult {
	if op == OpPing {
		return r.Ping(ctx, target)
	}
	return r.Text(ctx, op)
}

// Text runs op and returns its stdout as a text result
func (r *Runner) Text(ctx context.Context, op Operation) models.ProbeResult {
	tmpl, ok := r.caps[op]
	if !ok {
		return models.ErrorText("unsupported operation %q", op)
	}

	name, args := tmpl.Expand("")
	entry := probeLog.WithField("op", op).WithField("command", name)
	entry.WithField("args", args).Debug("Running probe")

	stdout, code, err := r.executor.Run(ctx, name, args...)
	if err != nil {
		entry.WithError(err).Warn("Probe failed to run")
		return models.ErrorText("%s", err)
	}
	if code != 0 {
		entry.WithField("exit_code", code).Warn("Probe exited with non-zero status")
		if stdout == "" {
			return models.ErrorText("%s exited with status %d", name, code)
		}
		return models.ErrorText("%s exited with status %d\n%s", name, code, stdout)
	}
	return models.TextResult(stdout)
}

// Ping tests reachability of host. An empty host uses DefaultPingHost.
func (r *Runner) Ping(ctx context.Context, host string) models.ProbeResult {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultPingHost
	}

	tmpl, ok := r.caps[OpPing]
	if !ok {
		res := models.ConnectivityResult(host, false, "")
		res.Error = "ping is not supported on this platform"
		return res
	}

	name, args := tmpl.Expand(host)
	entry := probeLog.WithField("op", OpPing).WithField("host", host)
	entry.WithField("args", args).Debug("Running probe")

	stdout, code, err := r.executor.Run(ctx, name, args...)
	if err != nil {
		entry.WithError(err).Warn("Probe failed to run")
		res := models.ConnectivityResult(host, false, stdout)
		res.Error = err.Error()
		return res
	}
	if code != 0 {
		entry.WithField("exit_code", code).Debug("Host unreachable")
	}
	return models.ConnectivityResult(host, code == 0, stdout)
}
