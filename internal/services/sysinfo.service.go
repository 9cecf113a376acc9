package services

import (
	"context"
	"os"
	"os/user"
	"runtime"
	"time"

	"sysdesk/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// CollectSystemInfo gathers host facts. Anything gopsutil cannot read
// falls back to what the Go runtime knows.
func CollectSystemInfo(ctx context.Context) models.SystemInfo {
	info := models.SystemInfo{
		OS:        runtime.GOOS,
		Machine:   runtime.GOARCH,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}

	if hostInfo, err := host.InfoWithContext(ctx); err != nil {
		helpdeskLog.WithError(err).Warn("Could not read host info")
	} else {
		info.OSVersion = hostInfo.PlatformVersion
		if hostInfo.Platform != "" {
			info.OSVersion = hostInfo.Platform + " " + hostInfo.PlatformVersion
		}
		if hostInfo.KernelVersion != "" {
			info.OSVersion += " (kernel " + hostInfo.KernelVersion + ")"
		}
		if hostInfo.KernelArch != "" {
			info.Machine = hostInfo.KernelArch
		}
		info.Hostname = hostInfo.Hostname
	}

	if cpus, err := cpu.InfoWithContext(ctx); err != nil {
		helpdeskLog.WithError(err).Warn("Could not read CPU info")
	} else if len(cpus) > 0 {
		info.Processor = cpus[0].ModelName
	}

	if info.Hostname == "" {
		info.Hostname, _ = os.Hostname()
	}
	if u, err := user.Current(); err == nil {
		info.Username = u.Username
	} else {
		info.Username = os.Getenv("USER")
	}

	return info
}
