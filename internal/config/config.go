// Package config loads sysdesk settings from a YAML file with environment
// overrides. Environment variables use the SYSDESK prefix, e.g.
// SYSDESK_DASHBOARD_LISTEN or SYSDESK_LOG_LEVEL.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SYSDESK"

type Config struct {
	LogLevel  string    `yaml:"log_level" split_words:"true"`
	LogFile   string    `yaml:"log_file" split_words:"true"`
	Helpdesk  Helpdesk  `yaml:"helpdesk"`
	Dashboard Dashboard `yaml:"dashboard"`
}

type Helpdesk struct {
	ActionLog   string   `yaml:"action_log" split_words:"true"`
	LogFile     string   `yaml:"log_file" split_words:"true"`
	ReportDir   string   `yaml:"report_dir" split_words:"true"`
	DefaultHost string   `yaml:"default_host" split_words:"true"`
	TempDirs    []string `yaml:"temp_dirs" split_words:"true"`
}

type Dashboard struct {
	Listen            string        `yaml:"listen"`
	HistorySize       int           `yaml:"history_size" split_words:"true"`
	PollInterval      time.Duration `yaml:"poll_interval" split_words:"true"`
	SampleInterval    time.Duration `yaml:"sample_interval" split_words:"true"`
	CPUSampleInterval time.Duration `yaml:"cpu_sample_interval" split_words:"true"`
	DiskPath          string        `yaml:"disk_path" split_words:"true"`
	RateLimit         float64       `yaml:"rate_limit" split_words:"true"`
	RateBurst         int           `yaml:"rate_burst" split_words:"true"`
	Thresholds        Thresholds    `yaml:"thresholds"`
}

// Thresholds are the percentages above which an alert is raised
type Thresholds struct {
	CPU    float64 `yaml:"cpu"`
	Memory float64 `yaml:"memory"`
	Disk   float64 `yaml:"disk"`
}

// Default is the configuration used when no file is present
var Default = Config{
	LogLevel: "info",
	Helpdesk: Helpdesk{
		ActionLog:   "helpdesk_log.txt",
		LogFile:     "helpdesk.log",
		ReportDir:   ".",
		DefaultHost: "8.8.8.8",
	},
	Dashboard: Dashboard{
		Listen:            "0.0.0.0:5000",
		HistorySize:       100,
		PollInterval:      5 * time.Second,
		CPUSampleInterval: time.Second,
		DiskPath:          "/",
		RateLimit:         20,
		RateBurst:         40,
		Thresholds: Thresholds{
			CPU:    80,
			Memory: 85,
			Disk:   90,
		},
	},
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	conf := Default
	conf.Helpdesk.TempDirs = append([]string(nil), Default.Helpdesk.TempDirs...)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &conf); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	conf.applyFallbacks()
	return &conf, nil
}

// applyFallbacks restores defaults for values a file or environment zeroed out
func (c *Config) applyFallbacks() {
	if c.Helpdesk.DefaultHost == "" {
		c.Helpdesk.DefaultHost = Default.Helpdesk.DefaultHost
	}
	if c.Helpdesk.ActionLog == "" {
		c.Helpdesk.ActionLog = Default.Helpdesk.ActionLog
	}
	if c.Helpdesk.LogFile == "" {
		c.Helpdesk.LogFile = Default.Helpdesk.LogFile
	}
	if c.Helpdesk.ReportDir == "" {
		c.Helpdesk.ReportDir = Default.Helpdesk.ReportDir
	}
	if c.Dashboard.HistorySize <= 0 {
		c.Dashboard.HistorySize = Default.Dashboard.HistorySize
	}
	if c.Dashboard.PollInterval <= 0 {
		c.Dashboard.PollInterval = Default.Dashboard.PollInterval
	}
	if c.Dashboard.DiskPath == "" {
		c.Dashboard.DiskPath = Default.Dashboard.DiskPath
	}
	if c.Dashboard.Listen == "" {
		c.Dashboard.Listen = Default.Dashboard.Listen
	}
}

// HelpdeskLogFile is where the helpdesk CLI sends its process log so the
// menu is not interleaved with log lines. An explicit log_file wins.
func (c *Config) HelpdeskLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return c.Helpdesk.LogFile
}
