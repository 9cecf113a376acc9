package main

import (
	"context"
	"os"
	"runtime"

	"sysdesk/internal/cli"
	"sysdesk/internal/config"
	"sysdesk/internal/logger"
	"sysdesk/internal/services"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"
)

var mainLog = logger.For("main")

func main() {
	app := kingpin.New("helpdesk", "Interactive IT helpdesk checks for the local machine.")
	configPath := app.Flag("config", "Path to the YAML config file.").Default("sysdesk.yaml").Envar("SYSDESK_CONFIG").String()
	logLevel := app.Flag("log-level", "Log level: debug, info, warn or error (overrides config).").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	conf, err := config.Load(*configPath)
	if err != nil {
		mainLog.WithError(err).Fatal("Could not load config")
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	logger.SetLevel(conf.LogLevel)
	out, err := logger.SetOutput(conf.HelpdeskLogFile())
	if err != nil {
		mainLog.WithError(err).Fatal("Could not open log file")
	}
	defer out.Close()

	ctx := context.Background()

	fs := afero.NewOsFs()
	tempDirs := conf.Helpdesk.TempDirs
	if len(tempDirs) == 0 {
		tempDirs = services.DefaultTempDirs(runtime.GOOS)
	}

	helpdesk := services.NewHelpdesk(services.HelpdeskOptions{
		Runner:      services.NewRunner(services.ExecExecutor{}),
		Resources:   services.NewHostMetrics(conf.Dashboard.CPUSampleInterval, conf.Dashboard.DiskPath),
		Actions:     services.NewActionLog(fs, conf.Helpdesk.ActionLog),
		Cleaner:     services.NewTempCleaner(fs, tempDirs),
		Fs:          fs,
		ReportDir:   conf.Helpdesk.ReportDir,
		DefaultHost: conf.Helpdesk.DefaultHost,
		Info:        services.CollectSystemInfo(ctx),
	})

	cli.NewMenu(helpdesk, os.Stdin, os.Stdout).Run(ctx)
}
