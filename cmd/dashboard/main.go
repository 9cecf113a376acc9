package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sysdesk/internal/config"
	"sysdesk/internal/controllers"
	"sysdesk/internal/logger"
	"sysdesk/internal/middleware"
	"sysdesk/internal/routes"
	"sysdesk/internal/services"

	"github.com/alecthomas/kingpin/v2"
	"github.com/gin-gonic/gin"
)

var mainLog = logger.For("main")

func main() {
	app := kingpin.New("dashboard", "Web dashboard for live host metrics.")
	configPath := app.Flag("config", "Path to the YAML config file.").Default("sysdesk.yaml").Envar("SYSDESK_CONFIG").String()
	listen := app.Flag("listen", "Address to listen on (overrides config).").String()
	logLevel := app.Flag("log-level", "Log level: debug, info, warn or error (overrides config).").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	conf, err := config.Load(*configPath)
	if err != nil {
		mainLog.WithError(err).Fatal("Could not load config")
	}
	if *listen != "" {
		conf.Dashboard.Listen = *listen
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	logger.SetLevel(conf.LogLevel)
	out, err := logger.SetOutput(conf.LogFile)
	if err != nil {
		mainLog.WithError(err).Fatal("Could not open log file")
	}
	defer out.Close()

	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	source := services.NewHostMetrics(conf.Dashboard.CPUSampleInterval, conf.Dashboard.DiskPath)
	history := services.NewHistory(conf.Dashboard.HistorySize)
	collector := services.NewCollector(source, history, services.Thresholds{
		CPU:    conf.Dashboard.Thresholds.CPU,
		Memory: conf.Dashboard.Thresholds.Memory,
		Disk:   conf.Dashboard.Thresholds.Disk,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector.Start(ctx, conf.Dashboard.SampleInterval)

	engine, err := routes.NewEngine(
		controllers.NewSystemController(collector),
		controllers.NewDashboardController(conf.Dashboard.PollInterval),
		middleware.NewRateLimiter(conf.Dashboard.RateLimit, conf.Dashboard.RateBurst),
	)
	if err != nil {
		mainLog.WithError(err).Fatal("Could not build router")
	}

	srv := &http.Server{
		Addr:              conf.Dashboard.Listen,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			mainLog.WithError(err).Warn("Graceful shutdown failed")
		}
	}()

	mainLog.WithField("addr", conf.Dashboard.Listen).Info("Starting system monitor dashboard")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		mainLog.WithError(err).Fatal("Server stopped")
	}
	mainLog.Info("Dashboard stopped")
}
