package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sysdesk/internal/models"
)

// Thresholds are the percentages a snapshot must exceed to raise an alert
type Thresholds struct {
	CPU    float64
	Memory float64
	Disk   float64
}

// DefaultThresholds are the stock alert levels
var DefaultThresholds = Thresholds{CPU: 80, Memory: 85, Disk: 90}

// Collector samples host metrics into a bounded history and derives alerts
type Collector struct {
	source     MetricsSource
	history    *History
	thresholds Thresholds

	mu      sync.Mutex
	running bool
}

// NewCollector wires a metrics source to a history
func NewCollector(source MetricsSource, history *History, thresholds Thresholds) *Collector {
	if history == nil {
		history = NewHistory(DefaultHistorySize)
	}
	return &Collector{
		source:     source,
		history:    history,
		thresholds: thresholds,
	}
}

// Sample reads one snapshot and appends it to the history. On failure
// nothing is appended.
func (c *Collector) Sample(ctx context.Context) (models.SystemSnapshot, error) {
	snapshot, err := c.source.Read(ctx)
	if err != nil {
		return models.SystemSnapshot{}, fmt.Errorf("unable to read system metrics: %w", err)
	}
	c.history.Append(snapshot)
	return snapshot, nil
}

// AlertsFor checks a snapshot against the thresholds. Alerts are ordered
// cpu, memory, disk; a value equal to its threshold does not alert.
func (c *Collector) AlertsFor(snapshot models.SystemSnapshot) []string {
	var alerts []string

	if snapshot.CPUPercent > c.thresholds.CPU {
		alerts = append(alerts, fmt.Sprintf("High CPU usage: %s%%", models.FormatPercent(snapshot.CPUPercent)))
	}
	if snapshot.MemoryPercent > c.thresholds.Memory {
		alerts = append(alerts, fmt.Sprintf("High memory usage: %s%%", models.FormatPercent(snapshot.MemoryPercent)))
	}
	if snapshot.DiskPercent > c.thresholds.Disk {
		alerts = append(alerts, fmt.Sprintf("Low disk space: %s%% used", models.FormatPercent(snapshot.DiskPercent)))
	}

	return alerts
}

// History returns the retained snapshots, oldest first
func (c *Collector) History() []models.SystemSnapshot {
	return c.history.Snapshots()
}

// Start samples in the background every interval until ctx is done.
// A non-positive interval leaves sampling request-driven.
func (c *Collector) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer func() {
			c.mu.Lock()
			c.running = false
			c.mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				log.Info("Background sampler stopped")
				return
			case <-ticker.C:
				snapshot, err := c.Sample(ctx)
				if err != nil {
					log.WithError(err).Warn("Background sample failed")
					continue
				}
				for _, alert := range c.AlertsFor(snapshot) {
					log.WithField("alert", alert).Warn("Threshold exceeded")
				}
			}
		}
	}()

	log.WithField("interval", interval).Info("Background sampler started")
}
