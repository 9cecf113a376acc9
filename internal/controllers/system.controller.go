package controllers

import (
	"context"
	"net/http"

	"sysdesk/internal/models"

	"github.com/gin-gonic/gin"
)

// Sampler is the collector surface the dashboard needs
type Sampler interface {
	Sample(ctx context.Context) (models.SystemSnapshot, error)
	AlertsFor(snapshot models.SystemSnapshot) []string
	History() []models.SystemSnapshot
}

// SystemController serves snapshots from a collector it is handed
type SystemController struct {
	collector Sampler
}

func NewSystemController(collector Sampler) *SystemController {
	return &SystemController{collector: collector}
}

// GetSystemData samples the host once and returns the snapshot with its alerts
func (sc *SystemController) GetSystemData(c *gin.Context) {
	snapshot, err := sc.collector.Sample(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Sampling failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewSystemData(snapshot, sc.collector.AlertsFor(snapshot)))
}

// GetHistory returns every retained snapshot, oldest first
func (sc *SystemController) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, sc.collector.History())
}
