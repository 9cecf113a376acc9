package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DashboardController renders the polling HTML page
type DashboardController struct {
	pollInterval time.Duration
}

func NewDashboardController(pollInterval time.Duration) *DashboardController {
	return &DashboardController{pollInterval: pollInterval}
}

func (dc *DashboardController) GetDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"PollIntervalMs": dc.pollInterval.Milliseconds(),
	})
}
