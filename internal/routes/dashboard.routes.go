package routes

import (
	"sysdesk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(r *gin.Engine, dashboard *controllers.DashboardController) {
	r.GET("/", dashboard.GetDashboard)
}
