package routes

import (
	"sysdesk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAPIRoutes(api *gin.RouterGroup, system *controllers.SystemController) {
	api.GET("/system-data", system.GetSystemData)
	api.GET("/history", system.GetHistory)
}
