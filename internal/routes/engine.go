package routes

import (
	"fmt"

	"sysdesk/internal/controllers"
	"sysdesk/internal/middleware"
	"sysdesk/internal/web"

	"github.com/gin-gonic/gin"
)

// NewEngine builds the dashboard router with its middleware and pages
func NewEngine(system *controllers.SystemController, dashboard *controllers.DashboardController, limiter *middleware.RateLimiter) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	RegisterDashboardRoutes(r, dashboard)

	api := r.Group("/api")
	if limiter != nil {
		api.Use(middleware.RateLimitMiddleware(limiter))
	}
	RegisterAPIRoutes(api, system)

	return r, nil
}
