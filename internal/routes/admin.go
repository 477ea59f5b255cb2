package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/internal/controllers"
	"staff-registry/internal/services"
	"staff-registry/pkg/middleware"
)

func runAdminRouter(e *echo.Echo, adminService services.AdminServiceInterface, adminMW *middleware.AdminMiddleware, logger *zap.Logger) {
	ctrl := controllers.NewAdminController(adminService, logger)

	e.GET("/health", ctrl.Health)

	admin := e.Group("/admin", adminMW.Guard)
	admin.POST("/init_db", ctrl.InitDB)
	admin.GET("/schema_version", ctrl.SchemaVersion)
}
