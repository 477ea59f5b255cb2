package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/internal/services"
	"staff-registry/pkg/api"
	"staff-registry/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
	logger       *zap.Logger
}

func NewAdminController(adminService services.AdminServiceInterface, logger *zap.Logger) *AdminController {
	return &AdminController{adminService: adminService, logger: logger}
}

// InitDB удаляет и заново создаёт все таблицы. Не вызывать под нагрузкой.
func (c *AdminController) InitDB(ctx echo.Context) error {
	c.logger.Warn("Запрошена переинициализация БД",
		zap.String("remote_ip", ctx.RealIP()),
		zap.String("request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
	)
	if err := c.adminService.InitSchema(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Database initialized")
}

func (c *AdminController) SchemaVersion(ctx echo.Context) error {
	version, err := c.adminService.SchemaVersion(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessWith(ctx, http.StatusOK, "Schema version", map[string]interface{}{"version": version})
}

func (c *AdminController) Health(ctx echo.Context) error {
	if err := c.adminService.Health(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "OK")
}
