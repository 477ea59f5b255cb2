package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/internal/controllers"
	"staff-registry/internal/services"
)

func runEmployeeRouter(group *echo.Group, employeeService services.EmployeeServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewEmployeeController(employeeService, logger)

	group.POST("", ctrl.CreateEmployee)
	group.GET("", ctrl.GetEmployees)
	group.GET("/:id", ctrl.FindEmployee)
	group.GET("/telegram/:id_telegram", ctrl.FindEmployeeByTelegramID)
	group.PATCH("/:id", ctrl.UpdateEmployee)
	group.PATCH("/telegram/:id_telegram", ctrl.UpdateEmployeeByTelegramID)
	group.DELETE("/:id", ctrl.DeleteEmployee)
	group.DELETE("/telegram/:id_telegram", ctrl.DeleteEmployeeByTelegramID)
}
