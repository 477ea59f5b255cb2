package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/internal/controllers"
	"staff-registry/internal/services"
)

func runUserRouter(group *echo.Group, userService services.UserServiceInterface, logger *zap.Logger) {
	userCtrl := controllers.NewUserController(userService, logger)

	group.POST("", userCtrl.CreateUser)
	group.GET("", userCtrl.GetUsers)
	group.GET("/:id", userCtrl.FindUser)
	group.GET("/telegram/:id_telegram", userCtrl.FindUserByTelegramID)
	group.PATCH("/:id", userCtrl.UpdateUser)
	group.PATCH("/telegram/:id_telegram", userCtrl.UpdateUserByTelegramID)
	group.DELETE("/:id", userCtrl.DeleteUser)
	group.DELETE("/telegram/:id_telegram", userCtrl.DeleteUserByTelegramID)
}
