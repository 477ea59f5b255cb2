package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"staff-registry/internal/dto"
	"staff-registry/internal/services"
	"staff-registry/pkg/api"
	"staff-registry/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	if logger == nil {
		logger = zap.New(zapcore.NewNopCore())
	}
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

func (c *UserController) CreateUser(ctx echo.Context) error {
	var payload dto.CreateUserDTO
	if _, err := utils.BindStrict(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.userService.CreateUser(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Created(ctx, "User created", "user_id", id)
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	users, err := c.userService.GetUsers(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.List(ctx, users)
}

func (c *UserController) FindUser(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.userService.FindUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.One(ctx, user)
}

func (c *UserController) FindUserByTelegramID(ctx echo.Context) error {
	telegramID, err := utils.ParseTelegramIDParam(ctx, "id_telegram")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.userService.FindUserByTelegramID(ctx.Request().Context(), telegramID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.One(ctx, user)
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	changes, err := c.bindPatch(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.userService.UpdateUser(ctx.Request().Context(), id, changes); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "User updated")
}

func (c *UserController) UpdateUserByTelegramID(ctx echo.Context) error {
	telegramID, err := utils.ParseTelegramIDParam(ctx, "id_telegram")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	changes, err := c.bindPatch(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.userService.UpdateUserByTelegramID(ctx.Request().Context(), telegramID, changes); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "User updated")
}

func (c *UserController) bindPatch(ctx echo.Context) (map[string]interface{}, error) {
	var payload dto.UpdateUserDTO
	raw, err := utils.BindStrict(ctx, &payload)
	if err != nil {
		return nil, err
	}
	if err := ctx.Validate(&payload); err != nil {
		return nil, err
	}
	return utils.CollectPatch(&payload, raw)
}

func (c *UserController) DeleteUser(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.userService.DeleteUser(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "User deleted")
}

func (c *UserController) DeleteUserByTelegramID(ctx echo.Context) error {
	telegramID, err := utils.ParseTelegramIDParam(ctx, "id_telegram")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.userService.DeleteUserByTelegramID(ctx.Request().Context(), telegramID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "User deleted")
}
