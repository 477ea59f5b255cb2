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

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
	logger          *zap.Logger
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	if logger == nil {
		logger = zap.New(zapcore.NewNopCore())
	}
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	var payload dto.CreateEmployeeDTO
	raw, err := utils.BindStrict(ctx, &payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := utils.RejectNullKeys(raw, "is_working"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.employeeService.CreateEmployee(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Created(ctx, "Employee created", "employee_id", id)
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	employees, err := c.employeeService.GetEmployees(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.List(ctx, employees)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	employee, err := c.employeeService.FindEmployee(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.One(ctx, employee)
}

func (c *EmployeeController) FindEmployeeByTelegramID(ctx echo.Context) error {
	telegramID, err := utils.ParseTelegramIDParam(ctx, "id_telegram")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	employee, err := c.employeeService.FindEmployeeByTelegramID(ctx.Request().Context(), telegramID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.One(ctx, employee)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	changes, err := c.bindPatch(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.employeeService.UpdateEmployee(ctx.Request().Context(), id, changes); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Employee updated")
}

func (c *EmployeeController) UpdateEmployeeByTelegramID(ctx echo.Context) error {
	telegramID, err := utils.ParseTelegramIDParam(ctx, "id_telegram")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	changes, err := c.bindPatch(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.employeeService.UpdateEmployeeByTelegramID(ctx.Request().Context(), telegramID, changes); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Employee updated")
}

func (c *EmployeeController) bindPatch(ctx echo.Context) (map[string]interface{}, error) {
	var payload dto.UpdateEmployeeDTO
	raw, err := utils.BindStrict(ctx, &payload)
	if err != nil {
		return nil, err
	}
	if err := ctx.Validate(&payload); err != nil {
		return nil, err
	}
	return utils.CollectPatch(&payload, raw)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.employeeService.DeleteEmployee(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Employee deleted")
}

func (c *EmployeeController) DeleteEmployeeByTelegramID(ctx echo.Context) error {
	telegramID, err := utils.ParseTelegramIDParam(ctx, "id_telegram")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.employeeService.DeleteEmployeeByTelegramID(ctx.Request().Context(), telegramID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Employee deleted")
}
