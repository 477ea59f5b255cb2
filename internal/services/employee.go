package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"staff-registry/internal/dto"
	"staff-registry/internal/entities"
	"staff-registry/internal/repositories"
	apperrors "staff-registry/pkg/errors"
	"staff-registry/pkg/types"
)

type EmployeeServiceInterface interface {
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (uint64, error)
	GetEmployees(ctx context.Context) ([]dto.EmployeeDTO, error)
	FindEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
	FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*dto.EmployeeDTO, error)
	UpdateEmployee(ctx context.Context, id uint64, changes map[string]interface{}) error
	UpdateEmployeeByTelegramID(ctx context.Context, telegramID int64, changes map[string]interface{}) error
	DeleteEmployee(ctx context.Context, id uint64) error
	DeleteEmployeeByTelegramID(ctx context.Context, telegramID int64) error
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(employeeRepository repositories.EmployeeRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employeeRepository: employeeRepository, logger: logger}
}

func employeeEntityToDTO(e *entities.Employee) *dto.EmployeeDTO {
	if e == nil {
		return nil
	}
	dateOfEnd := types.NullDate{}
	if e.DateOfEnd.Valid {
		dateOfEnd = types.NullDateFrom(types.DateFrom(e.DateOfEnd.Time))
	}
	return &dto.EmployeeDTO{
		ID:               e.ID,
		TelegramID:       e.TelegramID,
		ZupID:            e.ZupID,
		Login:            e.Login,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		MiddleName:       e.MiddleName,
		FullName:         e.FullName,
		Age:              e.Age,
		DateOfBirth:      types.DateFrom(e.DateOfBirth),
		Gender:           e.Gender,
		Position:         e.Position,
		Department:       e.Department,
		Organisation:     e.Organisation,
		FullOrgStructure: e.FullOrgStructure,
		DateOfStart:      types.DateFrom(e.DateOfStart),
		DateOfEnd:        dateOfEnd,
		Phone:            e.Phone,
		Email:            e.Email,
		IsWorking:        e.IsWorking,
		CreatedAt:        e.CreatedAt.Format(timestampLayout),
		UpdatedAt:        e.UpdatedAt.Format(timestampLayout),
	}
}

func employeeFromCreateDTO(payload dto.CreateEmployeeDTO) entities.Employee {
	e := entities.Employee{
		TelegramID:       payload.TelegramID,
		ZupID:            payload.ZupID,
		Login:            payload.Login,
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		MiddleName:       payload.MiddleName,
		FullName:         payload.FullName,
		Age:              payload.Age,
		DateOfBirth:      payload.DateOfBirth.Time,
		Gender:           payload.Gender,
		Position:         payload.Position,
		Department:       payload.Department,
		Organisation:     payload.Organisation,
		FullOrgStructure: payload.FullOrgStructure,
		DateOfStart:      payload.DateOfStart.Time,
		Phone:            payload.Phone,
		Email:            payload.Email,
		// По умолчанию сотрудник работает.
		IsWorking: !payload.IsWorking.Valid || payload.IsWorking.Bool,
	}
	if payload.DateOfEnd.Valid {
		e.DateOfEnd.SetValid(payload.DateOfEnd.Date.Time)
	}
	return e
}

func employeeNotFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Employee not found")
	}
	return err
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (uint64, error) {
	id, err := s.employeeRepository.CreateEmployee(ctx, employeeFromCreateDTO(payload))
	if err != nil {
		return 0, err
	}
	s.logger.Info("Сотрудник создан", zap.Uint64("id", id), zap.Int64("id_telegram", payload.TelegramID))
	return id, nil
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]dto.EmployeeDTO, error) {
	list, err := s.employeeRepository.GetEmployees(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.EmployeeDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, *employeeEntityToDTO(&list[i]))
	}
	return dtos, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	e, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, employeeNotFound(err)
	}
	return employeeEntityToDTO(e), nil
}

func (s *EmployeeService) FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*dto.EmployeeDTO, error) {
	e, err := s.employeeRepository.FindEmployeeByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, employeeNotFound(err)
	}
	return employeeEntityToDTO(e), nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, changes map[string]interface{}) error {
	e, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return employeeNotFound(err)
	}
	return s.applyUpdate(ctx, e, changes)
}

func (s *EmployeeService) UpdateEmployeeByTelegramID(ctx context.Context, telegramID int64, changes map[string]interface{}) error {
	e, err := s.employeeRepository.FindEmployeeByTelegramID(ctx, telegramID)
	if err != nil {
		return employeeNotFound(err)
	}
	return s.applyUpdate(ctx, e, changes)
}

func (s *EmployeeService) applyUpdate(ctx context.Context, e *entities.Employee, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	if err := s.employeeRepository.UpdateEmployee(ctx, e.ID, changes); err != nil {
		return employeeNotFound(err)
	}
	s.logger.Info("Сотрудник обновлён", zap.Uint64("id", e.ID), zap.Int("fields", len(changes)))
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) error {
	e, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return employeeNotFound(err)
	}
	return s.remove(ctx, e)
}

func (s *EmployeeService) DeleteEmployeeByTelegramID(ctx context.Context, telegramID int64) error {
	e, err := s.employeeRepository.FindEmployeeByTelegramID(ctx, telegramID)
	if err != nil {
		return employeeNotFound(err)
	}
	return s.remove(ctx, e)
}

func (s *EmployeeService) remove(ctx context.Context, e *entities.Employee) error {
	if err := s.employeeRepository.DeleteEmployee(ctx, e.ID); err != nil {
		return employeeNotFound(err)
	}
	s.logger.Info("Сотрудник удалён", zap.Uint64("id", e.ID), zap.Int64("id_telegram", e.TelegramID))
	return nil
}
