package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"staff-registry/internal/dto"
	"staff-registry/internal/entities"
	"staff-registry/internal/repositories"
	apperrors "staff-registry/pkg/errors"
)

const timestampLayout = time.RFC3339

type UserServiceInterface interface {
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (uint64, error)
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	FindUserByTelegramID(ctx context.Context, telegramID int64) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, changes map[string]interface{}) error
	UpdateUserByTelegramID(ctx context.Context, telegramID int64, changes map[string]interface{}) error
	DeleteUser(ctx context.Context, id uint64) error
	DeleteUserByTelegramID(ctx context.Context, telegramID int64) error
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{userRepository: userRepository, logger: logger}
}

func userEntityToDTO(entity *entities.User) *dto.UserDTO {
	if entity == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:          entity.ID,
		TelegramID:  entity.TelegramID,
		Username:    entity.Username,
		FirstName:   entity.FirstName,
		LastName:    entity.LastName,
		PhoneNumber: entity.PhoneNumber,
		EmployeeID:  entity.EmployeeID,
		CreatedAt:   entity.CreatedAt.Format(timestampLayout),
		UpdatedAt:   entity.UpdatedAt.Format(timestampLayout),
	}
}

func userEntitiesToDTOs(users []entities.User) []dto.UserDTO {
	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *userEntityToDTO(&users[i]))
	}
	return dtos
}

// userNotFound превращает ErrNotFound репозитория в 404 для клиента.
func userNotFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("User not found")
	}
	return err
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (uint64, error) {
	id, err := s.userRepository.CreateUser(ctx, entities.User{
		TelegramID:  payload.TelegramID,
		Username:    payload.Username,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		PhoneNumber: payload.PhoneNumber,
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("Пользователь создан", zap.Uint64("id", id), zap.Int64("id_telegram", payload.TelegramID))
	return id, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	return userEntitiesToDTOs(users), nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, userNotFound(err)
	}
	return userEntityToDTO(user), nil
}

func (s *UserService) FindUserByTelegramID(ctx context.Context, telegramID int64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, userNotFound(err)
	}
	return userEntityToDTO(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, changes map[string]interface{}) error {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return userNotFound(err)
	}
	return s.applyUpdate(ctx, user, changes)
}

func (s *UserService) UpdateUserByTelegramID(ctx context.Context, telegramID int64, changes map[string]interface{}) error {
	user, err := s.userRepository.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		return userNotFound(err)
	}
	return s.applyUpdate(ctx, user, changes)
}

func (s *UserService) applyUpdate(ctx context.Context, user *entities.User, changes map[string]interface{}) error {
	if len(changes) == 0 {
		s.logger.Debug("Пустой патч пользователя, запись не меняется", zap.Uint64("id", user.ID))
		return nil
	}
	if err := s.userRepository.UpdateUser(ctx, user.ID, changes); err != nil {
		return userNotFound(err)
	}
	s.logger.Info("Пользователь обновлён", zap.Uint64("id", user.ID), zap.Int("fields", len(changes)))
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return userNotFound(err)
	}
	return s.remove(ctx, user)
}

func (s *UserService) DeleteUserByTelegramID(ctx context.Context, telegramID int64) error {
	user, err := s.userRepository.FindUserByTelegramID(ctx, telegramID)
	if err != nil {
		return userNotFound(err)
	}
	return s.remove(ctx, user)
}

func (s *UserService) remove(ctx context.Context, user *entities.User) error {
	if err := s.userRepository.DeleteUser(ctx, user.ID); err != nil {
		return userNotFound(err)
	}
	s.logger.Info("Пользователь удалён",
		zap.Uint64("id", user.ID),
		zap.Int64("id_telegram", user.TelegramID),
		zap.Bool("had_employee", user.EmployeeID.Valid),
	)
	return nil
}
