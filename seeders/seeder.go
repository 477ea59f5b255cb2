package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"staff-registry/internal/repositories"
	apperrors "staff-registry/pkg/errors"
)

// SeedDemoStaff добавляет демо-пользователей и сотрудников. Уже существующие
// (по id_telegram) пропускаются, так что сидер можно запускать повторно.
func SeedDemoStaff(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) (int, error) {
	logger.Info("▶️  Запуск наполнения демо-данными...")
	created := 0

	for _, person := range demoStaff {
		err := repositories.WithTx(ctx, db, func(tx pgx.Tx) error {
			users := repositories.NewUserRepository(tx, logger)
			employees := repositories.NewEmployeeRepository(tx, logger)

			_, err := users.FindUserByTelegramID(ctx, person.User.TelegramID)
			if err == nil {
				logger.Info("Пользователь уже существует, пропускаем", zap.Int64("id_telegram", person.User.TelegramID))
				return nil
			}
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}

			if _, err := users.CreateUser(ctx, person.User); err != nil {
				return fmt.Errorf("пользователь %d: %w", person.User.TelegramID, err)
			}
			if person.Employee != nil {
				if _, err := employees.CreateEmployee(ctx, *person.Employee); err != nil {
					return fmt.Errorf("сотрудник %d: %w", person.Employee.TelegramID, err)
				}
			}
			created++
			return nil
		})
		if err != nil {
			return created, err
		}
	}

	logger.Info("✅ Наполнение демо-данными завершено", zap.Int("created", created))
	return created, nil
}
