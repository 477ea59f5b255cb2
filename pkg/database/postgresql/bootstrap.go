package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"staff-registry/pkg/config"
)

// SQLSTATE duplicate_database: базу успел создать кто-то другой.
const duplicateDatabase = "42P04"

// EnsureDatabaseExists подключается к служебной базе (cfg.AdminName), проверяет наличие базы
// приложения и создаёт её, если её нет. Повторный вызов ничего не меняет.
// Ошибки подключения и прав не повторяются: вызывающий считает их фатальными.
func EnsureDatabaseExists(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) error {
	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := pgx.Connect(connCtx, cfg.AdminDSN())
	if err != nil {
		return fmt.Errorf("не удалось подключиться к служебной базе %q: %w", cfg.AdminName, err)
	}
	defer func() {
		if closeErr := conn.Close(context.Background()); closeErr != nil {
			logger.Warn("Ошибка закрытия служебного соединения", zap.Error(closeErr))
		}
	}()

	exists, err := databaseExists(ctx, conn, cfg.Name)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("База данных уже существует", zap.String("database", cfg.Name))
		return nil
	}

	// CREATE DATABASE не принимает параметры, имя экранируется как идентификатор.
	query := "CREATE DATABASE " + pgx.Identifier{cfg.Name}.Sanitize()
	if _, err := conn.Exec(ctx, query); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == duplicateDatabase {
			logger.Info("База данных создана параллельно другим процессом", zap.String("database", cfg.Name))
			return nil
		}
		return fmt.Errorf("не удалось создать базу %q: %w", cfg.Name, err)
	}

	logger.Info("База данных создана", zap.String("database", cfg.Name))
	return nil
}

func databaseExists(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("не удалось проверить наличие базы %q: %w", name, err)
	}
	return exists, nil
}
