// Файл: main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"staff-registry/internal/repositories"
	"staff-registry/internal/routes"
	"staff-registry/pkg/config"
	"staff-registry/pkg/database/postgresql"
	applogger "staff-registry/pkg/logger"
)

func main() {
	// 1. Конфиг и логгер
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	logger, err := applogger.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. База данных: создаём, если её нет, затем пул
	if err := postgresql.EnsureDatabaseExists(ctx, cfg.Postgres, logger); err != nil {
		logger.Fatal("Не удалось подготовить базу данных", zap.Error(err))
	}
	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к базе данных", zap.Error(err))
	}
	defer dbConn.Close()

	// 3. Схема
	schemaRepo, err := repositories.NewSchemaRepository(cfg.Postgres.DSN(), logger.Named("schema"))
	if err != nil {
		logger.Fatal("Не удалось подготовить миграции", zap.Error(err))
	}
	defer func() {
		if err := schemaRepo.Close(); err != nil {
			logger.Warn("Ошибка закрытия соединения миграций", zap.Error(err))
		}
	}()

	if cfg.Postgres.InitOnStart {
		logger.Warn("DB_INIT_ON_START=true: схема будет пересоздана, данные удалены")
		err = schemaRepo.Reset(ctx)
	} else {
		err = schemaRepo.Migrate(ctx)
	}
	if err != nil {
		logger.Fatal("Ошибка подготовки схемы БД", zap.Error(err))
	}

	// 4. HTTP
	e := routes.NewServer(cfg.Server, logger)
	routes.InitRouter(e, dbConn, schemaRepo, routes.NewLoggers(logger), cfg)

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("address", cfg.Server.Address()))
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Ошибка запуска сервера", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}
