package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"staff-registry/internal/repositories"
	"staff-registry/pkg/config"
	"staff-registry/pkg/database/postgresql"
	applogger "staff-registry/pkg/logger"
	"staff-registry/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDemo := flag.Bool("demo", false, "Добавить демо-пользователей и сотрудников")
	runReset := flag.Bool("reset", false, "Перед наполнением пересоздать схему (все данные будут удалены)")
	flag.Parse()

	if !*runDemo && !*runReset {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -demo")
		log.Println("  go run ./seeders/cmd/seed -reset -demo")
		log.Println("======================================================")
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	logger, err := applogger.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if err := postgresql.EnsureDatabaseExists(ctx, cfg.Postgres, logger); err != nil {
		logger.Fatal("❌ Не удалось подготовить базу данных", zap.Error(err))
	}

	schemaRepo, err := repositories.NewSchemaRepository(cfg.Postgres.DSN(), logger)
	if err != nil {
		logger.Fatal("❌ Не удалось подготовить миграции", zap.Error(err))
	}
	defer schemaRepo.Close()

	if *runReset {
		err = schemaRepo.Reset(ctx)
	} else {
		err = schemaRepo.Migrate(ctx)
	}
	if err != nil {
		logger.Fatal("❌ Ошибка подготовки схемы", zap.Error(err))
	}

	if *runDemo {
		dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("❌ Не удалось подключиться к базе данных", zap.Error(err))
		}
		defer dbPool.Close()

		if _, err := seeders.SeedDemoStaff(ctx, dbPool, logger); err != nil {
			logger.Fatal("❌ Ошибка наполнения демо-данными", zap.Error(err))
		}
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
