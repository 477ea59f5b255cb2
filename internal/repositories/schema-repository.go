package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"staff-registry/pkg/database/migrations"
)

// SchemaRepositoryInterface управляет схемой базы через goose-миграции.
type SchemaRepositoryInterface interface {
	// Reset удаляет все таблицы схемы и создаёт их заново. Разрушительная операция:
	// вызывающий отвечает за то, чтобы в это время не шли другие запросы.
	Reset(ctx context.Context) error
	Migrate(ctx context.Context) error
	Version(ctx context.Context) (int64, error)
	Close() error
}

type SchemaRepository struct {
	db       *sql.DB
	provider *goose.Provider
	logger   *zap.Logger
}

// NewSchemaRepository открывает отдельное database/sql-соединение (драйвер pgx/stdlib),
// которое нужно goose.
func NewSchemaRepository(dsn string, logger *zap.Logger) (SchemaRepositoryInterface, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть соединение для миграций: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("не удалось создать goose provider: %w", err)
	}
	return &SchemaRepository{db: db, provider: provider, logger: logger}, nil
}

func (r *SchemaRepository) Reset(ctx context.Context) error {
	down, err := r.provider.DownTo(ctx, 0)
	if err != nil {
		return fmt.Errorf("откат миграций: %w", err)
	}
	r.logger.Info("Миграции откатены", zap.Int("count", len(down)))

	// Таблицы могли остаться, если журнал goose разошёлся со схемой.
	for _, table := range migrations.KnownTables {
		query := "DROP TABLE IF EXISTS " + pgx.Identifier{table}.Sanitize() + " CASCADE"
		if _, err := r.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("удаление таблицы %s: %w", table, err)
		}
	}

	return r.Migrate(ctx)
}

func (r *SchemaRepository) Migrate(ctx context.Context) error {
	results, err := r.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("применение миграций: %w", err)
	}
	for _, res := range results {
		r.logger.Info("Миграция применена",
			zap.Int64("version", res.Source.Version),
			zap.Duration("duration", res.Duration),
		)
	}
	return nil
}

func (r *SchemaRepository) Version(ctx context.Context) (int64, error) {
	version, err := r.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("не удалось получить версию схемы: %w", err)
	}
	return version, nil
}

func (r *SchemaRepository) Close() error {
	return r.db.Close()
}
