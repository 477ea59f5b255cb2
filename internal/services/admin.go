package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"staff-registry/internal/repositories"
	apperrors "staff-registry/pkg/errors"
)

const healthTimeout = 2 * time.Second

// Pinger то, что умеет *pgxpool.Pool для проверки живости.
type Pinger interface {
	Ping(ctx context.Context) error
}

type AdminServiceInterface interface {
	InitSchema(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int64, error)
	Health(ctx context.Context) error
}

type AdminService struct {
	schemaRepository repositories.SchemaRepositoryInterface
	db               Pinger
	logger           *zap.Logger
}

func NewAdminService(schemaRepository repositories.SchemaRepositoryInterface, db Pinger, logger *zap.Logger) *AdminService {
	return &AdminService{schemaRepository: schemaRepository, db: db, logger: logger}
}

// InitSchema пересоздаёт схему. Ошибка возвращается с текстом причины в details:
// администратору он нужен, чтобы понять, что сломалось.
func (s *AdminService) InitSchema(ctx context.Context) error {
	s.logger.Warn("Пересоздание схемы БД: все данные будут удалены")
	start := time.Now()

	if err := s.schemaRepository.Reset(ctx); err != nil {
		s.logger.Error("Не удалось пересоздать схему", zap.Error(err))
		return apperrors.NewHttpError(http.StatusInternalServerError, "Database initialization failed", err,
			map[string]string{"cause": err.Error()})
	}

	s.logger.Info("Схема БД пересоздана", zap.Duration("duration", time.Since(start)))
	return nil
}

func (s *AdminService) SchemaVersion(ctx context.Context) (int64, error) {
	return s.schemaRepository.Version(ctx)
}

func (s *AdminService) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		return apperrors.NewHttpError(http.StatusServiceUnavailable, "Database is unavailable", err, nil)
	}
	return nil
}
