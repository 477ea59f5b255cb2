package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/internal/repositories"
	"staff-registry/internal/services"
	"staff-registry/pkg/config"
	"staff-registry/pkg/middleware"
)

type Loggers struct {
	Main     *zap.Logger
	User     *zap.Logger
	Employee *zap.Logger
	Admin    *zap.Logger
}

// NewLoggers именованные дочерние логгеры для каждой группы маршрутов.
func NewLoggers(base *zap.Logger) *Loggers {
	return &Loggers{
		Main:     base,
		User:     base.Named("users"),
		Employee: base.Named("employees"),
		Admin:    base.Named("admin"),
	}
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, schemaRepo repositories.SchemaRepositoryInterface, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.User)
	employeeRepo := repositories.NewEmployeeRepository(dbConn, loggers.Employee)

	// --- 2. СЕРВИСЫ ---
	userService := services.NewUserService(userRepo, loggers.User)
	employeeService := services.NewEmployeeService(employeeRepo, loggers.Employee)
	adminService := services.NewAdminService(schemaRepo, dbConn, loggers.Admin)

	// --- 3. РОУТЕРЫ ---
	adminMW := middleware.NewAdminMiddleware(cfg.Admin, loggers.Admin)

	runUserRouter(e.Group("/users"), userService, loggers.User)
	runEmployeeRouter(e.Group("/employees"), employeeService, loggers.Employee)
	runAdminRouter(e, adminService, adminMW, loggers.Admin)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
