// Файл: pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	AdminName       string        `mapstructure:"admin_name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	InitOnStart     bool          `mapstructure:"init_on_start"`
}

type LoggerConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	Output       string `mapstructure:"output"`
	EnableColors bool   `mapstructure:"enable_colors"`
	FilePath     string `mapstructure:"file_path"`
	MaxSize      int    `mapstructure:"max_size"`
	MaxBackups   int    `mapstructure:"max_backups"`
	MaxAge       int    `mapstructure:"max_age"`
	Compress     bool   `mapstructure:"compress"`
}

// AdminConfig управляет доступом к разрушающим административным маршрутам.
type AdminConfig struct {
	InitDBEnabled bool   `mapstructure:"init_db_enabled"`
	Token         string `mapstructure:"token"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"db"`
	Logger   LoggerConfig   `mapstructure:"log"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

// Ключи viper. Переменная окружения получается заменой "." на "_" в верхнем регистре:
// db.host -> DB_HOST, admin.init_db_enabled -> ADMIN_INIT_DB_ENABLED.
var defaults = map[string]interface{}{
	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": 15 * time.Second,
	"server.cors_origins":     []string{},

	"db.host":               "localhost",
	"db.port":               5432,
	"db.user":               "postgres",
	"db.password":           "postgres",
	"db.name":               "staff-registry",
	"db.admin_name":         "postgres",
	"db.sslmode":            "disable",
	"db.max_conns":          10,
	"db.min_conns":          2,
	"db.conn_max_lifetime":  time.Hour,
	"db.conn_max_idle_time": 15 * time.Minute,
	"db.init_on_start":      false,

	"log.level":         "info",
	"log.format":        "console",
	"log.output":        "stdout",
	"log.enable_colors": true,
	"log.file_path":     "./logs/app.log",
	"log.max_size":      100,
	"log.max_backups":   5,
	"log.max_age":       30,
	"log.compress":      false,

	"admin.init_db_enabled": false,
	"admin.token":           "",
}

// New загружает конфигурацию: .env -> config.yaml (если есть) -> переменные окружения.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}
	return Load(".")
}

// Load читает конфигурацию без загрузки .env; удобно в тестах.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("не удалось прочитать config.yaml: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфигурацию: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("конфигурация не прошла проверку: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port вне диапазона: %d", c.Server.Port))
	}
	if c.Postgres.Port <= 0 || c.Postgres.Port > 65535 {
		errs = append(errs, fmt.Errorf("db.port вне диапазона: %d", c.Postgres.Port))
	}
	if strings.TrimSpace(c.Postgres.Name) == "" {
		errs = append(errs, errors.New("db.name не задан"))
	}
	if strings.TrimSpace(c.Postgres.AdminName) == "" {
		errs = append(errs, errors.New("db.admin_name не задан"))
	}
	if c.Postgres.MinConns > c.Postgres.MaxConns {
		errs = append(errs, fmt.Errorf("db.min_conns (%d) больше db.max_conns (%d)", c.Postgres.MinConns, c.Postgres.MaxConns))
	}
	switch c.Logger.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		errs = append(errs, fmt.Errorf("неизвестный log.level: %q", c.Logger.Level))
	}
	return errors.Join(errs...)
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DSN строка подключения к базе приложения.
func (p PostgresConfig) DSN() string {
	return p.dsn(p.Name)
}

// AdminDSN строка подключения к служебной базе, в которой создаётся база приложения.
func (p PostgresConfig) AdminDSN() string {
	return p.dsn(p.AdminName)
}

func (p PostgresConfig) dsn(database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}
