package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/pkg/config"
	apperrors "staff-registry/pkg/errors"
	"staff-registry/pkg/utils"
)

const HeaderAdminToken = "X-Admin-Token"

type AdminMiddleware struct {
	cfg    config.AdminConfig
	logger *zap.Logger
}

func NewAdminMiddleware(cfg config.AdminConfig, logger *zap.Logger) *AdminMiddleware {
	return &AdminMiddleware{cfg: cfg, logger: logger}
}

// Guard закрывает /admin: эндпоинты должны быть явно включены, а если задан токен,
// он должен совпасть с заголовком X-Admin-Token.
func (m *AdminMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.cfg.InitDBEnabled {
			m.logger.Warn("AdminMiddleware: административные эндпоинты выключены",
				zap.String("uri", c.Request().RequestURI))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden,
				"Administrative endpoints are disabled", apperrors.ErrForbidden, nil), m.logger)
		}

		if m.cfg.Token != "" {
			got := c.Request().Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(got), []byte(m.cfg.Token)) != 1 {
				m.logger.Warn("AdminMiddleware: неверный токен администратора",
					zap.String("remote_ip", c.RealIP()))
				return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden,
					"Invalid admin token", apperrors.ErrForbidden, nil), m.logger)
			}
		}

		return next(c)
	}
}
