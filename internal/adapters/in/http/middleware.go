package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinic/internal/core/ports"
	"clinic/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// adminEmailKey is the echo context key holding the authenticated admin e-mail.
const adminEmailKey = "admin_email"

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>" header
// with 401 and stores the token subject for the handlers.
func BearerAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return HTTPError{Code: http.StatusUnauthorized, Message: "missing authorization header"}
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return HTTPError{Code: http.StatusUnauthorized, Message: "invalid authorization format"}
			}

			email, err := tokens.Subject(strings.TrimSpace(parts[1]))
			if err != nil {
				return HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized: " + err.Error()}
			}

			c.Set(adminEmailKey, email)
			return next(c)
		}
	}
}

// AdminEmail returns the e-mail stored by BearerAuth, or "" on public routes.
func AdminEmail(c echo.Context) string {
	email, _ := c.Get(adminEmailKey).(string)
	return email
}

// Metrics records request count and latency by method, route template and status.
func Metrics(collector *metrics.Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			collector.RequestsTotal.WithLabelValues(method, route, status).Inc()
			collector.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// RequestLogger logs one line per request with zap.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
