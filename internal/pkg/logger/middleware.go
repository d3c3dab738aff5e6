package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates middleware for Echo framework using the Zap logger
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get request ID
			requestID := c.Response().Header().Get("X-Request-ID")

			fields := []Field{
				String("method", method),
				String("path", path),
				String("client_ip", clientIP),
				String("request_id", requestID),
				Int("status", statusCode),
				Duration("latency", latency),
			}

			if err != nil {
				fields = append(fields, Err(err))
				logger.Error("HTTP request", fields...)
				return err
			}

			if statusCode >= 500 {
				logger.Error("HTTP request", fields...)
			} else if statusCode >= 400 {
				logger.Warn("HTTP request", fields...)
			} else {
				logger.Info("HTTP request", fields...)
			}

			return nil
		}
	}
}
