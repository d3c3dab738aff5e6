package middleware

import (
	"net/http"
	"strings"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/finmirror/finmirror/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for trigger endpoints.
// Any of the configured keys is accepted.
func ValidateAPIKey(cfg models.APIKeyConfig) echo.MiddlewareFunc {
	allowed := []string{cfg.SchedulerKey, cfg.AdminKey}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, key := range allowed {
				if key != "" && strings.EqualFold(apiKey, key) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
