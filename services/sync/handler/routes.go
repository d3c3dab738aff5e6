package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/finmirror/finmirror/internal/pkg/middleware"
	"github.com/finmirror/finmirror/internal/pkg/models"
	syncsvc "github.com/finmirror/finmirror/services/sync"
	handlerhttp "github.com/finmirror/finmirror/services/sync/handler/http"
)

// RegisterRoutes wires the sync endpoints onto the echo instance. Triggering
// a pass is restricted to the scheduler and admin API keys; reading records
// is not.
func RegisterRoutes(e *echo.Echo, syncUC syncsvc.SyncUC, apiKeyCfg models.APIKeyConfig) {
	h := handlerhttp.NewSyncHandler(syncUC)

	providers := e.Group("/providers")
	providers.POST("/:id/sync", h.TriggerSync, middleware.ValidateAPIKey(apiKeyCfg))
	providers.GET("/:id/sync/records", h.GetSyncRecords)
}
