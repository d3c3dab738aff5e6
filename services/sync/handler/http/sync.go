package http

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/finmirror/finmirror/internal/pkg/logger"
	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/finmirror/finmirror/internal/utils"
	"github.com/finmirror/finmirror/services/sync"
	"github.com/finmirror/finmirror/services/sync/usecase"
)

// SyncHandler exposes the synchronization endpoints.
type SyncHandler struct {
	syncUC sync.SyncUC
}

// NewSyncHandler creates a new sync handler instance
func NewSyncHandler(syncUC sync.SyncUC) *SyncHandler {
	return &SyncHandler{syncUC: syncUC}
}

// TriggerSync runs one synchronization pass for a provider. The resource set
// can be narrowed with the resources query parameter, a comma-separated list
// of resource names; omitting it syncs everything.
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid provider id")
	}

	requested, err := models.ParseResourceTypes(c.QueryParam("resources"))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	summary, err := h.syncUC.SynchronizeProvider(c.Request().Context(), providerID, requested)
	switch {
	case errors.Is(err, usecase.ErrSyncInProgress):
		return utils.ConflictResponse(c, "synchronization already in progress for this provider")
	case errors.Is(err, usecase.ErrNoAccessToken):
		return utils.BadRequestResponse(c, "provider has no access token and no authorization code")
	case errors.Is(err, sql.ErrNoRows):
		return utils.NotFoundResponse(c, "provider not found")
	case err != nil:
		logger.Error("Provider synchronization failed",
			logger.String("provider_id", providerID.String()),
			logger.Err(err))
		return utils.BadGatewayResponse(c, "synchronization failed")
	}

	return utils.SuccessResponse(c, 200, "Synchronization completed", summary)
}

// GetSyncRecords returns the provider's recent sync records.
func (h *SyncHandler) GetSyncRecords(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid provider id")
	}

	records, err := h.syncUC.GetSyncRecords(c.Request().Context(), providerID)
	if err != nil {
		logger.Error("Failed to get sync records",
			logger.String("provider_id", providerID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get sync records")
	}

	return utils.SuccessResponse(c, 200, "Sync records retrieved", records)
}
