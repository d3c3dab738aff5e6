package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/finmirror/finmirror/services/sync/mocks"
	"github.com/finmirror/finmirror/services/sync/usecase"
)

func newSyncContext(method, target, providerID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(providerID)
	return c, rec
}

func TestTriggerSync(t *testing.T) {
	providerID := uuid.New()

	t.Run("success returns summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		summary := &models.SyncSummary{ProviderID: providerID, AccountsSeen: 2}
		syncUC.EXPECT().
			SynchronizeProvider(gomock.Any(), providerID, models.ResourceAll).
			Return(summary, nil)

		c, rec := newSyncContext(http.MethodPost, "/providers/"+providerID.String()+"/sync", providerID.String())
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"accounts_seen":2`)
	})

	t.Run("resources query narrows the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		syncUC.EXPECT().
			SynchronizeProvider(gomock.Any(), providerID, models.ResourceBalance|models.ResourceTransactions).
			Return(&models.SyncSummary{ProviderID: providerID}, nil)

		target := "/providers/" + providerID.String() + "/sync?resources=balance,transactions"
		c, rec := newSyncContext(http.MethodPost, target, providerID.String())
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewSyncHandler(mocks.NewMockSyncUC(ctrl))

		c, rec := newSyncContext(http.MethodPost, "/providers/nope/sync", "nope")
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown resource name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewSyncHandler(mocks.NewMockSyncUC(ctrl))

		target := "/providers/" + providerID.String() + "/sync?resources=loans"
		c, rec := newSyncContext(http.MethodPost, target, providerID.String())
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("concurrent pass returns conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		syncUC.EXPECT().
			SynchronizeProvider(gomock.Any(), providerID, models.ResourceAll).
			Return(nil, usecase.ErrSyncInProgress)

		c, rec := newSyncContext(http.MethodPost, "/providers/"+providerID.String()+"/sync", providerID.String())
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing credentials returns bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		syncUC.EXPECT().
			SynchronizeProvider(gomock.Any(), providerID, models.ResourceAll).
			Return(nil, usecase.ErrNoAccessToken)

		c, rec := newSyncContext(http.MethodPost, "/providers/"+providerID.String()+"/sync", providerID.String())
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream failure returns bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		syncUC.EXPECT().
			SynchronizeProvider(gomock.Any(), providerID, models.ResourceAll).
			Return(nil, assert.AnError)

		c, rec := newSyncContext(http.MethodPost, "/providers/"+providerID.String()+"/sync", providerID.String())
		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestGetSyncRecords(t *testing.T) {
	providerID := uuid.New()

	t.Run("returns records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		records := []*models.SyncRecord{
			{ID: uuid.New(), ProviderID: providerID, ResourceType: models.ResourceBalance},
		}
		syncUC.EXPECT().GetSyncRecords(gomock.Any(), providerID).Return(records, nil)

		c, rec := newSyncContext(http.MethodGet, "/providers/"+providerID.String()+"/sync/records", providerID.String())
		require.NoError(t, h.GetSyncRecords(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), providerID.String())
	})

	t.Run("repository failure returns internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncUC := mocks.NewMockSyncUC(ctrl)
		h := NewSyncHandler(syncUC)

		syncUC.EXPECT().GetSyncRecords(gomock.Any(), providerID).Return(nil, assert.AnError)

		c, rec := newSyncContext(http.MethodGet, "/providers/"+providerID.String()+"/sync/records", providerID.String())
		require.NoError(t, h.GetSyncRecords(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
