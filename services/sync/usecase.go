package sync

import (
	"context"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/finmirror/finmirror/services/sync SyncUC

// SyncUC represents the synchronization usecase interface
type SyncUC interface {
	// SynchronizeProvider runs one full sync pass for the provider, fetching
	// the requested resource types and committing the result atomically.
	SynchronizeProvider(ctx context.Context, providerID uuid.UUID, requested models.ResourceType) (*models.SyncSummary, error)

	// GetSyncRecords returns the recent sync records that gate re-fetching.
	GetSyncRecords(ctx context.Context, providerID uuid.UUID) ([]*models.SyncRecord, error)
}
