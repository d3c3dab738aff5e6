package sync

import (
	"context"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/finmirror/finmirror/services/sync SyncRepo,SyncLocker

// SyncRepo defines the interface for the sync engine's persistence boundary.
// Sensitive fields are encrypted on write and decrypted on read inside the
// implementation; callers only ever see plaintext values.
type SyncRepo interface {
	// GetProviderGraph loads the provider with everything it owns plus the
	// recent sync records and the latest access token.
	GetProviderGraph(ctx context.Context, providerID uuid.UUID) (*models.ProviderGraph, error)

	// SaveAccessToken persists a freshly exchanged token row immediately, so
	// a consumed refresh token is never lost to a later pass failure.
	SaveAccessToken(ctx context.Context, token *models.AccessToken) error

	// CommitSyncBatch writes the whole staged batch in a single transaction:
	// accounts, then balances, standing orders, direct debits, transactions
	// with their classifications, and finally the new sync records.
	CommitSyncBatch(ctx context.Context, batch *models.SyncBatch) error

	// GetSyncRecords returns sync records for the provider created after the
	// given instant.
	GetSyncRecords(ctx context.Context, providerID uuid.UUID, since time.Time) ([]*models.SyncRecord, error)
}

// SyncLocker guards against overlapping passes for the same provider.
type SyncLocker interface {
	AcquireSyncLock(ctx context.Context, providerID uuid.UUID) (bool, error)
	ReleaseSyncLock(ctx context.Context, providerID uuid.UUID) error
}
