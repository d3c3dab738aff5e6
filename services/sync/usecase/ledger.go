package usecase

import (
	"time"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

// FreshnessWindow is the minimum time that must elapse before a resource type
// becomes eligible for re-fetching. Applied uniformly to every resource type.
const FreshnessWindow = 5 * time.Minute

// recentRecords filters the provider's sync records down to the ones still
// inside the freshness window. Older records have no gating effect.
func recentRecords(records []*models.SyncRecord, now time.Time) []*models.SyncRecord {
	cutoff := now.Add(-FreshnessWindow)

	relevant := make([]*models.SyncRecord, 0, len(records))
	for _, r := range records {
		if r.CreatedAt.After(cutoff) {
			relevant = append(relevant, r)
		}
	}
	return relevant
}

// isFresh reports whether the account already has a record of the exact
// resource type inside the freshness window. Freshness is purely a function
// of the record set passed in.
func isFresh(records []*models.SyncRecord, accountID uuid.UUID, resource models.ResourceType, now time.Time) bool {
	cutoff := now.Add(-FreshnessWindow)
	for _, r := range records {
		if r.AccountID == accountID && r.ResourceType == resource && r.CreatedAt.After(cutoff) {
			return true
		}
	}
	return false
}

// shouldSynchronise gates a fetch: the resource must be requested (directly
// or via "all") and must not already be fresh for this account.
func shouldSynchronise(requested models.ResourceType, records []*models.SyncRecord, accountID uuid.UUID, resource models.ResourceType, now time.Time) bool {
	if !requested.Has(resource) {
		return false
	}
	return !isFresh(records, accountID, resource, now)
}
