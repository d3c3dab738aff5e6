package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncRecord is an append-only log entry proving that a resource type was
// successfully synchronized for an account at a point in time. Records are
// never mutated; freshness gating only ever reads the most recent set.
type SyncRecord struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	ProviderID   uuid.UUID    `db:"provider_id" json:"provider_id"`
	AccountID    uuid.UUID    `db:"account_id" json:"account_id"`
	ResourceType ResourceType `db:"resource_type" json:"resource_type"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// SyncBatch is the staged output of one sync pass, committed in a single
// database transaction. Slice order within a batch is the commit order.
type SyncBatch struct {
	ProviderID     uuid.UUID
	Accounts       []*Account
	Balances       []*AccountBalance
	StandingOrders []*StandingOrder
	DirectDebits   []*DirectDebit
	Transactions   []*Transaction
	SyncRecords    []*SyncRecord
}

// IsEmpty reports whether the batch stages nothing at all.
func (b *SyncBatch) IsEmpty() bool {
	return len(b.Accounts) == 0 && len(b.Balances) == 0 &&
		len(b.StandingOrders) == 0 && len(b.DirectDebits) == 0 &&
		len(b.Transactions) == 0 && len(b.SyncRecords) == 0
}

// SyncSummary reports what one pass did, returned to the caller and published
// on the completed event.
type SyncSummary struct {
	ProviderID      uuid.UUID    `json:"provider_id"`
	Requested       ResourceType `json:"-"`
	RequestedNames  string       `json:"requested"`
	AccountsSeen    int          `json:"accounts_seen"`
	AccountsCreated int          `json:"accounts_created"`
	AccountsUpdated int          `json:"accounts_updated"`
	Balances        int          `json:"balances"`
	Transactions    int          `json:"transactions"`
	StandingOrders  int          `json:"standing_orders"`
	DirectDebits    int          `json:"direct_debits"`
	RecordsWritten  int          `json:"records_written"`
	FetchesSkipped  int          `json:"fetches_skipped"`
	FetchesFailed   int          `json:"fetches_failed"`
	Duration        string       `json:"duration"`
	StartedAt       time.Time    `json:"started_at"`
}

// SyncEvent is the message published to NSQ after a pass finishes.
type SyncEvent struct {
	ProviderID uuid.UUID    `json:"provider_id"`
	Status     string       `json:"status"`
	Summary    *SyncSummary `json:"summary,omitempty"`
	Error      string       `json:"error,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
