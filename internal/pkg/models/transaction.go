package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents one bank transaction. ExternalID is the
// provider-supplied transaction id, unique within the provider; re-fetching
// the same id must never create a second row.
type Transaction struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	ProviderID  uuid.UUID       `db:"provider_id" json:"provider_id"`
	AccountID   uuid.UUID       `db:"account_id" json:"account_id"`
	ExternalID  string          `db:"external_id" json:"external_id"`
	Description string          `db:"description" json:"description"`
	Type        string          `db:"type" json:"type"`
	Category    string          `db:"category" json:"category"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Currency    string          `db:"currency" json:"currency"`
	OccurredAt  time.Time       `db:"occurred_at" json:"occurred_at"`
	Pending     bool            `db:"pending" json:"pending"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`

	Classifications []*Classification `db:"-" json:"classifications,omitempty"`
}

// Classification is a tag attached to a transaction. Custom distinguishes
// user-created tags from ones derived from the remote side.
type Classification struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TransactionID uuid.UUID `db:"transaction_id" json:"transaction_id"`
	Name          string    `db:"name" json:"name"`
	Custom        bool      `db:"custom" json:"custom"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
