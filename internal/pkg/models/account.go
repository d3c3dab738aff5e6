package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents one bank account under a provider. ExternalID is the
// provider-supplied account identifier and is the natural key: it never
// changes across sync passes.
type Account struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProviderID uuid.UUID `db:"provider_id" json:"provider_id"`
	ExternalID string    `db:"external_id" json:"external_id"`
	Name       string    `db:"name" json:"name"`
	Type       string    `db:"type" json:"type"`
	Currency   string    `db:"currency" json:"currency"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// AccountBalance is the single balance row owned by an account. Updates
// overwrite in place; there is never more than one row per account.
type AccountBalance struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	AccountID uuid.UUID       `db:"account_id" json:"account_id"`
	Currency  string          `db:"currency" json:"currency"`
	Available decimal.Decimal `db:"available" json:"available"`
	Current   decimal.Decimal `db:"current" json:"current"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
