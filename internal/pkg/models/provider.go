package models

import (
	"time"

	"github.com/google/uuid"
)

// Provider represents one connection to an external open banking aggregator
// for a single user. The authorization code is stored encrypted and is only
// consumed once, when the first access token is exchanged.
type Provider struct {
	ID                uuid.UUID `db:"id" json:"id"`
	UserID            uuid.UUID `db:"user_id" json:"user_id"`
	Name              string    `db:"name" json:"name"`
	AuthorizationCode string    `db:"authorization_code" json:"-"`
	LogoURL           string    `db:"logo_url" json:"logo_url"`
	Scopes            []string  `db:"-" json:"scopes"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// ProviderGraph is the fully loaded state of a provider used by a sync pass:
// the provider row plus everything it owns, decrypted, and the recent sync
// records that gate re-fetching.
type ProviderGraph struct {
	Provider       *Provider
	Accounts       []*Account
	Balances       []*AccountBalance
	Transactions   []*Transaction
	StandingOrders []*StandingOrder
	DirectDebits   []*DirectDebit
	SyncRecords    []*SyncRecord
	LatestToken    *AccessToken
}

// AccountForExternalID returns the known account with the given natural key,
// or nil when the provider has never seen it.
func (g *ProviderGraph) AccountForExternalID(externalID string) *Account {
	for _, a := range g.Accounts {
		if a.ExternalID == externalID {
			return a
		}
	}
	return nil
}

// BalanceForAccount returns the single balance row owned by the account, or nil.
func (g *ProviderGraph) BalanceForAccount(accountID uuid.UUID) *AccountBalance {
	for _, b := range g.Balances {
		if b.AccountID == accountID {
			return b
		}
	}
	return nil
}
