package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is one token row for a provider. Multiple rows accumulate over
// time; the most recently created unexpired one is authoritative.
type AccessToken struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ProviderID   uuid.UUID `db:"provider_id" json:"provider_id"`
	Token        string    `db:"token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	ExpiresIn    int64     `db:"expires_in" json:"expires_in"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ExpiresAt returns the instant the token stops being usable.
func (t *AccessToken) ExpiresAt() time.Time {
	return t.CreatedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Expired reports whether the token is past its lifetime at the given instant.
func (t *AccessToken) Expired(now time.Time) bool {
	return !t.ExpiresAt().After(now)
}
