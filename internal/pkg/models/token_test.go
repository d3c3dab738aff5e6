package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token := &AccessToken{
		ExpiresIn: 3600,
		CreatedAt: now.Add(-30 * time.Minute),
	}
	assert.False(t, token.Expired(now))

	stale := &AccessToken{
		ExpiresIn: 3600,
		CreatedAt: now.Add(-2 * time.Hour),
	}
	assert.True(t, stale.Expired(now))

	// A token is unusable from the exact expiry instant
	boundary := &AccessToken{
		ExpiresIn: 3600,
		CreatedAt: now.Add(-time.Hour),
	}
	assert.True(t, boundary.Expired(now))
}
