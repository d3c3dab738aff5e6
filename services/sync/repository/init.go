package repository

import (
	"github.com/finmirror/finmirror/internal/pkg/crypto"
	"github.com/finmirror/finmirror/internal/pkg/database"
	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// SyncRepo implements the sync persistence boundary over PostgreSQL.
// Sensitive fields are encrypted on the way in and decrypted on the way out;
// nothing outside this package ever sees ciphertext.
type SyncRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	codec *crypto.Codec
}

// NewSyncRepo creates a new sync repository instance
func NewSyncRepo(cfg *models.Config, db *sqlx.DB, codec *crypto.Codec) *SyncRepo {
	return &SyncRepo{
		cfg:   cfg,
		db:    db,
		codec: codec,
	}
}

// SyncLockRepo implements the per-provider sync lock on Redis.
type SyncLockRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewSyncLockRepo creates a new sync lock repository instance
func NewSyncLockRepo(cfg *models.Config, redis *database.RedisClient) *SyncLockRepo {
	return &SyncLockRepo{
		cfg:   cfg,
		redis: redis,
	}
}
