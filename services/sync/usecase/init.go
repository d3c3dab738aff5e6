package usecase

import (
	"errors"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/logger"
	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/finmirror/finmirror/internal/pkg/retry"
	"github.com/finmirror/finmirror/services/sync"
)

var (
	// ErrSyncInProgress is returned when another pass already holds the
	// provider's sync lock.
	ErrSyncInProgress = errors.New("synchronization already in progress for provider")

	// ErrNoAccessToken is returned when a provider has neither a token nor an
	// authorization code to exchange.
	ErrNoAccessToken = errors.New("no access token available for provider")
)

// SyncUC implements the sync usecase
type SyncUC struct {
	cfg      *models.Config
	syncRepo sync.SyncRepo
	locker   sync.SyncLocker
	bankGW   sync.BankGW
	eventGW  sync.EventGW
	retrier  *retry.Retrier

	// now is injectable for tests
	now func() time.Time
}

// NewSyncUC creates a new sync usecase instance
func NewSyncUC(
	syncRepo sync.SyncRepo,
	locker sync.SyncLocker,
	bankGW sync.BankGW,
	eventGW sync.EventGW,
	cfg *models.Config,
) *SyncUC {
	retryCfg := retry.DefaultConfig()
	if cfg.Sync.CommitRetries > 0 {
		retryCfg.MaxRetries = cfg.Sync.CommitRetries
	}
	retryCfg.RetryableFunc = retry.TransientRetryableFunc()

	return &SyncUC{
		cfg:      cfg,
		syncRepo: syncRepo,
		locker:   locker,
		bankGW:   bankGW,
		eventGW:  eventGW,
		retrier:  retry.New(retryCfg, logger.GetGlobalLogger()),
		now:      time.Now,
	}
}
