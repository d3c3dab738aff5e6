package sync

import (
	"context"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/finmirror/finmirror/services/sync BankGW,EventGW

// BankGW defines the remote open banking client consumed by the orchestrator.
// Any call may fail with a transport or non-success-status error; except for
// the token operations, such failures are absorbed per resource by the caller.
type BankGW interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*models.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenResponse, error)

	ListAccounts(ctx context.Context, token string) ([]*models.RemoteAccount, error)
	GetBalance(ctx context.Context, accountID, token string) ([]*models.RemoteBalance, error)
	GetTransactions(ctx context.Context, accountID, token string, since *time.Time) ([]*models.RemoteTransaction, error)
	GetPendingTransactions(ctx context.Context, accountID, token string, since *time.Time) ([]*models.RemoteTransaction, error)
	GetStandingOrders(ctx context.Context, accountID, token string) ([]*models.RemoteStandingOrder, error)
	GetDirectDebits(ctx context.Context, accountID, token string) ([]*models.RemoteDirectDebit, error)
}

// EventGW publishes sync lifecycle events. Publishing is fire-and-forget:
// a failed publish never fails the pass.
type EventGW interface {
	PublishSyncEvent(ctx context.Context, event *models.SyncEvent) error
}
