package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/finmirror/finmirror/services/sync/mocks"
)

type syncFixture struct {
	uc      *SyncUC
	repo    *mocks.MockSyncRepo
	locker  *mocks.MockSyncLocker
	bankGW  *mocks.MockBankGW
	eventGW *mocks.MockEventGW
	now     time.Time
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		repo:    mocks.NewMockSyncRepo(ctrl),
		locker:  mocks.NewMockSyncLocker(ctrl),
		bankGW:  mocks.NewMockBankGW(ctrl),
		eventGW: mocks.NewMockEventGW(ctrl),
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	cfg := &models.Config{}
	cfg.Sync.CommitRetries = 1

	f.uc = NewSyncUC(f.repo, f.locker, f.bankGW, f.eventGW, cfg)
	f.uc.now = func() time.Time { return f.now }
	return f
}

func (f *syncFixture) expectLock(providerID uuid.UUID) {
	f.locker.EXPECT().AcquireSyncLock(gomock.Any(), providerID).Return(true, nil)
	f.locker.EXPECT().ReleaseSyncLock(gomock.Any(), providerID).Return(nil)
}

func validToken(providerID uuid.UUID, now time.Time) *models.AccessToken {
	return &models.AccessToken{
		ID:         uuid.New(),
		ProviderID: providerID,
		Token:      "valid-token",
		ExpiresIn:  3600,
		CreatedAt:  now.Add(-time.Minute),
	}
}

func TestSynchronizeProvider_FirstPass(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()

	graph := &models.ProviderGraph{
		Provider: &models.Provider{ID: providerID, UserID: uuid.New(), AuthorizationCode: "auth-code"},
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)

	f.bankGW.EXPECT().ExchangeCodeForToken(gomock.Any(), "auth-code").
		Return(&models.TokenResponse{AccessToken: "tok", RefreshToken: "ref", ExpiresIn: 3600}, nil)
	f.repo.EXPECT().SaveAccessToken(gomock.Any(), gomock.Any()).Return(nil)

	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "tok").Return([]*models.RemoteAccount{
		{ExternalID: "acct-1", Type: "TRANSACTION", DisplayName: "Current Account", Currency: "GBP"},
	}, nil)
	f.bankGW.EXPECT().GetBalance(gomock.Any(), "acct-1", "tok").Return([]*models.RemoteBalance{
		{Currency: "GBP", Available: decimal.NewFromInt(100), Current: decimal.NewFromInt(90)},
	}, nil)
	f.bankGW.EXPECT().GetTransactions(gomock.Any(), "acct-1", "tok", nil).Return([]*models.RemoteTransaction{
		{ExternalID: "tx-1", Description: "SHOP", Amount: decimal.NewFromInt(-5), Currency: "GBP", OccurredAt: f.now},
		{ExternalID: "tx-2", Description: "SALARY", Amount: decimal.NewFromInt(2000), Currency: "GBP", OccurredAt: f.now},
	}, nil)
	f.bankGW.EXPECT().GetPendingTransactions(gomock.Any(), "acct-1", "tok", nil).Return([]*models.RemoteTransaction{}, nil)
	f.bankGW.EXPECT().GetStandingOrders(gomock.Any(), "acct-1", "tok").Return([]*models.RemoteStandingOrder{}, nil)
	f.bankGW.EXPECT().GetDirectDebits(gomock.Any(), "acct-1", "tok").Return([]*models.RemoteDirectDebit{}, nil)

	var committed *models.SyncBatch
	f.repo.EXPECT().CommitSyncBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.SyncBatch) error {
			committed = batch
			return nil
		})

	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.AccountsSeen)
	assert.Equal(t, 1, summary.AccountsCreated)
	assert.Equal(t, 1, summary.Balances)
	assert.Equal(t, 2, summary.Transactions)
	assert.Equal(t, 0, summary.FetchesFailed)

	require.NotNil(t, committed)
	assert.Len(t, committed.Accounts, 1)
	assert.Len(t, committed.Balances, 1)
	assert.Len(t, committed.Transactions, 2)
	assert.Empty(t, committed.StandingOrders)
	assert.Empty(t, committed.DirectDebits)

	// Empty successful fetches leave no record: only account, balance and
	// booked transactions were actually synchronized
	require.Len(t, committed.SyncRecords, 3)
	var recorded models.ResourceType
	for _, r := range committed.SyncRecords {
		recorded |= r.ResourceType
	}
	assert.Equal(t, models.ResourceAccount|models.ResourceBalance|models.ResourceTransactions, recorded)
}

func TestSynchronizeProvider_FreshResourcesAreSkipped(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()
	accountID := uuid.New()

	account := &models.Account{ID: accountID, ProviderID: providerID, ExternalID: "acct-1"}

	// Every resource type was synchronized two minutes ago
	var records []*models.SyncRecord
	for _, resource := range append([]models.ResourceType{models.ResourceAccount}, models.SubResources...) {
		records = append(records, &models.SyncRecord{
			AccountID:    accountID,
			ProviderID:   providerID,
			ResourceType: resource,
			CreatedAt:    f.now.Add(-2 * time.Minute),
		})
	}

	graph := &models.ProviderGraph{
		Provider:    &models.Provider{ID: providerID, UserID: uuid.New()},
		Accounts:    []*models.Account{account},
		SyncRecords: records,
		LatestToken: validToken(providerID, f.now),
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "valid-token").Return([]*models.RemoteAccount{
		{ExternalID: "acct-1", Type: "TRANSACTION", DisplayName: "Current Account", Currency: "GBP"},
	}, nil)

	// No resource fetches, no commit: everything is fresh
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.AccountsCreated)
	assert.Equal(t, 0, summary.AccountsUpdated)
	assert.Equal(t, 0, summary.RecordsWritten)
	assert.Equal(t, 6, summary.FetchesSkipped)
}

func TestSynchronizeProvider_StaleBalanceIsRefetched(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()
	accountID := uuid.New()

	account := &models.Account{ID: accountID, ProviderID: providerID, ExternalID: "acct-1"}
	balance := &models.AccountBalance{ID: uuid.New(), AccountID: accountID, Currency: "GBP",
		Available: decimal.NewFromInt(10), Current: decimal.NewFromInt(10)}

	graph := &models.ProviderGraph{
		Provider: &models.Provider{ID: providerID, UserID: uuid.New()},
		Accounts: []*models.Account{account},
		Balances: []*models.AccountBalance{balance},
		SyncRecords: []*models.SyncRecord{
			// Balance record is six minutes old, outside the window
			{AccountID: accountID, ProviderID: providerID, ResourceType: models.ResourceBalance, CreatedAt: f.now.Add(-6 * time.Minute)},
		},
		LatestToken: validToken(providerID, f.now),
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "valid-token").Return([]*models.RemoteAccount{
		{ExternalID: "acct-1", Type: "TRANSACTION", DisplayName: "Current Account", Currency: "GBP"},
	}, nil)
	f.bankGW.EXPECT().GetBalance(gomock.Any(), "acct-1", "valid-token").Return([]*models.RemoteBalance{
		{Currency: "GBP", Available: decimal.NewFromInt(80), Current: decimal.NewFromInt(75)},
	}, nil)

	var committed *models.SyncBatch
	f.repo.EXPECT().CommitSyncBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.SyncBatch) error {
			committed = batch
			return nil
		})
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceBalance)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Balances)
	require.NotNil(t, committed)
	require.Len(t, committed.Balances, 1)
	assert.Equal(t, balance.ID, committed.Balances[0].ID)
	assert.True(t, committed.Balances[0].Available.Equal(decimal.NewFromInt(80)))
}

func TestSynchronizeProvider_FailedFetchIsIsolated(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()
	accountID := uuid.New()

	account := &models.Account{ID: accountID, ProviderID: providerID, ExternalID: "acct-1"}
	graph := &models.ProviderGraph{
		Provider:    &models.Provider{ID: providerID, UserID: uuid.New()},
		Accounts:    []*models.Account{account},
		LatestToken: validToken(providerID, f.now),
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "valid-token").Return([]*models.RemoteAccount{
		{ExternalID: "acct-1", Type: "TRANSACTION", DisplayName: "Current Account", Currency: "GBP"},
	}, nil)

	f.bankGW.EXPECT().GetBalance(gomock.Any(), "acct-1", "valid-token").
		Return(nil, errors.New("upstream 500"))
	f.bankGW.EXPECT().GetTransactions(gomock.Any(), "acct-1", "valid-token", nil).Return([]*models.RemoteTransaction{
		{ExternalID: "tx-1", Description: "SHOP", Amount: decimal.NewFromInt(-5), Currency: "GBP", OccurredAt: f.now},
	}, nil)

	var committed *models.SyncBatch
	f.repo.EXPECT().CommitSyncBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.SyncBatch) error {
			committed = batch
			return nil
		})
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	requested := models.ResourceBalance | models.ResourceTransactions
	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, requested)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FetchesFailed)
	assert.Equal(t, 1, summary.Transactions)
	assert.Equal(t, 0, summary.Balances)

	// The failed balance fetch leaves no record, so the next pass retries it
	require.NotNil(t, committed)
	assert.Empty(t, committed.Balances)
	require.Len(t, committed.SyncRecords, 1)
	assert.Equal(t, models.ResourceTransactions, committed.SyncRecords[0].ResourceType)
}

func TestSynchronizeProvider_LockContention(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()

	f.locker.EXPECT().AcquireSyncLock(gomock.Any(), providerID).Return(false, nil)

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestSynchronizeProvider_ExpiredTokenIsRefreshed(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()

	expired := &models.AccessToken{
		ID:           uuid.New(),
		ProviderID:   providerID,
		Token:        "stale-token",
		RefreshToken: "refresh-me",
		ExpiresIn:    3600,
		CreatedAt:    f.now.Add(-2 * time.Hour),
	}

	graph := &models.ProviderGraph{
		Provider:    &models.Provider{ID: providerID, UserID: uuid.New()},
		LatestToken: expired,
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)

	f.bankGW.EXPECT().RefreshToken(gomock.Any(), "refresh-me").
		Return(&models.TokenResponse{AccessToken: "fresh-token", RefreshToken: "next-refresh", ExpiresIn: 3600}, nil)
	f.repo.EXPECT().SaveAccessToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *models.AccessToken) error {
			assert.Equal(t, "fresh-token", token.Token)
			assert.Equal(t, providerID, token.ProviderID)
			return nil
		})

	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "fresh-token").Return([]*models.RemoteAccount{}, nil)
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.AccountsSeen)
}

func TestSynchronizeProvider_RefreshFailureAbortsPass(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()

	expired := &models.AccessToken{
		ID:           uuid.New(),
		ProviderID:   providerID,
		Token:        "stale-token",
		RefreshToken: "refresh-me",
		ExpiresIn:    60,
		CreatedAt:    f.now.Add(-time.Hour),
	}

	graph := &models.ProviderGraph{
		Provider:    &models.Provider{ID: providerID, UserID: uuid.New()},
		LatestToken: expired,
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.bankGW.EXPECT().RefreshToken(gomock.Any(), "refresh-me").
		Return(nil, errors.New("invalid_grant"))

	var published *models.SyncEvent
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SyncEvent) error {
			published = event
			return nil
		})

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	assert.Nil(t, summary)
	require.Error(t, err)

	require.NotNil(t, published)
	assert.Equal(t, "failed", published.Status)
	assert.Contains(t, published.Error, "invalid_grant")
}

func TestSynchronizeProvider_NoTokenNoCode(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()

	graph := &models.ProviderGraph{
		Provider: &models.Provider{ID: providerID, UserID: uuid.New()},
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	assert.ErrorIs(t, err, ErrNoAccessToken)
}

func TestSynchronizeProvider_PendingFlagFollowsEndpoint(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()
	accountID := uuid.New()

	account := &models.Account{ID: accountID, ProviderID: providerID, ExternalID: "acct-1"}
	graph := &models.ProviderGraph{
		Provider:    &models.Provider{ID: providerID, UserID: uuid.New()},
		Accounts:    []*models.Account{account},
		LatestToken: validToken(providerID, f.now),
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "valid-token").Return([]*models.RemoteAccount{
		{ExternalID: "acct-1", Type: "TRANSACTION", DisplayName: "Current Account", Currency: "GBP"},
	}, nil)
	f.bankGW.EXPECT().GetTransactions(gomock.Any(), "acct-1", "valid-token", nil).Return([]*models.RemoteTransaction{
		{ExternalID: "tx-booked", Description: "BOOKED", Amount: decimal.NewFromInt(-1), Currency: "GBP", OccurredAt: f.now},
	}, nil)
	f.bankGW.EXPECT().GetPendingTransactions(gomock.Any(), "acct-1", "valid-token", nil).Return([]*models.RemoteTransaction{
		{ExternalID: "tx-pending", Description: "PENDING", Amount: decimal.NewFromInt(-2), Currency: "GBP", OccurredAt: f.now},
	}, nil)

	var committed *models.SyncBatch
	f.repo.EXPECT().CommitSyncBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.SyncBatch) error {
			committed = batch
			return nil
		})
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).Return(nil)

	requested := models.ResourceTransactions | models.ResourcePendingTransactions
	_, err := f.uc.SynchronizeProvider(context.Background(), providerID, requested)
	require.NoError(t, err)

	require.NotNil(t, committed)
	require.Len(t, committed.Transactions, 2)

	byID := map[string]bool{}
	for _, txn := range committed.Transactions {
		byID[txn.ExternalID] = txn.Pending
	}
	assert.False(t, byID["tx-booked"])
	assert.True(t, byID["tx-pending"])
}

func TestSynchronizeProvider_CommitFailurePublishesFailedEvent(t *testing.T) {
	f := newSyncFixture(t)
	providerID := uuid.New()

	graph := &models.ProviderGraph{
		Provider:    &models.Provider{ID: providerID, UserID: uuid.New()},
		LatestToken: validToken(providerID, f.now),
	}

	f.expectLock(providerID)
	f.repo.EXPECT().GetProviderGraph(gomock.Any(), providerID).Return(graph, nil)
	f.bankGW.EXPECT().ListAccounts(gomock.Any(), "valid-token").Return([]*models.RemoteAccount{
		{ExternalID: "acct-1", Type: "TRANSACTION", DisplayName: "Current Account", Currency: "GBP"},
	}, nil)
	f.bankGW.EXPECT().GetBalance(gomock.Any(), "acct-1", "valid-token").Return([]*models.RemoteBalance{
		{Currency: "GBP", Available: decimal.NewFromInt(1), Current: decimal.NewFromInt(1)},
	}, nil)
	f.bankGW.EXPECT().GetTransactions(gomock.Any(), "acct-1", "valid-token", nil).Return([]*models.RemoteTransaction{}, nil)
	f.bankGW.EXPECT().GetPendingTransactions(gomock.Any(), "acct-1", "valid-token", nil).Return([]*models.RemoteTransaction{}, nil)
	f.bankGW.EXPECT().GetStandingOrders(gomock.Any(), "acct-1", "valid-token").Return([]*models.RemoteStandingOrder{}, nil)
	f.bankGW.EXPECT().GetDirectDebits(gomock.Any(), "acct-1", "valid-token").Return([]*models.RemoteDirectDebit{}, nil)

	// Constraint violations are not transient, so the commit is not retried
	f.repo.EXPECT().CommitSyncBatch(gomock.Any(), gomock.Any()).
		Return(errors.New("duplicate key value violates unique constraint"))

	var published *models.SyncEvent
	f.eventGW.EXPECT().PublishSyncEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SyncEvent) error {
			published = event
			return nil
		})

	summary, err := f.uc.SynchronizeProvider(context.Background(), providerID, models.ResourceAll)
	assert.Nil(t, summary)
	require.Error(t, err)
	require.NotNil(t, published)
	assert.Equal(t, "failed", published.Status)
}
