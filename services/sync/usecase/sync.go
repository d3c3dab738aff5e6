package usecase

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/logger"
	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

// SynchronizeProvider runs one synchronization pass for the provider. The
// pass is guarded by a per-provider lock, fetches gated-in resource types
// concurrently per account, reconciles the results against the stored state
// and commits everything in a single transaction. Sync records are only
// committed together with the data they describe, so a failed pass leaves no
// partial freshness behind.
func (u *SyncUC) SynchronizeProvider(ctx context.Context, providerID uuid.UUID, requested models.ResourceType) (*models.SyncSummary, error) {
	acquired, err := u.locker.AcquireSyncLock(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !acquired {
		return nil, ErrSyncInProgress
	}
	defer func() {
		// Release with a fresh context so cancellation does not leak the lock
		if err := u.locker.ReleaseSyncLock(context.Background(), providerID); err != nil {
			logger.Warn("Failed to release sync lock",
				logger.String("provider_id", providerID.String()),
				logger.Err(err))
		}
	}()

	summary, err := u.synchronize(ctx, providerID, requested)
	if err != nil {
		u.publishEvent(providerID, "failed", nil, err)
		return nil, err
	}

	u.publishEvent(providerID, "completed", summary, nil)
	return summary, nil
}

// GetSyncRecords returns the provider's sync records from the last day.
func (u *SyncUC) GetSyncRecords(ctx context.Context, providerID uuid.UUID) ([]*models.SyncRecord, error) {
	return u.syncRepo.GetSyncRecords(ctx, providerID, u.now().Add(-24*time.Hour))
}

func (u *SyncUC) synchronize(ctx context.Context, providerID uuid.UUID, requested models.ResourceType) (*models.SyncSummary, error) {
	startedAt := u.now()

	graph, err := u.syncRepo.GetProviderGraph(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	// Only records inside the freshness window gate this pass
	relevant := recentRecords(graph.SyncRecords, startedAt)

	if err := u.ensureAuthenticated(ctx, graph); err != nil {
		return nil, err
	}
	token, err := u.currentAccessToken(ctx, graph)
	if err != nil {
		return nil, err
	}

	remoteAccounts, err := u.bankGW.ListAccounts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote accounts: %w", err)
	}

	batch := &models.SyncBatch{ProviderID: providerID}
	summary := &models.SyncSummary{
		ProviderID:     providerID,
		Requested:      requested,
		RequestedNames: requested.String(),
		AccountsSeen:   len(remoteAccounts),
		StartedAt:      startedAt,
	}

	for _, remoteAcct := range remoteAccounts {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		account, isNew := mergeAccount(graph, remoteAcct, u.now())
		if isNew {
			// Later lookups within this pass must see the new account
			graph.Accounts = append(graph.Accounts, account)
		}

		switch {
		case isNew:
			// A new account is always persisted so its children resolve,
			// whether or not account sync was requested
			batch.Accounts = append(batch.Accounts, account)
			u.stageRecord(batch, providerID, account.ID, models.ResourceAccount)
			summary.AccountsCreated++
		case shouldSynchronise(requested, relevant, account.ID, models.ResourceAccount, u.now()):
			batch.Accounts = append(batch.Accounts, account)
			u.stageRecord(batch, providerID, account.ID, models.ResourceAccount)
			summary.AccountsUpdated++
		case requested.Has(models.ResourceAccount):
			summary.FetchesSkipped++
		}

		fetches := u.fetchAccountResources(ctx, graph, account, token, requested, relevant)
		summary.FetchesSkipped += fetches.skipped
		summary.FetchesFailed += fetches.failed

		u.collate(graph, account, fetches, batch, summary)
	}

	// Cancellation before the write phase discards all staged data
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if !batch.IsEmpty() {
		err := u.retrier.Execute(ctx, func(ctx context.Context) error {
			return u.syncRepo.CommitSyncBatch(ctx, batch)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to commit sync batch: %w", err)
		}
	}

	summary.RecordsWritten = len(batch.SyncRecords)
	summary.Duration = time.Since(startedAt).String()

	logger.Info("Provider synchronization completed",
		logger.String("provider_id", providerID.String()),
		logger.Int("accounts_seen", summary.AccountsSeen),
		logger.Int("transactions", summary.Transactions),
		logger.Int("records_written", summary.RecordsWritten),
		logger.Int("fetches_failed", summary.FetchesFailed),
		logger.String("duration", summary.Duration))

	return summary, nil
}

// accountFetches holds one account's fetch results. Each field is written by
// exactly one goroutine and read only after the join, so no locking is needed.
type accountFetches struct {
	balances       []*models.RemoteBalance
	transactions   []*models.RemoteTransaction
	pending        []*models.RemoteTransaction
	standingOrders []*models.RemoteStandingOrder
	directDebits   []*models.RemoteDirectDebit

	skipped int
	failed  int
}

// fetchAccountResources issues the gated-in sub-resource fetches for one
// account concurrently and joins them before returning. A failed fetch is
// logged and treated as "no data for this type this round"; it never aborts
// the pass and produces no sync record.
func (u *SyncUC) fetchAccountResources(ctx context.Context, graph *models.ProviderGraph, account *models.Account, token string, requested models.ResourceType, records []*models.SyncRecord) *accountFetches {
	now := u.now()
	fetches := &accountFetches{}

	var wg gosync.WaitGroup
	var balErr, txnErr, pendErr, orderErr, debitErr error

	gate := func(resource models.ResourceType) bool {
		if shouldSynchronise(requested, records, account.ID, resource, now) {
			return true
		}
		if requested.Has(resource) {
			fetches.skipped++
		}
		return false
	}

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	if gate(models.ResourceBalance) {
		run(func() { fetches.balances, balErr = u.bankGW.GetBalance(ctx, account.ExternalID, token) })
	}
	if gate(models.ResourceTransactions) {
		run(func() { fetches.transactions, txnErr = u.bankGW.GetTransactions(ctx, account.ExternalID, token, nil) })
	}
	if gate(models.ResourcePendingTransactions) {
		run(func() { fetches.pending, pendErr = u.bankGW.GetPendingTransactions(ctx, account.ExternalID, token, nil) })
	}
	if gate(models.ResourceStandingOrders) {
		run(func() { fetches.standingOrders, orderErr = u.bankGW.GetStandingOrders(ctx, account.ExternalID, token) })
	}
	if gate(models.ResourceDirectDebits) {
		run(func() { fetches.directDebits, debitErr = u.bankGW.GetDirectDebits(ctx, account.ExternalID, token) })
	}

	wg.Wait()

	absorb := func(resource models.ResourceType, err error, clear func()) {
		if err == nil {
			return
		}
		clear()
		fetches.failed++
		logger.Warn("Resource fetch failed, treating as empty",
			logger.String("resource", resource.String()),
			logger.String("provider_id", graph.Provider.ID.String()),
			logger.String("account_id", account.ID.String()),
			logger.String("user_id", graph.Provider.UserID.String()),
			logger.Err(err))
	}

	absorb(models.ResourceBalance, balErr, func() { fetches.balances = nil })
	absorb(models.ResourceTransactions, txnErr, func() { fetches.transactions = nil })
	absorb(models.ResourcePendingTransactions, pendErr, func() { fetches.pending = nil })
	absorb(models.ResourceStandingOrders, orderErr, func() { fetches.standingOrders = nil })
	absorb(models.ResourceDirectDebits, debitErr, func() { fetches.directDebits = nil })

	return fetches
}

// collate reconciles one account's fetch results into the staged batch. A
// sync record is staged per resource type only when the fetch succeeded and
// returned at least one item: empty results record no freshness, so a
// persistently empty resource is retried every pass.
func (u *SyncUC) collate(graph *models.ProviderGraph, account *models.Account, fetches *accountFetches, batch *models.SyncBatch, summary *models.SyncSummary) {
	if len(fetches.balances) > 0 {
		// The remote side returns a list; the first entry is the account's balance
		balance, isNew := mergeBalance(graph, account, fetches.balances[0], u.now())
		if isNew {
			graph.Balances = append(graph.Balances, balance)
		}
		batch.Balances = append(batch.Balances, balance)
		u.stageRecord(batch, batch.ProviderID, account.ID, models.ResourceBalance)
		summary.Balances++
	}

	if len(fetches.transactions) > 0 {
		for _, remote := range fetches.transactions {
			remote.Pending = false
			u.collateTransaction(graph, account, remote, batch, summary)
		}
		u.stageRecord(batch, batch.ProviderID, account.ID, models.ResourceTransactions)
	}

	if len(fetches.pending) > 0 {
		for _, remote := range fetches.pending {
			remote.Pending = true
			u.collateTransaction(graph, account, remote, batch, summary)
		}
		u.stageRecord(batch, batch.ProviderID, account.ID, models.ResourcePendingTransactions)
	}

	if len(fetches.standingOrders) > 0 {
		for _, remote := range fetches.standingOrders {
			order, isNew := mergeStandingOrder(graph, account, remote, u.now())
			if isNew {
				graph.StandingOrders = append(graph.StandingOrders, order)
			}
			batch.StandingOrders = append(batch.StandingOrders, order)
			summary.StandingOrders++
		}
		u.stageRecord(batch, batch.ProviderID, account.ID, models.ResourceStandingOrders)
	}

	if len(fetches.directDebits) > 0 {
		for _, remote := range fetches.directDebits {
			debit, isNew := mergeDirectDebit(graph, account, remote, u.now())
			if isNew {
				graph.DirectDebits = append(graph.DirectDebits, debit)
			}
			batch.DirectDebits = append(batch.DirectDebits, debit)
			summary.DirectDebits++
		}
		u.stageRecord(batch, batch.ProviderID, account.ID, models.ResourceDirectDebits)
	}
}

func (u *SyncUC) collateTransaction(graph *models.ProviderGraph, account *models.Account, remote *models.RemoteTransaction, batch *models.SyncBatch, summary *models.SyncSummary) {
	txn, isNew := mergeTransaction(graph, account, remote, u.now())
	if isNew {
		graph.Transactions = append(graph.Transactions, txn)
	}
	batch.Transactions = append(batch.Transactions, txn)
	summary.Transactions++
}

func (u *SyncUC) stageRecord(batch *models.SyncBatch, providerID, accountID uuid.UUID, resource models.ResourceType) {
	batch.SyncRecords = append(batch.SyncRecords, &models.SyncRecord{
		ID:           uuid.New(),
		ProviderID:   providerID,
		AccountID:    accountID,
		ResourceType: resource,
		CreatedAt:    u.now(),
	})
}

func (u *SyncUC) publishEvent(providerID uuid.UUID, status string, summary *models.SyncSummary, passErr error) {
	if u.eventGW == nil {
		return
	}

	event := &models.SyncEvent{
		ProviderID: providerID,
		Status:     status,
		Summary:    summary,
		OccurredAt: u.now(),
	}
	if passErr != nil {
		event.Error = passErr.Error()
	}

	if err := u.eventGW.PublishSyncEvent(context.Background(), event); err != nil {
		logger.Warn("Failed to publish sync event",
			logger.String("provider_id", providerID.String()),
			logger.String("status", status),
			logger.Err(err))
	}
}
